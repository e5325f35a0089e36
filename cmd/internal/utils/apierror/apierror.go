package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to the route layer. The concrete
// value serializes to {"message": "..."} and knows its own HTTP status.
type ErrorResponse interface {
	error
	Code() int
}

var (
	InternalServerError   = NewSimple(http.StatusInternalServerError, "Erro no servidor")
	MalformedBodyError    = NewSimple(http.StatusBadRequest, "Corpo da requisição inválido")
	NotFoundError         = NewSimple(http.StatusNotFound, "Registro não encontrado")
	MissingAuthTokenError = NewSimple(http.StatusUnauthorized, "Token não informado")
	InvalidAuthTokenError = NewSimple(http.StatusForbidden, "Token inválido")
	ForbiddenError        = NewSimple(http.StatusForbidden, "Permissão insuficiente")

	InvalidCredentialsError = NewSimple(http.StatusUnauthorized, "Email ou senha incorretos")
	EmailInUseError         = NewSimple(http.StatusConflict, "Email já cadastrado")
	CPFInUseError           = NewSimple(http.StatusConflict, "CPF já cadastrado")
	ServiceNameInUseError   = NewSimple(http.StatusConflict, "Serviço já cadastrado")
	TutorNotFoundError      = NewSimple(http.StatusNotFound, "Tutor não encontrado")
	LoginThrottledError     = NewSimple(http.StatusTooManyRequests, "Muitas tentativas de login, tente novamente em instantes")
)

type simpleResponse struct {
	HTTPCode int    `json:"-"`
	Message  string `json:"message"`
}

func (e *simpleResponse) Code() int {
	return e.HTTPCode
}

func (e *simpleResponse) Error() string {
	return e.Message
}

func NewSimple(code int, message string) ErrorResponse {
	return &simpleResponse{HTTPCode: code, Message: message}
}

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parâmetro obrigatório ausente: %s", name))
}

func NewInvalidParamTypeError(name, expected string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parâmetro %s deve ser do tipo %s", name, expected))
}

// FromValidationError turns a validator.Struct failure into a 400 listing
// the offending fields.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]string, len(verrs))
	for i, ferr := range verrs {
		fields[i] = ferr.Field()
	}
	return NewSimple(http.StatusBadRequest, "Campos inválidos: "+strings.Join(fields, ", "))
}
