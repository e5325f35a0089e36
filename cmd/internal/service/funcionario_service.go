package service

import (
	"errors"
	"petshop/cmd/internal/domain/entity"
	"petshop/cmd/internal/utils"
	"petshop/cmd/internal/utils/apierror"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

type FuncionarioRepository interface {
	FindByID(id uint) (*entity.Funcionario, error)
	FindByEmail(email string) (*entity.Funcionario, error)
	ExistsByEmail(email string) (bool, error)
	FindPage(offset, limit int) ([]*entity.Funcionario, int64, error)
	Save(funcionario *entity.Funcionario) error
	Delete(funcionario *entity.Funcionario) error
}

// LoginLimiter throttles credential checks per login email.
type LoginLimiter interface {
	Allow(key string) bool
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	Nome       string `json:"nome" validate:"required,min=2,max=80"`
	Email      string `json:"email" validate:"required,email"`
	Senha      string `json:"senha" validate:"required,min=6,max=64"`
	Autoridade int    `json:"autoridade" validate:"required,min=1,max=2"`
}

type UpdateFuncionarioRequest struct {
	Nome       string `json:"nome" validate:"required,min=2,max=80"`
	Email      string `json:"email" validate:"required,email"`
	Autoridade int    `json:"autoridade" validate:"required,min=1,max=2"`
}

type ProfileResponse struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type UpdateProfileRequest struct {
	Nome      string `json:"nome" validate:"required,min=2,max=80"`
	Email     string `json:"email" validate:"required,email"`
	NovaSenha string `json:"novaSenha" validate:"omitempty,min=6,max=64"`
}

type FuncionarioResponse struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Autoridade int    `json:"autoridade"`
}

type DefaultFuncionarioService struct {
	FuncionarioRepo FuncionarioRepository
	Validate        *validator.Validate
	Secret          []byte
	LoginLimiter    LoginLimiter
}

func NewFuncionarioService(repo FuncionarioRepository, validate *validator.Validate, secret []byte, limiter LoginLimiter) *DefaultFuncionarioService {
	return &DefaultFuncionarioService{FuncionarioRepo: repo, Validate: validate, Secret: secret, LoginLimiter: limiter}
}

// Login checks the credentials against the stored bcrypt hash and issues a
// signed token carrying {id, autoridade}. Nothing is persisted; the token
// is the whole session.
func (f *DefaultFuncionarioService) Login(req *LoginRequest) (*LoginResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := f.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if f.LoginLimiter != nil && !f.LoginLimiter.Allow("login:"+req.Email) {
		return nil, apierror.LoginThrottledError
	}

	funcionario, err := f.FuncionarioRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch funcionario by email: %v", err)
		return nil, apierror.InternalServerError
	}

	if funcionario == nil {
		return nil, apierror.InvalidCredentialsError
	}

	if bcrypt.CompareHashAndPassword([]byte(funcionario.Senha), []byte(req.Senha)) != nil {
		return nil, apierror.InvalidCredentialsError
	}

	token, err := utils.SignToken(&utils.TokenData{ID: funcionario.ID, Autoridade: funcionario.Autoridade}, f.Secret)
	if err != nil {
		log.Errorf("failed to sign token for funcionario %d: %v", funcionario.ID, err)
		return nil, apierror.InternalServerError
	}
	return &LoginResponse{Token: token}, nil
}

func (f *DefaultFuncionarioService) Register(req *RegisterRequest) (*FuncionarioResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := f.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	found, err := f.FuncionarioRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if funcionario already exists: %v", err)
		return nil, apierror.InternalServerError
	}

	if found {
		return nil, apierror.EmailInUseError
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	funcionario := &entity.Funcionario{
		Nome:       req.Nome,
		Email:      req.Email,
		Senha:      string(hash),
		Autoridade: req.Autoridade,
	}

	err = f.FuncionarioRepo.Save(funcionario)
	if err != nil {
		// The pre-check races with concurrent registrations; the unique
		// index is the backstop.
		if isDuplicateKey(err) {
			return nil, apierror.EmailInUseError
		}
		log.Errorf("failed to create funcionario: %v", err)
		return nil, apierror.InternalServerError
	}
	return toFuncionarioResponse(funcionario), nil
}

func (f *DefaultFuncionarioService) GetProfile(id uint) (*ProfileResponse, apierror.ErrorResponse) {
	funcionario, err := f.FuncionarioRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch funcionario %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if funcionario == nil {
		return nil, apierror.NotFoundError
	}
	return &ProfileResponse{Nome: funcionario.Nome, Email: funcionario.Email}, nil
}

func (f *DefaultFuncionarioService) UpdateProfile(id uint, req *UpdateProfileRequest) (*FuncionarioResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := f.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	funcionario, err := f.FuncionarioRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch funcionario %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if funcionario == nil {
		return nil, apierror.NotFoundError
	}

	funcionario.Nome = req.Nome
	funcionario.Email = req.Email
	if req.NovaSenha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NovaSenha), bcryptCost)
		if err != nil {
			log.Errorf("failed to hash password: %v", err)
			return nil, apierror.InternalServerError
		}
		funcionario.Senha = string(hash)
	}

	err = f.FuncionarioRepo.Save(funcionario)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.EmailInUseError
		}
		log.Errorf("failed to update funcionario %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toFuncionarioResponse(funcionario), nil
}

func (f *DefaultFuncionarioService) GetFuncionarios(page, limit int) ([]*FuncionarioResponse, int64, apierror.ErrorResponse) {
	offset, limit := pageToOffset(page, limit)

	funcionarios, total, err := f.FuncionarioRepo.FindPage(offset, limit)
	if err != nil {
		log.Errorf("failed to list funcionarios: %v", err)
		return nil, 0, apierror.InternalServerError
	}

	resp := make([]*FuncionarioResponse, len(funcionarios))
	for i, funcionario := range funcionarios {
		resp[i] = toFuncionarioResponse(funcionario)
	}
	return resp, total, nil
}

func (f *DefaultFuncionarioService) GetFuncionarioByEmail(email string) (*FuncionarioResponse, apierror.ErrorResponse) {
	funcionario, err := f.FuncionarioRepo.FindByEmail(email)
	if err != nil {
		log.Errorf("failed to fetch funcionario by email: %v", err)
		return nil, apierror.InternalServerError
	}

	if funcionario == nil {
		return nil, apierror.NotFoundError
	}
	return toFuncionarioResponse(funcionario), nil
}

func (f *DefaultFuncionarioService) UpdateFuncionario(id uint, req *UpdateFuncionarioRequest) (*FuncionarioResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := f.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	funcionario, err := f.FuncionarioRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch funcionario %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if funcionario == nil {
		return nil, apierror.NotFoundError
	}

	funcionario.Nome = req.Nome
	funcionario.Email = req.Email
	funcionario.Autoridade = req.Autoridade

	err = f.FuncionarioRepo.Save(funcionario)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.EmailInUseError
		}
		log.Errorf("failed to update funcionario %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toFuncionarioResponse(funcionario), nil
}

func (f *DefaultFuncionarioService) DeleteFuncionario(id uint) apierror.ErrorResponse {
	funcionario, err := f.FuncionarioRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch funcionario %d: %v", id, err)
		return apierror.InternalServerError
	}

	if funcionario == nil {
		return apierror.NotFoundError
	}

	err = f.FuncionarioRepo.Delete(funcionario)
	if err != nil {
		log.Errorf("failed to delete funcionario %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toFuncionarioResponse(funcionario *entity.Funcionario) *FuncionarioResponse {
	return &FuncionarioResponse{
		ID:         funcionario.ID,
		Nome:       funcionario.Nome,
		Email:      funcionario.Email,
		Autoridade: funcionario.Autoridade,
	}
}

// pageToOffset maps 1-indexed page/limit query values to skip/take,
// falling back to page 1 and the default page size of 5.
func pageToOffset(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}
	return (page - 1) * limit, limit
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
