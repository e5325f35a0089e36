package routes

import (
	"net/http"
	"petshop/cmd/internal/service"
	"petshop/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
)

type AtendimentoService interface {
	CreateAtendimento(req *service.AtendimentoRequest) (*service.AtendimentoResponse, apierror.ErrorResponse)
	GetAtendimentos(page, limit int) ([]*service.AtendimentoResponse, int64, apierror.ErrorResponse)
	GetAtendimento(id uint) (*service.AtendimentoResponse, apierror.ErrorResponse)
	GetAtendimentosByTutorNome(nome string) ([]*service.AtendimentoResponse, apierror.ErrorResponse)
	UpdateAtendimento(id uint, req *service.AtendimentoRequest) (*service.AtendimentoResponse, apierror.ErrorResponse)
	DeleteAtendimento(id uint) apierror.ErrorResponse
}

type DefaultAtendimentoRoute struct {
	AtendimentoService AtendimentoService
}

func NewAtendimentoDefault(atendimentoService AtendimentoService) *DefaultAtendimentoRoute {
	return &DefaultAtendimentoRoute{AtendimentoService: atendimentoService}
}

func (a *DefaultAtendimentoRoute) CreateAtendimento(c echo.Context) error {
	var req service.AtendimentoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	atendimento, apierr := a.AtendimentoService.CreateAtendimento(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, atendimento)
}

func (a *DefaultAtendimentoRoute) GetAtendimentos(c echo.Context) error {
	page, limit := parsePagination(c)

	atendimentos, total, apierr := a.AtendimentoService.GetAtendimentos(page, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"atendimentos": atendimentos, "totalAtendimentos": total}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAtendimentoRoute) GetAtendimento(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	atendimento, apierr := a.AtendimentoService.GetAtendimento(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, atendimento)
}

func (a *DefaultAtendimentoRoute) GetAtendimentosByTutorNome(c echo.Context) error {
	nome := strings.TrimSpace(c.Param("nome"))
	if nome == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("nome"))
	}

	atendimentos, apierr := a.AtendimentoService.GetAtendimentosByTutorNome(nome)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, atendimentos)
}

func (a *DefaultAtendimentoRoute) UpdateAtendimento(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.AtendimentoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	atendimento, apierr := a.AtendimentoService.UpdateAtendimento(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, atendimento)
}

func (a *DefaultAtendimentoRoute) DeleteAtendimento(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	apierr = a.AtendimentoService.DeleteAtendimento(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
