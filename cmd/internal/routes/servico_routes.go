package routes

import (
	"net/http"
	"petshop/cmd/internal/service"
	"petshop/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
)

type ServicoService interface {
	CreateServico(req *service.ServicoRequest) (*service.ServicoResponse, apierror.ErrorResponse)
	GetServicos(page, limit int) ([]*service.ServicoResponse, int64, apierror.ErrorResponse)
	GetServicoByNome(nome string) (*service.ServicoResponse, apierror.ErrorResponse)
	UpdateServico(id uint, req *service.ServicoRequest) (*service.ServicoResponse, apierror.ErrorResponse)
	DeleteServico(id uint) apierror.ErrorResponse
}

type DefaultServicoRoute struct {
	ServicoService ServicoService
}

func NewServicoDefault(servicoService ServicoService) *DefaultServicoRoute {
	return &DefaultServicoRoute{ServicoService: servicoService}
}

func (s *DefaultServicoRoute) CreateServico(c echo.Context) error {
	var req service.ServicoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	servico, apierr := s.ServicoService.CreateServico(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, servico)
}

func (s *DefaultServicoRoute) GetServicos(c echo.Context) error {
	page, limit := parsePagination(c)

	servicos, total, apierr := s.ServicoService.GetServicos(page, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"services": servicos, "totalServices": total}
	return c.JSON(http.StatusOK, &resp)
}

func (s *DefaultServicoRoute) GetServicoByNome(c echo.Context) error {
	nome := strings.TrimSpace(c.Param("nome"))
	if nome == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("nome"))
	}

	servico, apierr := s.ServicoService.GetServicoByNome(nome)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, servico)
}

func (s *DefaultServicoRoute) UpdateServico(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.ServicoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	servico, apierr := s.ServicoService.UpdateServico(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, servico)
}

func (s *DefaultServicoRoute) DeleteServico(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	apierr = s.ServicoService.DeleteServico(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
