package routes

import (
	"net/http"
	"petshop/cmd/internal/service"
	"petshop/cmd/internal/utils"
	"petshop/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
)

type FuncionarioService interface {
	Login(req *service.LoginRequest) (*service.LoginResponse, apierror.ErrorResponse)
	Register(req *service.RegisterRequest) (*service.FuncionarioResponse, apierror.ErrorResponse)
	GetProfile(id uint) (*service.ProfileResponse, apierror.ErrorResponse)
	UpdateProfile(id uint, req *service.UpdateProfileRequest) (*service.FuncionarioResponse, apierror.ErrorResponse)
	GetFuncionarios(page, limit int) ([]*service.FuncionarioResponse, int64, apierror.ErrorResponse)
	GetFuncionarioByEmail(email string) (*service.FuncionarioResponse, apierror.ErrorResponse)
	UpdateFuncionario(id uint, req *service.UpdateFuncionarioRequest) (*service.FuncionarioResponse, apierror.ErrorResponse)
	DeleteFuncionario(id uint) apierror.ErrorResponse
}

type DefaultFuncionarioRoute struct {
	FuncionarioService FuncionarioService
}

func NewFuncionarioDefault(funcionarioService FuncionarioService) *DefaultFuncionarioRoute {
	return &DefaultFuncionarioRoute{FuncionarioService: funcionarioService}
}

func (f *DefaultFuncionarioRoute) CreateLogin(c echo.Context) error {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := f.FuncionarioService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (f *DefaultFuncionarioRoute) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	funcionario, apierr := f.FuncionarioService.Register(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, funcionario)
}

func (f *DefaultFuncionarioRoute) GetProfile(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
	}

	profile, apierr := f.FuncionarioService.GetProfile(data.ID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, profile)
}

func (f *DefaultFuncionarioRoute) UpdateProfile(c echo.Context) error {
	data, err := utils.ParseTokenDataCtx(c)
	if err != nil {
		return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
	}

	var req service.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	funcionario, apierr := f.FuncionarioService.UpdateProfile(data.ID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, funcionario)
}

func (f *DefaultFuncionarioRoute) GetFuncionarios(c echo.Context) error {
	page, limit := parsePagination(c)

	funcionarios, total, apierr := f.FuncionarioService.GetFuncionarios(page, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"funcionarios": funcionarios, "totalFuncionarios": total}
	return c.JSON(http.StatusOK, &resp)
}

func (f *DefaultFuncionarioRoute) GetFuncionarioByEmail(c echo.Context) error {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("email"))
	}

	funcionario, apierr := f.FuncionarioService.GetFuncionarioByEmail(email)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, funcionario)
}

func (f *DefaultFuncionarioRoute) UpdateFuncionario(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateFuncionarioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	funcionario, apierr := f.FuncionarioService.UpdateFuncionario(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, funcionario)
}

func (f *DefaultFuncionarioRoute) DeleteFuncionario(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	apierr = f.FuncionarioService.DeleteFuncionario(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
