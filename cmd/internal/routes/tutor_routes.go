package routes

import (
	"net/http"
	"petshop/cmd/internal/service"
	"petshop/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
)

type TutorService interface {
	CreateTutor(req *service.TutorRequest) (*service.TutorResponse, apierror.ErrorResponse)
	GetTutores(page, limit int) ([]*service.TutorResponse, int64, apierror.ErrorResponse)
	GetAllTutores() ([]*service.TutorResponse, apierror.ErrorResponse)
	GetTutor(id uint) (*service.TutorResponse, apierror.ErrorResponse)
	GetTutorByCPF(cpf string) (*service.TutorResponse, apierror.ErrorResponse)
	UpdateTutor(id uint, req *service.TutorRequest) (*service.TutorResponse, apierror.ErrorResponse)
	DeleteTutor(id uint) apierror.ErrorResponse
}

type DefaultTutorRoute struct {
	TutorService TutorService
}

func NewTutorDefault(tutorService TutorService) *DefaultTutorRoute {
	return &DefaultTutorRoute{TutorService: tutorService}
}

func (t *DefaultTutorRoute) CreateTutor(c echo.Context) error {
	var req service.TutorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	tutor, apierr := t.TutorService.CreateTutor(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, tutor)
}

func (t *DefaultTutorRoute) GetTutores(c echo.Context) error {
	page, limit := parsePagination(c)

	tutores, total, apierr := t.TutorService.GetTutores(page, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"tutors": tutores, "totalTutors": total}
	return c.JSON(http.StatusOK, &resp)
}

func (t *DefaultTutorRoute) GetAllTutores(c echo.Context) error {
	tutores, apierr := t.TutorService.GetAllTutores()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tutores)
}

func (t *DefaultTutorRoute) GetTutor(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	tutor, apierr := t.TutorService.GetTutor(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tutor)
}

func (t *DefaultTutorRoute) GetTutorByCPF(c echo.Context) error {
	cpf := strings.TrimSpace(c.Param("cpf"))
	if cpf == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("cpf"))
	}

	tutor, apierr := t.TutorService.GetTutorByCPF(cpf)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tutor)
}

func (t *DefaultTutorRoute) UpdateTutor(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.TutorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	tutor, apierr := t.TutorService.UpdateTutor(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tutor)
}

func (t *DefaultTutorRoute) DeleteTutor(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	apierr = t.TutorService.DeleteTutor(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Tutor excluído com sucesso"})
}
