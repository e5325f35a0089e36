package routes

import (
	"net/http"
	"petshop/cmd/internal/service"
	"petshop/cmd/internal/utils/apierror"
	"strings"

	"github.com/labstack/echo/v4"
)

type PetService interface {
	CreatePet(req *service.PetRequest) (*service.PetResponse, apierror.ErrorResponse)
	GetPets(page, limit int) ([]*service.PetResponse, int64, apierror.ErrorResponse)
	GetPet(id uint) (*service.PetResponse, apierror.ErrorResponse)
	GetPetsByTutorCPF(cpf string) ([]*service.PetResponse, apierror.ErrorResponse)
	UpdatePet(id uint, req *service.PetRequest) (*service.PetResponse, apierror.ErrorResponse)
	DeletePet(id uint) apierror.ErrorResponse
}

type DefaultPetRoute struct {
	PetService PetService
}

func NewPetDefault(petService PetService) *DefaultPetRoute {
	return &DefaultPetRoute{PetService: petService}
}

func (p *DefaultPetRoute) CreatePet(c echo.Context) error {
	var req service.PetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	pet, apierr := p.PetService.CreatePet(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, pet)
}

func (p *DefaultPetRoute) GetPets(c echo.Context) error {
	page, limit := parsePagination(c)

	pets, total, apierr := p.PetService.GetPets(page, limit)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"pets": pets, "totalPets": total}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPetRoute) GetPet(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	pet, apierr := p.PetService.GetPet(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pet)
}

func (p *DefaultPetRoute) GetPetsByTutorCPF(c echo.Context) error {
	cpf := strings.TrimSpace(c.Param("cpf"))
	if cpf == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("cpf"))
	}

	pets, apierr := p.PetService.GetPetsByTutorCPF(cpf)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pets)
}

func (p *DefaultPetRoute) UpdatePet(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.PetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	pet, apierr := p.PetService.UpdatePet(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pet)
}

func (p *DefaultPetRoute) DeletePet(c echo.Context) error {
	id, apierr := parseIDParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	apierr = p.PetService.DeletePet(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Pet excluído com sucesso"})
}
