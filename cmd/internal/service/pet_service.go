package service

import (
	"petshop/cmd/internal/domain/entity"
	"petshop/cmd/internal/utils"
	"petshop/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PetRepository interface {
	FindByID(id uint) (*entity.Pet, error)
	FindPage(offset, limit int) ([]*entity.Pet, int64, error)
	FindByTutorCPF(cpf string) ([]*entity.Pet, error)
	Save(pet *entity.Pet) error
	Delete(pet *entity.Pet) error
}

type PetRequest struct {
	Nome     string `json:"nome" validate:"required,min=1,max=120"`
	Idade    int    `json:"idade" validate:"gte=0"`
	Porte    string `json:"porte" validate:"required"`
	CpfTutor string `json:"cpfTutor" validate:"required,cpf"`
}

type PetResponse struct {
	ID      uint           `json:"id"`
	Nome    string         `json:"nome"`
	Idade   int            `json:"idade"`
	Porte   string         `json:"porte"`
	TutorID uint           `json:"tutorId"`
	Tutor   *TutorResponse `json:"tutor,omitempty"`
}

type DefaultPetService struct {
	PetRepo   PetRepository
	TutorRepo TutorRepository
	Validate  *validator.Validate
}

func NewPetService(petRepo PetRepository, tutorRepo TutorRepository, validate *validator.Validate) *DefaultPetService {
	return &DefaultPetService{PetRepo: petRepo, TutorRepo: tutorRepo, Validate: validate}
}

// CreatePet resolves the owning tutor by CPF before writing. The lookup and
// the insert are not one transaction; the store's foreign key backs it up.
func (p *DefaultPetService) CreatePet(req *PetRequest) (*PetResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	tutor, err := p.TutorRepo.FindByCPF(req.CpfTutor)
	if err != nil {
		log.Errorf("failed to fetch tutor by cpf: %v", err)
		return nil, apierror.InternalServerError
	}

	if tutor == nil {
		return nil, apierror.TutorNotFoundError
	}

	pet := &entity.Pet{
		Nome:    req.Nome,
		Idade:   req.Idade,
		Porte:   req.Porte,
		TutorID: tutor.ID,
	}

	err = p.PetRepo.Save(pet)
	if err != nil {
		log.Errorf("failed to create pet: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPetResponse(pet), nil
}

func (p *DefaultPetService) GetPets(page, limit int) ([]*PetResponse, int64, apierror.ErrorResponse) {
	offset, limit := pageToOffset(page, limit)

	pets, total, err := p.PetRepo.FindPage(offset, limit)
	if err != nil {
		log.Errorf("failed to list pets: %v", err)
		return nil, 0, apierror.InternalServerError
	}

	resp := make([]*PetResponse, len(pets))
	for i, pet := range pets {
		resp[i] = toPetResponse(pet)
	}
	return resp, total, nil
}

func (p *DefaultPetService) GetPet(id uint) (*PetResponse, apierror.ErrorResponse) {
	pet, err := p.PetRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch pet %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if pet == nil {
		return nil, apierror.NotFoundError
	}
	return toPetResponse(pet), nil
}

func (p *DefaultPetService) GetPetsByTutorCPF(cpf string) ([]*PetResponse, apierror.ErrorResponse) {
	pets, err := p.PetRepo.FindByTutorCPF(cpf)
	if err != nil {
		log.Errorf("failed to fetch pets by tutor cpf: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*PetResponse, len(pets))
	for i, pet := range pets {
		resp[i] = toPetResponse(pet)
	}
	return resp, nil
}

func (p *DefaultPetService) UpdatePet(id uint, req *PetRequest) (*PetResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	pet, err := p.PetRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch pet %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if pet == nil {
		return nil, apierror.NotFoundError
	}

	tutor, err := p.TutorRepo.FindByCPF(req.CpfTutor)
	if err != nil {
		log.Errorf("failed to fetch tutor by cpf: %v", err)
		return nil, apierror.InternalServerError
	}

	if tutor == nil {
		return nil, apierror.TutorNotFoundError
	}

	pet.Nome = req.Nome
	pet.Idade = req.Idade
	pet.Porte = req.Porte
	pet.TutorID = tutor.ID
	pet.Tutor = nil

	err = p.PetRepo.Save(pet)
	if err != nil {
		log.Errorf("failed to update pet %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toPetResponse(pet), nil
}

func (p *DefaultPetService) DeletePet(id uint) apierror.ErrorResponse {
	pet, err := p.PetRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch pet %d: %v", id, err)
		return apierror.InternalServerError
	}

	if pet == nil {
		return apierror.NotFoundError
	}

	err = p.PetRepo.Delete(pet)
	if err != nil {
		log.Errorf("failed to delete pet %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toPetResponse(pet *entity.Pet) *PetResponse {
	resp := &PetResponse{
		ID:      pet.ID,
		Nome:    pet.Nome,
		Idade:   pet.Idade,
		Porte:   pet.Porte,
		TutorID: pet.TutorID,
	}

	if pet.Tutor != nil {
		resp.Tutor = toTutorResponse(pet.Tutor)
	}
	return resp
}
