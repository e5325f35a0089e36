package service

import (
	"petshop/cmd/internal/domain/entity"
	"petshop/cmd/internal/utils"
	"petshop/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type TutorRepository interface {
	FindByID(id uint) (*entity.Tutor, error)
	FindByCPF(cpf string) (*entity.Tutor, error)
	FindAll() ([]*entity.Tutor, error)
	FindPage(offset, limit int) ([]*entity.Tutor, int64, error)
	Save(tutor *entity.Tutor) error
	DeleteWithPets(tutor *entity.Tutor) error
}

type TutorRequest struct {
	Nome     string `json:"nome" validate:"required,min=2,max=120"`
	Endereco string `json:"endereco" validate:"max=255"`
	Telefone string `json:"telefone" validate:"max=20"`
	CPF      string `json:"cpf" validate:"required,cpf"`
}

type TutorResponse struct {
	ID       uint           `json:"id"`
	Nome     string         `json:"nome"`
	Endereco string         `json:"endereco"`
	Telefone string         `json:"telefone"`
	CPF      string         `json:"cpf"`
	Pets     []*PetResponse `json:"pets,omitempty"`
}

type DefaultTutorService struct {
	TutorRepo TutorRepository
	Validate  *validator.Validate
}

func NewTutorService(tutorRepo TutorRepository, validate *validator.Validate) *DefaultTutorService {
	return &DefaultTutorService{TutorRepo: tutorRepo, Validate: validate}
}

func (t *DefaultTutorService) CreateTutor(req *TutorRequest) (*TutorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := t.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := t.TutorRepo.FindByCPF(req.CPF)
	if err != nil {
		log.Errorf("failed to check tutor cpf: %v", err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.CPFInUseError
	}

	tutor := &entity.Tutor{
		Nome:     req.Nome,
		Endereco: req.Endereco,
		Telefone: req.Telefone,
		CPF:      req.CPF,
	}

	err = t.TutorRepo.Save(tutor)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.CPFInUseError
		}
		log.Errorf("failed to create tutor: %v", err)
		return nil, apierror.InternalServerError
	}
	return toTutorResponse(tutor), nil
}

func (t *DefaultTutorService) GetTutores(page, limit int) ([]*TutorResponse, int64, apierror.ErrorResponse) {
	offset, limit := pageToOffset(page, limit)

	tutores, total, err := t.TutorRepo.FindPage(offset, limit)
	if err != nil {
		log.Errorf("failed to list tutores: %v", err)
		return nil, 0, apierror.InternalServerError
	}

	resp := make([]*TutorResponse, len(tutores))
	for i, tutor := range tutores {
		resp[i] = toTutorResponse(tutor)
	}
	return resp, total, nil
}

// GetAllTutores returns the full unpaginated list, used by the pet form's
// tutor dropdown.
func (t *DefaultTutorService) GetAllTutores() ([]*TutorResponse, apierror.ErrorResponse) {
	tutores, err := t.TutorRepo.FindAll()
	if err != nil {
		log.Errorf("failed to list tutores: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*TutorResponse, len(tutores))
	for i, tutor := range tutores {
		resp[i] = toTutorResponse(tutor)
	}
	return resp, nil
}

func (t *DefaultTutorService) GetTutor(id uint) (*TutorResponse, apierror.ErrorResponse) {
	tutor, err := t.TutorRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tutor %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if tutor == nil {
		return nil, apierror.TutorNotFoundError
	}
	return toTutorResponse(tutor), nil
}

func (t *DefaultTutorService) GetTutorByCPF(cpf string) (*TutorResponse, apierror.ErrorResponse) {
	tutor, err := t.TutorRepo.FindByCPF(cpf)
	if err != nil {
		log.Errorf("failed to fetch tutor by cpf: %v", err)
		return nil, apierror.InternalServerError
	}

	if tutor == nil {
		return nil, apierror.TutorNotFoundError
	}
	return toTutorResponse(tutor), nil
}

func (t *DefaultTutorService) UpdateTutor(id uint, req *TutorRequest) (*TutorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := t.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	tutor, err := t.TutorRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tutor %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if tutor == nil {
		return nil, apierror.TutorNotFoundError
	}

	tutor.Nome = req.Nome
	tutor.Endereco = req.Endereco
	tutor.Telefone = req.Telefone
	tutor.CPF = req.CPF

	err = t.TutorRepo.Save(tutor)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.CPFInUseError
		}
		log.Errorf("failed to update tutor %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toTutorResponse(tutor), nil
}

// DeleteTutor removes the tutor and cascades to its pets atomically.
func (t *DefaultTutorService) DeleteTutor(id uint) apierror.ErrorResponse {
	tutor, err := t.TutorRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tutor %d: %v", id, err)
		return apierror.InternalServerError
	}

	if tutor == nil {
		return apierror.TutorNotFoundError
	}

	err = t.TutorRepo.DeleteWithPets(tutor)
	if err != nil {
		log.Errorf("failed to delete tutor %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toTutorResponse(tutor *entity.Tutor) *TutorResponse {
	resp := &TutorResponse{
		ID:       tutor.ID,
		Nome:     tutor.Nome,
		Endereco: tutor.Endereco,
		Telefone: tutor.Telefone,
		CPF:      tutor.CPF,
	}

	for i := range tutor.Pets {
		resp.Pets = append(resp.Pets, toPetResponse(&tutor.Pets[i]))
	}
	return resp
}
