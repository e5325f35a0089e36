package service

import (
	"petshop/cmd/internal/domain/entity"
	"petshop/cmd/internal/utils"
	"petshop/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ServicoRepository interface {
	FindByID(id uint) (*entity.Servico, error)
	FindByNome(nome string) (*entity.Servico, error)
	FindPage(offset, limit int) ([]*entity.Servico, int64, error)
	ExistsByNome(nome string) (bool, error)
	Save(servico *entity.Servico) error
	Delete(servico *entity.Servico) error
}

type ServicoRequest struct {
	Nome       string  `json:"nome" validate:"required,min=2,max=120"`
	Valor      float64 `json:"valor" validate:"required,gt=0"`
	TempoGasto int     `json:"tempoGasto" validate:"required,gt=0"`
}

type ServicoResponse struct {
	ID         uint    `json:"id"`
	Nome       string  `json:"nome"`
	Valor      float64 `json:"valor"`
	TempoGasto int     `json:"tempoGasto"`
}

type DefaultServicoService struct {
	ServicoRepo ServicoRepository
	Validate    *validator.Validate
}

func NewServicoService(servicoRepo ServicoRepository, validate *validator.Validate) *DefaultServicoService {
	return &DefaultServicoService{ServicoRepo: servicoRepo, Validate: validate}
}

func (s *DefaultServicoService) CreateServico(req *ServicoRequest) (*ServicoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	found, err := s.ServicoRepo.ExistsByNome(req.Nome)
	if err != nil {
		log.Errorf("failed to check servico name: %v", err)
		return nil, apierror.InternalServerError
	}

	if found {
		return nil, apierror.ServiceNameInUseError
	}

	servico := &entity.Servico{
		Nome:       req.Nome,
		Valor:      req.Valor,
		TempoGasto: req.TempoGasto,
	}

	err = s.ServicoRepo.Save(servico)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.ServiceNameInUseError
		}
		log.Errorf("failed to create servico: %v", err)
		return nil, apierror.InternalServerError
	}
	return toServicoResponse(servico), nil
}

func (s *DefaultServicoService) GetServicos(page, limit int) ([]*ServicoResponse, int64, apierror.ErrorResponse) {
	offset, limit := pageToOffset(page, limit)

	servicos, total, err := s.ServicoRepo.FindPage(offset, limit)
	if err != nil {
		log.Errorf("failed to list servicos: %v", err)
		return nil, 0, apierror.InternalServerError
	}

	resp := make([]*ServicoResponse, len(servicos))
	for i, servico := range servicos {
		resp[i] = toServicoResponse(servico)
	}
	return resp, total, nil
}

func (s *DefaultServicoService) GetServicoByNome(nome string) (*ServicoResponse, apierror.ErrorResponse) {
	servico, err := s.ServicoRepo.FindByNome(nome)
	if err != nil {
		log.Errorf("failed to fetch servico by nome: %v", err)
		return nil, apierror.InternalServerError
	}

	if servico == nil {
		return nil, apierror.NotFoundError
	}
	return toServicoResponse(servico), nil
}

func (s *DefaultServicoService) UpdateServico(id uint, req *ServicoRequest) (*ServicoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	servico, err := s.ServicoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch servico %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if servico == nil {
		return nil, apierror.NotFoundError
	}

	servico.Nome = req.Nome
	servico.Valor = req.Valor
	servico.TempoGasto = req.TempoGasto

	err = s.ServicoRepo.Save(servico)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierror.ServiceNameInUseError
		}
		log.Errorf("failed to update servico %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toServicoResponse(servico), nil
}

func (s *DefaultServicoService) DeleteServico(id uint) apierror.ErrorResponse {
	servico, err := s.ServicoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch servico %d: %v", id, err)
		return apierror.InternalServerError
	}

	if servico == nil {
		return apierror.NotFoundError
	}

	err = s.ServicoRepo.Delete(servico)
	if err != nil {
		log.Errorf("failed to delete servico %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

func toServicoResponse(servico *entity.Servico) *ServicoResponse {
	return &ServicoResponse{
		ID:         servico.ID,
		Nome:       servico.Nome,
		Valor:      servico.Valor,
		TempoGasto: servico.TempoGasto,
	}
}
