package service

import (
	"errors"
	"net/http"
	"petshop/cmd/internal/domain/entity"
	"petshop/cmd/internal/utils"
	"petshop/cmd/internal/utils/apierror"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type AtendimentoRepository interface {
	FindByID(id uint) (*entity.Atendimento, error)
	FindPage(offset, limit int) ([]*entity.Atendimento, int64, error)
	FindByTutorNome(nome string) ([]*entity.Atendimento, error)
	Save(atendimento *entity.Atendimento, servicoIDs []uint) error
	Update(atendimento *entity.Atendimento, servicoIDs []uint) error
	Delete(atendimento *entity.Atendimento) error
}

type AtendimentoRequest struct {
	Data       string  `json:"data" validate:"required,iso8601"`
	ValorTotal float64 `json:"valorTotal" validate:"gte=0"`
	PetID      uint    `json:"petId" validate:"required"`
	Servicos   []uint  `json:"servicos" validate:"required,min=1"`
}

type AtendimentoResponse struct {
	ID         uint               `json:"id"`
	Data       string             `json:"data"`
	ValorTotal float64            `json:"valorTotal"`
	Pets       []*PetResponse     `json:"pets"`
	Servicos   []*ServicoResponse `json:"servicos"`
}

type DefaultAtendimentoService struct {
	AtendimentoRepo AtendimentoRepository
	Validate        *validator.Validate
}

func NewAtendimentoService(atendimentoRepo AtendimentoRepository, validate *validator.Validate) *DefaultAtendimentoService {
	return &DefaultAtendimentoService{AtendimentoRepo: atendimentoRepo, Validate: validate}
}

// CreateAtendimento binds one pet and a set of services to a new
// atendimento. The pet id is not looked up beforehand; a broken reference
// comes back from the store's foreign key. The submitted total is persisted
// as-is, the server does not recompute it from the service set.
func (a *DefaultAtendimentoService) CreateAtendimento(req *AtendimentoRequest) (*AtendimentoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	data, err := utils.FromEpoch(req.Data)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	atendimento := &entity.Atendimento{
		Data:       data,
		ValorTotal: req.ValorTotal,
		PetID:      req.PetID,
	}

	err = a.AtendimentoRepo.Save(atendimento, req.Servicos)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, apierror.NewSimple(http.StatusBadRequest, "Erro ao criar atendimento")
		}
		log.Errorf("failed to save atendimento: %v", err)
		return nil, apierror.InternalServerError
	}

	created, err := a.AtendimentoRepo.FindByID(atendimento.ID)
	if err != nil || created == nil {
		log.Errorf("failed to reload atendimento %d: %v", atendimento.ID, err)
		return nil, apierror.InternalServerError
	}
	return toAtendimentoResponse(created), nil
}

func (a *DefaultAtendimentoService) GetAtendimentos(page, limit int) ([]*AtendimentoResponse, int64, apierror.ErrorResponse) {
	offset, limit := pageToOffset(page, limit)

	atendimentos, total, err := a.AtendimentoRepo.FindPage(offset, limit)
	if err != nil {
		log.Errorf("failed to list atendimentos: %v", err)
		return nil, 0, apierror.InternalServerError
	}

	resp := make([]*AtendimentoResponse, len(atendimentos))
	for i, atendimento := range atendimentos {
		resp[i] = toAtendimentoResponse(atendimento)
	}
	return resp, total, nil
}

func (a *DefaultAtendimentoService) GetAtendimento(id uint) (*AtendimentoResponse, apierror.ErrorResponse) {
	atendimento, err := a.AtendimentoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch atendimento %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if atendimento == nil {
		return nil, apierror.NotFoundError
	}
	return toAtendimentoResponse(atendimento), nil
}

func (a *DefaultAtendimentoService) GetAtendimentosByTutorNome(nome string) ([]*AtendimentoResponse, apierror.ErrorResponse) {
	atendimentos, err := a.AtendimentoRepo.FindByTutorNome(nome)
	if err != nil {
		log.Errorf("failed to search atendimentos by tutor nome: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AtendimentoResponse, len(atendimentos))
	for i, atendimento := range atendimentos {
		resp[i] = toAtendimentoResponse(atendimento)
	}
	return resp, nil
}

// UpdateAtendimento replaces the pet association and the whole service set.
func (a *DefaultAtendimentoService) UpdateAtendimento(id uint, req *AtendimentoRequest) (*AtendimentoResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	existing, err := a.AtendimentoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch atendimento %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if existing == nil {
		return nil, apierror.NotFoundError
	}

	data, err := utils.FromEpoch(req.Data)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	atendimento := &entity.Atendimento{
		ID:         id,
		Data:       data,
		ValorTotal: req.ValorTotal,
		PetID:      req.PetID,
	}

	err = a.AtendimentoRepo.Update(atendimento, req.Servicos)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, apierror.NewSimple(http.StatusBadRequest, "Erro ao atualizar atendimento")
		}
		log.Errorf("failed to update atendimento %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	updated, err := a.AtendimentoRepo.FindByID(id)
	if err != nil || updated == nil {
		log.Errorf("failed to reload atendimento %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAtendimentoResponse(updated), nil
}

func (a *DefaultAtendimentoService) DeleteAtendimento(id uint) apierror.ErrorResponse {
	atendimento, err := a.AtendimentoRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch atendimento %d: %v", id, err)
		return apierror.InternalServerError
	}

	if atendimento == nil {
		return apierror.NotFoundError
	}

	err = a.AtendimentoRepo.Delete(atendimento)
	if err != nil {
		log.Errorf("failed to delete atendimento %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// ComputeTotal sums the selected services' prices, rounded to two decimal
// places. Advisory only: create and update persist whatever total the
// caller submits.
func ComputeTotal(servicos []*entity.Servico) float64 {
	var total float64
	for _, servico := range servicos {
		total += servico.Valor
	}
	return utils.RoundMoney(total)
}

func toAtendimentoResponse(atendimento *entity.Atendimento) *AtendimentoResponse {
	resp := &AtendimentoResponse{
		ID:         atendimento.ID,
		Data:       utils.FormatEpoch(atendimento.Data),
		ValorTotal: atendimento.ValorTotal,
		Pets:       []*PetResponse{},
		Servicos:   make([]*ServicoResponse, len(atendimento.Servicos)),
	}

	// The API presents the single pet association as a one-element list.
	if atendimento.Pet != nil {
		resp.Pets = append(resp.Pets, toPetResponse(atendimento.Pet))
	}

	for i := range atendimento.Servicos {
		resp.Servicos[i] = toServicoResponse(&atendimento.Servicos[i])
	}
	return resp
}

func isConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "constraint failed")
}
