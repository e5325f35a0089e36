package repository

import (
	"errors"
	"petshop/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAtendimentoRepository struct {
	db *gorm.DB
}

func NewAtendimentoRepository(db *gorm.DB) *DefaultAtendimentoRepository {
	return &DefaultAtendimentoRepository{db: db}
}

func (a *DefaultAtendimentoRepository) FindByID(id uint) (*entity.Atendimento, error) {
	var atendimento entity.Atendimento
	err := a.db.Preload("Pet.Tutor").Preload("Servicos").First(&atendimento, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &atendimento, err
}

func (a *DefaultAtendimentoRepository) FindPage(offset, limit int) ([]*entity.Atendimento, int64, error) {
	var atendimentos []*entity.Atendimento
	err := a.db.Preload("Pet.Tutor").Preload("Servicos").
		Order("data desc").
		Offset(offset).Limit(limit).
		Find(&atendimentos).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = a.db.Model(&entity.Atendimento{}).Count(&total).Error
	return atendimentos, total, err
}

// FindByTutorNome matches atendimentos whose pet's tutor name contains the
// given substring. instr() keeps the match case-sensitive; SQLite LIKE
// folds ASCII case.
func (a *DefaultAtendimentoRepository) FindByTutorNome(nome string) ([]*entity.Atendimento, error) {
	var atendimentos []*entity.Atendimento
	err := a.db.Preload("Pet.Tutor").Preload("Servicos").
		Joins("JOIN pets ON pets.id = atendimentos.pet_id").
		Joins("JOIN tutors ON tutors.id = pets.tutor_id").
		Where("instr(tutors.nome, ?) > 0", nome).
		Order("atendimentos.data desc").
		Find(&atendimentos).Error
	return atendimentos, err
}

// Save persists the atendimento and its service references. The pet and
// service ids are written as-is; broken references fail on the store's
// foreign keys rather than being looked up first.
func (a *DefaultAtendimentoRepository) Save(atendimento *entity.Atendimento, servicoIDs []uint) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Servicos", "Pet").Create(atendimento).Error; err != nil {
			return err
		}
		return insertServicoRefs(tx, atendimento.ID, servicoIDs)
	})
}

// Update replaces the atendimento's fields, pet association and service set.
func (a *DefaultAtendimentoRepository) Update(atendimento *entity.Atendimento, servicoIDs []uint) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Atendimento{}).
			Where("id = ?", atendimento.ID).
			Updates(map[string]any{
				"data":        atendimento.Data,
				"valor_total": atendimento.ValorTotal,
				"pet_id":      atendimento.PetID,
			}).Error
		if err != nil {
			return err
		}

		err = tx.Exec("DELETE FROM atendimento_servicos WHERE atendimento_id = ?", atendimento.ID).Error
		if err != nil {
			return err
		}
		return insertServicoRefs(tx, atendimento.ID, servicoIDs)
	})
}

func (a *DefaultAtendimentoRepository) Delete(atendimento *entity.Atendimento) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec("DELETE FROM atendimento_servicos WHERE atendimento_id = ?", atendimento.ID).Error
		if err != nil {
			return err
		}
		return tx.Delete(atendimento).Error
	})
}

func insertServicoRefs(tx *gorm.DB, atendimentoID uint, servicoIDs []uint) error {
	for _, servicoID := range servicoIDs {
		err := tx.Exec(
			"INSERT INTO atendimento_servicos (atendimento_id, servico_id) VALUES (?, ?)",
			atendimentoID, servicoID,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
