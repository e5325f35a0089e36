package repository

import (
	"errors"
	"petshop/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTutorRepository struct {
	db *gorm.DB
}

func NewTutorRepository(db *gorm.DB) *DefaultTutorRepository {
	return &DefaultTutorRepository{db: db}
}

func (t *DefaultTutorRepository) FindByID(id uint) (*entity.Tutor, error) {
	var tutor entity.Tutor
	err := t.db.First(&tutor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tutor, err
}

func (t *DefaultTutorRepository) FindByCPF(cpf string) (*entity.Tutor, error) {
	var tutor entity.Tutor
	err := t.db.Where("cpf = ?", cpf).First(&tutor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tutor, err
}

func (t *DefaultTutorRepository) FindAll() ([]*entity.Tutor, error) {
	var tutors []*entity.Tutor
	err := t.db.Find(&tutors).Error
	return tutors, err
}

func (t *DefaultTutorRepository) FindPage(offset, limit int) ([]*entity.Tutor, int64, error) {
	var tutors []*entity.Tutor
	err := t.db.Preload("Pets").Offset(offset).Limit(limit).Find(&tutors).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = t.db.Model(&entity.Tutor{}).Count(&total).Error
	return tutors, total, err
}

func (t *DefaultTutorRepository) Save(tutor *entity.Tutor) error {
	return t.db.Save(tutor).Error
}

// DeleteWithPets removes the tutor and every pet owned by it as a single
// atomic unit. This is the only multi-statement transaction in the system.
func (t *DefaultTutorRepository) DeleteWithPets(tutor *entity.Tutor) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tutor_id = ?", tutor.ID).Delete(&entity.Pet{}).Error; err != nil {
			return err
		}
		return tx.Delete(tutor).Error
	})
}
