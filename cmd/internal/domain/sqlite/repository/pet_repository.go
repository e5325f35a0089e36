package repository

import (
	"errors"
	"petshop/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultPetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *DefaultPetRepository {
	return &DefaultPetRepository{db: db}
}

func (p *DefaultPetRepository) FindByID(id uint) (*entity.Pet, error) {
	var pet entity.Pet
	err := p.db.Preload("Tutor").First(&pet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pet, err
}

func (p *DefaultPetRepository) FindPage(offset, limit int) ([]*entity.Pet, int64, error) {
	var pets []*entity.Pet
	err := p.db.Preload("Tutor").Offset(offset).Limit(limit).Find(&pets).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = p.db.Model(&entity.Pet{}).Count(&total).Error
	return pets, total, err
}

func (p *DefaultPetRepository) FindByTutorCPF(cpf string) ([]*entity.Pet, error) {
	var pets []*entity.Pet
	err := p.db.Preload("Tutor").
		Joins("JOIN tutors ON tutors.id = pets.tutor_id").
		Where("tutors.cpf = ?", cpf).
		Find(&pets).Error
	return pets, err
}

func (p *DefaultPetRepository) CountByTutorID(tutorID uint) (int64, error) {
	var count int64
	err := p.db.Model(&entity.Pet{}).
		Where("tutor_id = ?", tutorID).
		Count(&count).Error
	return count, err
}

func (p *DefaultPetRepository) Save(pet *entity.Pet) error {
	return p.db.Save(pet).Error
}

func (p *DefaultPetRepository) Delete(pet *entity.Pet) error {
	return p.db.Delete(pet).Error
}
