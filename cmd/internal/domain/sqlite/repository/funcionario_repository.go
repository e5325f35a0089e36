package repository

import (
	"errors"
	"petshop/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultFuncionarioRepository struct {
	db *gorm.DB
}

func NewFuncionarioRepository(db *gorm.DB) *DefaultFuncionarioRepository {
	return &DefaultFuncionarioRepository{db: db}
}

func (f *DefaultFuncionarioRepository) FindByID(id uint) (*entity.Funcionario, error) {
	var funcionario entity.Funcionario
	err := f.db.First(&funcionario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &funcionario, err
}

func (f *DefaultFuncionarioRepository) FindByEmail(email string) (*entity.Funcionario, error) {
	var funcionario entity.Funcionario
	err := f.db.Where("email = ?", email).First(&funcionario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &funcionario, err
}

func (f *DefaultFuncionarioRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := f.db.Model(&entity.Funcionario{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (f *DefaultFuncionarioRepository) FindPage(offset, limit int) ([]*entity.Funcionario, int64, error) {
	var funcionarios []*entity.Funcionario
	err := f.db.Offset(offset).Limit(limit).Find(&funcionarios).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = f.db.Model(&entity.Funcionario{}).Count(&total).Error
	return funcionarios, total, err
}

func (f *DefaultFuncionarioRepository) Save(funcionario *entity.Funcionario) error {
	return f.db.Save(funcionario).Error
}

func (f *DefaultFuncionarioRepository) Delete(funcionario *entity.Funcionario) error {
	return f.db.Delete(funcionario).Error
}
