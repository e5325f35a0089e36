package repository

import (
	"errors"
	"petshop/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultServicoRepository struct {
	db *gorm.DB
}

func NewServicoRepository(db *gorm.DB) *DefaultServicoRepository {
	return &DefaultServicoRepository{db: db}
}

func (s *DefaultServicoRepository) FindByID(id uint) (*entity.Servico, error) {
	var servico entity.Servico
	err := s.db.First(&servico, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &servico, err
}

func (s *DefaultServicoRepository) FindByNome(nome string) (*entity.Servico, error) {
	var servico entity.Servico
	err := s.db.Where("nome = ?", nome).First(&servico).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &servico, err
}

func (s *DefaultServicoRepository) FindPage(offset, limit int) ([]*entity.Servico, int64, error) {
	var servicos []*entity.Servico
	err := s.db.Offset(offset).Limit(limit).Find(&servicos).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = s.db.Model(&entity.Servico{}).Count(&total).Error
	return servicos, total, err
}

func (s *DefaultServicoRepository) ExistsByNome(nome string) (bool, error) {
	var count int64
	err := s.db.Model(&entity.Servico{}).
		Where("nome = ?", nome).
		Count(&count).Error
	return count > 0, err
}

func (s *DefaultServicoRepository) Save(servico *entity.Servico) error {
	return s.db.Save(servico).Error
}

func (s *DefaultServicoRepository) Delete(servico *entity.Servico) error {
	return s.db.Delete(servico).Error
}
