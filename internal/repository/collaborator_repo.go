package repository

import (
	"errors"
	"fmt"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CollaboratorRepository interface {
	Create(collaborator *models.Collaborator) error
	GetByID(id uint) (*models.Collaborator, error)
	GetAll() ([]models.Collaborator, error)
	Update(id uint, changes map[string]interface{}) (*models.Collaborator, error)
	Delete(id uint) error
}

type GormCollaboratorRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormCollaboratorRepository(db *gorm.DB) (CollaboratorRepository, error) {
	// Automigração - cria a tabela colaboradores se não existir
	if err := db.AutoMigrate(&models.Collaborator{}); err != nil {
		return nil, err
	}
	return &GormCollaboratorRepository{db: db, logger: logrus.StandardLogger()}, nil
}

func (r *GormCollaboratorRepository) Create(collaborator *models.Collaborator) error {
	err := r.db.Create(collaborator).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// RE é único; o banco é a palavra final sobre duplicidade
		return fmt.Errorf("%w: re já cadastrado", ErrInvalidInput)
	}
	if err != nil {
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id": collaborator.ID,
		"re": collaborator.RegistrationCode,
	}).Info("Collaborator created")
	return nil
}

func (r *GormCollaboratorRepository) GetByID(id uint) (*models.Collaborator, error) {
	var collaborator models.Collaborator
	err := r.db.First(&collaborator, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// GetAll retorna todos os colaboradores ordenados por nome, como a
// listagem original.
func (r *GormCollaboratorRepository) GetAll() ([]models.Collaborator, error) {
	var collaborators []models.Collaborator
	err := r.db.Order("nome ASC").Find(&collaborators).Error
	return collaborators, err
}

// Update aplica um merge parcial: somente as colunas presentes em
// changes são alteradas.
func (r *GormCollaboratorRepository) Update(id uint, changes map[string]interface{}) (*models.Collaborator, error) {
	result := r.db.Model(&models.Collaborator{}).Where("id = ?", id).Updates(changes)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("%w: re já cadastrado", ErrInvalidInput)
	}
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(id)
}

// Delete remove o colaborador e, na mesma transação, as férias e as
// folgas dele (o colaborador é dono desses registros).
func (r *GormCollaboratorRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("colaborador_id = ?", id).Delete(&models.Vacation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("colaborador_id = ?", id).Delete(&models.DayOff{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Collaborator{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.WithField("id", id).Info("Collaborator deleted with owned records")
	return nil
}
