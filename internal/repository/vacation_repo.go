package repository

import (
	"errors"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type VacationRepository interface {
	Create(vacation *models.Vacation) error
	GetByID(id uint) (*models.Vacation, error)
	GetAll() ([]models.Vacation, error)
	GetByYear(year int) ([]models.Vacation, error)
	GetByCollaboratorID(collaboratorID uint) ([]models.Vacation, error)
	FindCovering(collaboratorID uint, day time.Time) (*models.Vacation, error)
	Delete(id uint) error
}

type GormVacationRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormVacationRepository(db *gorm.DB) (VacationRepository, error) {
	if err := db.AutoMigrate(&models.Vacation{}); err != nil {
		return nil, err
	}
	return &GormVacationRepository{db: db, logger: logrus.StandardLogger()}, nil
}

// Create insere o período dentro de uma transação que primeiro conta
// sobreposições do mesmo colaborador. A verificação e o insert são
// atômicos: de duas criações concorrentes sobrepostas, no máximo uma
// passa.
func (r *GormVacationRepository) Create(vacation *models.Vacation) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Vacation{}).
			Where("colaborador_id = ? AND start_date <= ? AND end_date >= ?",
				vacation.CollaboratorID, vacation.EndDate, vacation.StartDate).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrVacationOverlap
		}

		return tx.Create(vacation).Error
	})
	if err != nil {
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id":          vacation.ID,
		"colaborador": vacation.CollaboratorID,
		"inicio":      vacation.StartDate.Format("2006-01-02"),
		"fim":         vacation.EndDate.Format("2006-01-02"),
	}).Info("Vacation period created")
	return nil
}

func (r *GormVacationRepository) GetByID(id uint) (*models.Vacation, error) {
	var vacation models.Vacation
	err := r.db.First(&vacation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vacation, nil
}

func (r *GormVacationRepository) GetAll() ([]models.Vacation, error) {
	var vacations []models.Vacation
	err := r.db.Order("start_date ASC").Find(&vacations).Error
	return vacations, err
}

// GetByYear filtra pelos períodos cuja data de início cai no ano, como
// a listagem original (?year=).
func (r *GormVacationRepository) GetByYear(year int) ([]models.Vacation, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var vacations []models.Vacation
	err := r.db.Where("start_date BETWEEN ? AND ?", start, end).
		Order("start_date ASC").
		Find(&vacations).Error
	return vacations, err
}

func (r *GormVacationRepository) GetByCollaboratorID(collaboratorID uint) ([]models.Vacation, error) {
	var vacations []models.Vacation
	err := r.db.Where("colaborador_id = ?", collaboratorID).
		Order("start_date ASC").
		Find(&vacations).Error
	return vacations, err
}

// FindCovering localiza o único período do colaborador que contém o
// dia informado.
func (r *GormVacationRepository) FindCovering(collaboratorID uint, day time.Time) (*models.Vacation, error) {
	var vacation models.Vacation
	err := r.db.Where("colaborador_id = ? AND start_date <= ? AND end_date >= ?",
		collaboratorID, day, day).
		First(&vacation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vacation, nil
}

func (r *GormVacationRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Vacation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
