package repository

import (
	"errors"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DayOffRepository interface {
	Create(dayOff *models.DayOff) error
	GetByID(id uint) (*models.DayOff, error)
	GetAll() ([]models.DayOff, error)
	GetByDateRange(start, end time.Time) ([]models.DayOff, error)
	GetByCollaboratorAndDate(collaboratorID uint, date time.Time) (*models.DayOff, error)
	Delete(id uint) error
}

type GormDayOffRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormDayOffRepository(db *gorm.DB) (DayOffRepository, error) {
	if err := db.AutoMigrate(&models.DayOff{}); err != nil {
		return nil, err
	}
	return &GormDayOffRepository{db: db, logger: logrus.StandardLogger()}, nil
}

// Create insere a folga confiando no índice único (colaborador, data)
// como palavra final: a violação vinda do banco vira ErrDayOffDuplicate
// mesmo que duas criações concorrentes passem pela checagem local.
func (r *GormDayOffRepository) Create(dayOff *models.DayOff) error {
	err := r.db.Create(dayOff).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDayOffDuplicate
	}
	if err != nil {
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id":          dayOff.ID,
		"colaborador": dayOff.CollaboratorID,
		"data":        dayOff.Date.Format("2006-01-02"),
	}).Info("Day off created")
	return nil
}

func (r *GormDayOffRepository) GetByID(id uint) (*models.DayOff, error) {
	var dayOff models.DayOff
	err := r.db.First(&dayOff, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dayOff, nil
}

func (r *GormDayOffRepository) GetAll() ([]models.DayOff, error) {
	var dayOffs []models.DayOff
	err := r.db.Order("date ASC").Find(&dayOffs).Error
	return dayOffs, err
}

// GetByDateRange filtra folgas pelo intervalo fechado de datas, como
// a listagem original (?start&end).
func (r *GormDayOffRepository) GetByDateRange(start, end time.Time) ([]models.DayOff, error) {
	var dayOffs []models.DayOff
	err := r.db.Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC").
		Find(&dayOffs).Error
	return dayOffs, err
}

func (r *GormDayOffRepository) GetByCollaboratorAndDate(collaboratorID uint, date time.Time) (*models.DayOff, error) {
	var dayOff models.DayOff
	err := r.db.Where("colaborador_id = ? AND date = ?", collaboratorID, date).
		First(&dayOff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dayOff, nil
}

func (r *GormDayOffRepository) Delete(id uint) error {
	result := r.db.Delete(&models.DayOff{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
