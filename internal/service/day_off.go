package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"

	"github.com/sirupsen/logrus"
)

type DayOffService struct {
	dayOffRepo       repository.DayOffRepository
	collaboratorRepo repository.CollaboratorRepository
	logger           *logrus.Logger
}

func NewDayOffService(
	dayOffRepo repository.DayOffRepository,
	collaboratorRepo repository.CollaboratorRepository,
) *DayOffService {
	return &DayOffService{
		dayOffRepo:       dayOffRepo,
		collaboratorRepo: collaboratorRepo,
		logger:           logrus.StandardLogger(),
	}
}

// Create cadastra uma folga avulsa. A checagem local de duplicidade é
// atalho; o índice único do banco é a palavra final.
func (s *DayOffService) Create(collaboratorID uint, date time.Time) (*models.DayOff, error) {
	dayOff := &models.DayOff{
		CollaboratorID: collaboratorID,
		Date:           schedule.DateOnly(date),
	}
	if !dayOff.IsValid() {
		return nil, fmt.Errorf("%w para folga", repository.ErrInvalidInput)
	}

	if _, err := s.collaboratorRepo.GetByID(collaboratorID); err != nil {
		return nil, err
	}

	_, err := s.dayOffRepo.GetByCollaboratorAndDate(collaboratorID, dayOff.Date)
	if err == nil {
		return nil, repository.ErrDayOffDuplicate
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.dayOffRepo.Create(dayOff); err != nil {
		return nil, err
	}
	return dayOff, nil
}

// ListRange retorna as folgas no intervalo fechado [start,end],
// ordenadas pela data. Datas zero retornam tudo.
func (s *DayOffService) ListRange(start, end time.Time) ([]models.DayOff, error) {
	if start.IsZero() || end.IsZero() {
		return s.dayOffRepo.GetAll()
	}
	return s.dayOffRepo.GetByDateRange(schedule.DateOnly(start), schedule.DateOnly(end))
}

func (s *DayOffService) Delete(id uint) error {
	return s.dayOffRepo.Delete(id)
}
