package service

import (
	"fmt"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"

	"github.com/sirupsen/logrus"
)

type VacationService struct {
	vacationRepo     repository.VacationRepository
	collaboratorRepo repository.CollaboratorRepository
	logger           *logrus.Logger
}

func NewVacationService(
	vacationRepo repository.VacationRepository,
	collaboratorRepo repository.CollaboratorRepository,
) *VacationService {
	return &VacationService{
		vacationRepo:     vacationRepo,
		collaboratorRepo: collaboratorRepo,
		logger:           logrus.StandardLogger(),
	}
}

// Create cadastra um período de férias. Quando end é zero e days > 0
// o fim é derivado do início (atalho "+20 dias"/"+30 dias": o início
// conta como primeiro dia).
//
// A checagem de sobreposição local é só atalho; a transação do
// repositório é quem decide de verdade.
func (s *VacationService) Create(collaboratorID uint, start, end time.Time, days int) (*models.Vacation, error) {
	start = schedule.DateOnly(start)
	if end.IsZero() && days > 0 {
		end = schedule.AddDays(start, days-1)
	}
	end = schedule.DateOnly(end)

	vacation := &models.Vacation{
		CollaboratorID: collaboratorID,
		StartDate:      start,
		EndDate:        end,
	}
	if !vacation.IsValid() {
		return nil, fmt.Errorf("%w para férias", repository.ErrInvalidInput)
	}

	if _, err := s.collaboratorRepo.GetByID(collaboratorID); err != nil {
		return nil, err
	}

	existing, err := s.vacationRepo.GetByCollaboratorID(collaboratorID)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if schedule.RangesOverlap(other.StartDate, other.EndDate, start, end) {
			return nil, repository.ErrVacationOverlap
		}
	}

	if err := s.vacationRepo.Create(vacation); err != nil {
		return nil, err
	}
	return vacation, nil
}

// ListByYear retorna os períodos que começam no ano, ordenados pelo
// início. Ano zero retorna tudo.
func (s *VacationService) ListByYear(year int) ([]models.Vacation, error) {
	if year == 0 {
		return s.vacationRepo.GetAll()
	}
	return s.vacationRepo.GetByYear(year)
}

func (s *VacationService) Delete(id uint) error {
	return s.vacationRepo.Delete(id)
}

// RemoveCovering localiza o período do colaborador que cobre o dia e o
// remove inteiro. Não existe edição parcial: tirar o dia tira o período.
func (s *VacationService) RemoveCovering(collaboratorID uint, day time.Time) (*models.Vacation, error) {
	day = schedule.DateOnly(day)

	vacation, err := s.vacationRepo.FindCovering(collaboratorID, day)
	if err != nil {
		return nil, err
	}

	if err := s.vacationRepo.Delete(vacation.ID); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":          vacation.ID,
		"colaborador": collaboratorID,
		"dia":         schedule.FormatISO(day),
	}).Info("Vacation period removed by covered day")
	return vacation, nil
}
