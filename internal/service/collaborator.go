package service

import (
	"fmt"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"

	"github.com/sirupsen/logrus"
)

type CollaboratorService struct {
	repo   repository.CollaboratorRepository
	logger *logrus.Logger
}

func NewCollaboratorService(repo repository.CollaboratorRepository) *CollaboratorService {
	return &CollaboratorService{repo: repo, logger: logrus.StandardLogger()}
}

// UpdateCollaboratorInput - merge parcial: só os campos não-nulos são aplicados.
type UpdateCollaboratorInput struct {
	Name             *string `json:"nome"`
	RegistrationCode *string `json:"re"`
	BadgeNumber      *int    `json:"numero"`
	Team             *string `json:"equipe"`
	SupervisionGroup *string `json:"escala"`
	WorkCycle        *string `json:"escala_trabalho"`
}

// Create valida os campos obrigatórios antes de tocar o banco.
func (s *CollaboratorService) Create(collaborator *models.Collaborator) (*models.Collaborator, error) {
	if !collaborator.IsValid() {
		return nil, fmt.Errorf("%w para colaborador", repository.ErrInvalidInput)
	}

	if err := s.repo.Create(collaborator); err != nil {
		return nil, err
	}
	return collaborator, nil
}

// List retorna todos os colaboradores ordenados por nome.
func (s *CollaboratorService) List() ([]models.Collaborator, error) {
	return s.repo.GetAll()
}

func (s *CollaboratorService) Get(id uint) (*models.Collaborator, error) {
	return s.repo.GetByID(id)
}

// Update monta o change-set a partir dos campos presentes no input e
// aplica o merge parcial. Campo presente mas vazio é entrada inválida.
func (s *CollaboratorService) Update(id uint, input UpdateCollaboratorInput) (*models.Collaborator, error) {
	changes := map[string]interface{}{}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: nome vazio", repository.ErrInvalidInput)
		}
		changes["nome"] = *input.Name
	}
	if input.RegistrationCode != nil {
		if *input.RegistrationCode == "" {
			return nil, fmt.Errorf("%w: re vazio", repository.ErrInvalidInput)
		}
		changes["re"] = *input.RegistrationCode
	}
	if input.BadgeNumber != nil {
		if *input.BadgeNumber == 0 {
			return nil, fmt.Errorf("%w: numero vazio", repository.ErrInvalidInput)
		}
		changes["numero"] = *input.BadgeNumber
	}
	if input.Team != nil {
		if *input.Team == "" {
			return nil, fmt.Errorf("%w: equipe vazia", repository.ErrInvalidInput)
		}
		changes["equipe"] = *input.Team
	}
	if input.SupervisionGroup != nil {
		if *input.SupervisionGroup == "" {
			return nil, fmt.Errorf("%w: escala vazia", repository.ErrInvalidInput)
		}
		changes["escala"] = *input.SupervisionGroup
	}
	if input.WorkCycle != nil {
		if !schedule.IsValidEscala(*input.WorkCycle) {
			return nil, fmt.Errorf("%w: escala de trabalho desconhecida", repository.ErrInvalidInput)
		}
		changes["escala_trabalho"] = *input.WorkCycle
	}

	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: nenhum campo para atualizar", repository.ErrInvalidInput)
	}

	return s.repo.Update(id, changes)
}

// Delete remove o colaborador junto com as férias e folgas dele.
func (s *CollaboratorService) Delete(id uint) error {
	return s.repo.Delete(id)
}
