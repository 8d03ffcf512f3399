package service

import (
	"path/filepath"
	"testing"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/db"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"
)

type testServices struct {
	collaborators *CollaboratorService
	vacations     *VacationService
	dayOffs       *DayOffService
	planner       *PlannerService
}

func setupTestServices(t *testing.T) testServices {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "folgas_test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	collaboratorRepo, err := repository.NewGormCollaboratorRepository(database)
	if err != nil {
		t.Fatalf("failed to create collaborator repository: %v", err)
	}
	vacationRepo, err := repository.NewGormVacationRepository(database)
	if err != nil {
		t.Fatalf("failed to create vacation repository: %v", err)
	}
	dayOffRepo, err := repository.NewGormDayOffRepository(database)
	if err != nil {
		t.Fatalf("failed to create day off repository: %v", err)
	}

	anchor, err := schedule.ParseISO("2025-01-01")
	if err != nil {
		t.Fatalf("failed to parse anchor: %v", err)
	}

	return testServices{
		collaborators: NewCollaboratorService(collaboratorRepo),
		vacations:     NewVacationService(vacationRepo, collaboratorRepo),
		dayOffs:       NewDayOffService(dayOffRepo, collaboratorRepo),
		planner:       NewPlannerService(collaboratorRepo, vacationRepo, dayOffRepo, anchor),
	}
}

func createCollaborator(t *testing.T, services testServices, name, re, escala string) *models.Collaborator {
	t.Helper()

	created, err := services.collaborators.Create(&models.Collaborator{
		Name:             name,
		RegistrationCode: re,
		BadgeNumber:      100,
		Team:             "Equipe 1",
		SupervisionGroup: "L9C",
		WorkCycle:        escala,
	})
	if err != nil {
		t.Fatalf("failed to create collaborator %s: %v", name, err)
	}
	return created
}
