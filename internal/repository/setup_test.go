package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/db"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"
)

type testRepos struct {
	collaborators CollaboratorRepository
	vacations     VacationRepository
	dayOffs       DayOffRepository
}

func setupTestRepos(t *testing.T) testRepos {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "folgas_test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	collaborators, err := NewGormCollaboratorRepository(database)
	if err != nil {
		t.Fatalf("failed to create collaborator repository: %v", err)
	}
	vacations, err := NewGormVacationRepository(database)
	if err != nil {
		t.Fatalf("failed to create vacation repository: %v", err)
	}
	dayOffs, err := NewGormDayOffRepository(database)
	if err != nil {
		t.Fatalf("failed to create day off repository: %v", err)
	}

	return testRepos{collaborators: collaborators, vacations: vacations, dayOffs: dayOffs}
}

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := schedule.ParseISO(raw)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", raw, err)
	}
	return parsed
}

func createTestCollaborator(t *testing.T, repos testRepos, name, re string) *models.Collaborator {
	t.Helper()

	collaborator := &models.Collaborator{
		Name:             name,
		RegistrationCode: re,
		BadgeNumber:      100,
		Team:             "Equipe 1",
		SupervisionGroup: "L9C",
		WorkCycle:        schedule.EscalaAltA,
	}
	if err := repos.collaborators.Create(collaborator); err != nil {
		t.Fatalf("failed to create collaborator: %v", err)
	}
	return collaborator
}
