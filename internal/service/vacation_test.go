package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"
)

func TestVacationCreateWithDaysShortcut(t *testing.T) {
	services := setupTestServices(t)
	col := createCollaborator(t, services, "Ana", "RE-001", schedule.EscalaAltA)

	// Atalho "+20 dias": o início conta como primeiro dia
	vacation, err := services.vacations.Create(col.ID, mustParseDay(t, "2026-01-05"), time.Time{}, 20)
	if err != nil {
		t.Fatalf("failed to create vacation: %v", err)
	}

	if got := schedule.FormatISO(vacation.EndDate); got != "2026-01-24" {
		t.Fatalf("expected end 2026-01-24, got %s", got)
	}
}

func TestVacationCreateValidation(t *testing.T) {
	services := setupTestServices(t)
	col := createCollaborator(t, services, "Ana", "RE-001", schedule.EscalaAltA)

	// Sem fim e sem atalho
	if _, err := services.vacations.Create(col.ID, mustParseDay(t, "2026-01-05"), time.Time{}, 0); !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// Fim antes do início
	if _, err := services.vacations.Create(col.ID, mustParseDay(t, "2026-01-10"), mustParseDay(t, "2026-01-05"), 0); !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted range, got %v", err)
	}
}

func TestVacationCreateUnknownCollaborator(t *testing.T) {
	services := setupTestServices(t)

	_, err := services.vacations.Create(999, mustParseDay(t, "2026-01-05"), mustParseDay(t, "2026-01-10"), 0)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVacationCreateOverlapConflict(t *testing.T) {
	services := setupTestServices(t)
	col := createCollaborator(t, services, "Ana", "RE-001", schedule.EscalaAltA)

	if _, err := services.vacations.Create(col.ID, mustParseDay(t, "2026-01-08"), mustParseDay(t, "2026-01-21"), 0); err != nil {
		t.Fatalf("expected first vacation accepted, got %v", err)
	}

	_, err := services.vacations.Create(col.ID, mustParseDay(t, "2026-01-15"), mustParseDay(t, "2026-01-25"), 0)
	if !errors.Is(err, repository.ErrVacationOverlap) {
		t.Fatalf("expected ErrVacationOverlap, got %v", err)
	}
}

func TestVacationRemoveCoveringDeletesWholePeriod(t *testing.T) {
	services := setupTestServices(t)
	col := createCollaborator(t, services, "Ana", "RE-001", schedule.EscalaAltA)

	created, err := services.vacations.Create(col.ID, mustParseDay(t, "2026-01-08"), mustParseDay(t, "2026-01-21"), 0)
	if err != nil {
		t.Fatalf("failed to create vacation: %v", err)
	}

	// Remover pelo dia do meio apaga o período inteiro
	removed, err := services.vacations.RemoveCovering(col.ID, mustParseDay(t, "2026-01-15"))
	if err != nil {
		t.Fatalf("failed to remove covering vacation: %v", err)
	}
	if removed.ID != created.ID {
		t.Fatalf("expected period %d removed, got %d", created.ID, removed.ID)
	}

	remaining, err := services.vacations.ListByYear(2026)
	if err != nil {
		t.Fatalf("failed to list vacations: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no vacations left, got %d", len(remaining))
	}
}

func TestVacationRemoveCoveringUncoveredDay(t *testing.T) {
	services := setupTestServices(t)
	col := createCollaborator(t, services, "Ana", "RE-001", schedule.EscalaAltA)

	if _, err := services.vacations.RemoveCovering(col.ID, mustParseDay(t, "2026-06-01")); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
