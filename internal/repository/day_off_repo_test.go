package repository

import (
	"errors"
	"testing"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
)

func TestDayOffCreateRejectsDuplicate(t *testing.T) {
	repos := setupTestRepos(t)
	col := createTestCollaborator(t, repos, "Ana", "RE-001")

	first := &models.DayOff{CollaboratorID: col.ID, Date: mustParseDay(t, "2026-01-10")}
	if err := repos.dayOffs.Create(first); err != nil {
		t.Fatalf("expected first day off accepted, got %v", err)
	}

	duplicate := &models.DayOff{CollaboratorID: col.ID, Date: mustParseDay(t, "2026-01-10")}
	if err := repos.dayOffs.Create(duplicate); !errors.Is(err, ErrDayOffDuplicate) {
		t.Fatalf("expected ErrDayOffDuplicate, got %v", err)
	}
}

func TestDayOffCreateAllowsOtherDateAndCollaborator(t *testing.T) {
	repos := setupTestRepos(t)
	ana := createTestCollaborator(t, repos, "Ana", "RE-001")
	bruno := createTestCollaborator(t, repos, "Bruno", "RE-002")

	if err := repos.dayOffs.Create(&models.DayOff{CollaboratorID: ana.ID, Date: mustParseDay(t, "2026-01-10")}); err != nil {
		t.Fatalf("failed to create day off: %v", err)
	}
	if err := repos.dayOffs.Create(&models.DayOff{CollaboratorID: ana.ID, Date: mustParseDay(t, "2026-01-11")}); err != nil {
		t.Fatalf("expected other date accepted, got %v", err)
	}
	if err := repos.dayOffs.Create(&models.DayOff{CollaboratorID: bruno.ID, Date: mustParseDay(t, "2026-01-10")}); err != nil {
		t.Fatalf("expected other collaborator accepted, got %v", err)
	}
}

func TestDayOffGetByDateRange(t *testing.T) {
	repos := setupTestRepos(t)
	col := createTestCollaborator(t, repos, "Ana", "RE-001")

	for _, day := range []string{"2026-01-05", "2026-01-07", "2026-01-20"} {
		if err := repos.dayOffs.Create(&models.DayOff{CollaboratorID: col.ID, Date: mustParseDay(t, day)}); err != nil {
			t.Fatalf("failed to create day off %s: %v", day, err)
		}
	}

	// Intervalo fechado: 05 e 11 inclusos
	week, err := repos.dayOffs.GetByDateRange(mustParseDay(t, "2026-01-05"), mustParseDay(t, "2026-01-11"))
	if err != nil {
		t.Fatalf("failed to list day offs: %v", err)
	}
	if len(week) != 2 {
		t.Fatalf("expected 2 day offs in range, got %d", len(week))
	}
	if !week[0].Date.Before(week[1].Date) {
		t.Fatal("expected day offs ordered by date")
	}
}

func TestDayOffDeleteMissing(t *testing.T) {
	repos := setupTestRepos(t)

	if err := repos.dayOffs.Delete(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
