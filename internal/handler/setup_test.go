package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/db"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/service"

	"github.com/gofiber/fiber/v2"
)

// setupTestApp sobe a aplicação inteira contra um SQLite descartável,
// igual ao main, para exercer as rotas de ponta a ponta.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "folgas_test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	collaboratorRepo, err := repository.NewGormCollaboratorRepository(database)
	if err != nil {
		t.Fatalf("failed to init collaborator repository: %v", err)
	}
	vacationRepo, err := repository.NewGormVacationRepository(database)
	if err != nil {
		t.Fatalf("failed to init vacation repository: %v", err)
	}
	dayOffRepo, err := repository.NewGormDayOffRepository(database)
	if err != nil {
		t.Fatalf("failed to init day off repository: %v", err)
	}

	anchor := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	h := NewHandler(
		service.NewCollaboratorService(collaboratorRepo),
		service.NewVacationService(vacationRepo, collaboratorRepo),
		service.NewDayOffService(dayOffRepo, collaboratorRepo),
		service.NewPlannerService(collaboratorRepo, vacationRepo, dayOffRepo, anchor),
	)

	app := fiber.New()
	RegisterRoutes(app, h)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, target, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func createTestCollaborator(t *testing.T, app *fiber.App, name, re, escala string) uint {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/colaboradores", map[string]interface{}{
		"nome":            name,
		"re":              re,
		"numero":          100,
		"equipe":          "Equipe 1",
		"escala":          "L9C",
		"escala_trabalho": escala,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 creating collaborator, got %d", resp.StatusCode)
	}

	var envelope struct {
		OK   bool `json:"ok"`
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	decodeBody(t, resp, &envelope)
	if !envelope.OK || envelope.Data.ID == 0 {
		t.Fatalf("unexpected create response: %+v", envelope)
	}
	return envelope.Data.ID
}
