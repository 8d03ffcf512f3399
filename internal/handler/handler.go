package handler

import (
	"github.com/lucasdeosantana/ControleDeFolgas/internal/service"

	"github.com/sirupsen/logrus"
)

// Handler agrupa os serviços atrás das rotas HTTP. A apresentação é
// fina de propósito: validação e invariantes moram nos serviços e nos
// repositórios.
type Handler struct {
	collaboratorService *service.CollaboratorService
	vacationService     *service.VacationService
	dayOffService       *service.DayOffService
	plannerService      *service.PlannerService
	logger              *logrus.Logger
}

func NewHandler(
	collaboratorService *service.CollaboratorService,
	vacationService *service.VacationService,
	dayOffService *service.DayOffService,
	plannerService *service.PlannerService,
) *Handler {
	return &Handler{
		collaboratorService: collaboratorService,
		vacationService:     vacationService,
		dayOffService:       dayOffService,
		plannerService:      plannerService,
		logger:              logrus.StandardLogger(),
	}
}
