package service

import (
	"sort"
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/internal/models"
	"github.com/lucasdeosantana/ControleDeFolgas/internal/repository"
	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"
)

// Status de um colaborador escalado num dia. Férias tem precedência
// sobre folga: quem está de férias nunca conta como folga nem como
// disponível, mesmo que exista registro de folga na mesma data.
const (
	StatusVacation  = "ferias"
	StatusDayOff    = "folga"
	StatusAvailable = "disponivel"
)

// CycleBreakdown - escalados do dia por escala de trabalho. Conta
// todos os escalados independente de férias/folga.
type CycleBreakdown struct {
	AltA   int `json:"ALT_A"`
	AltB   int `json:"ALT_B"`
	DomQui int `json:"DOM_QUI"`
}

// DayMetrics - métricas de um dia. Sempre vale
// ferias + folgas + disponiveis == escalados e a soma por escala
// também fecha em escalados.
type DayMetrics struct {
	Scheduled  int            `json:"escalados"`
	OnVacation int            `json:"ferias"`
	OnDayOff   int            `json:"folgas"`
	Available  int            `json:"disponiveis"`
	ByCycle    CycleBreakdown `json:"porEscala"`
}

// DayEntry - um colaborador escalado no dia, com o status resolvido.
// DayOffID permite à interface remover a folga sem nova consulta.
type DayEntry struct {
	Collaborator models.Collaborator `json:"colaborador"`
	Status       string              `json:"status"`
	OnVacation   bool                `json:"ferias"`
	DayOffID     *uint               `json:"folgaId,omitempty"`
}

// DaySummary - um dia resolvido: métricas e a lista de escalados
// ordenada por nome. Quem não está escalado fica fora da lista e das
// métricas, mesmo tendo férias ou folga na data.
type DaySummary struct {
	Date    string     `json:"date"`
	Metrics DayMetrics `json:"metricas"`
	Entries []DayEntry `json:"colaboradores"`
}

// BuildDaySummary resolve um dia a partir dos conjuntos completos de
// colaboradores, férias e folgas. Função pura: mesma entrada, mesma
// saída, nenhum relógio.
func BuildDaySummary(
	day time.Time,
	collaborators []models.Collaborator,
	vacations []models.Vacation,
	dayOffs []models.DayOff,
	anchor time.Time,
) DaySummary {
	day = schedule.DateOnly(day)
	summary := DaySummary{Date: schedule.FormatISO(day), Entries: []DayEntry{}}

	for _, col := range collaborators {
		if !schedule.IsScheduled(day, col.WorkCycle, anchor) {
			continue
		}

		summary.Metrics.Scheduled++
		switch col.WorkCycle {
		case schedule.EscalaAltA:
			summary.Metrics.ByCycle.AltA++
		case schedule.EscalaAltB:
			summary.Metrics.ByCycle.AltB++
		default:
			summary.Metrics.ByCycle.DomQui++
		}

		entry := DayEntry{Collaborator: col, Status: StatusAvailable}

		for _, v := range vacations {
			if v.CollaboratorID == col.ID && schedule.Contains(v.StartDate, v.EndDate, day) {
				entry.OnVacation = true
				break
			}
		}

		for _, f := range dayOffs {
			if f.CollaboratorID == col.ID && schedule.DateOnly(f.Date).Equal(day) {
				id := f.ID
				entry.DayOffID = &id
				break
			}
		}

		switch {
		case entry.OnVacation:
			entry.Status = StatusVacation
			summary.Metrics.OnVacation++
		case entry.DayOffID != nil:
			entry.Status = StatusDayOff
			summary.Metrics.OnDayOff++
		default:
			summary.Metrics.Available++
		}

		summary.Entries = append(summary.Entries, entry)
	}

	sort.Slice(summary.Entries, func(i, j int) bool {
		return summary.Entries[i].Collaborator.Name < summary.Entries[j].Collaborator.Name
	})
	return summary
}

// WeekSpan - semana serializada como datas ISO.
type WeekSpan struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekSummary - os sete dias de uma semana resolvidos.
type WeekSummary struct {
	Week WeekSpan     `json:"semana"`
	Days []DaySummary `json:"dias"`
}

// YearRow - linha da grade anual: para cada semana do ano, se o
// colaborador tem férias tocando a semana.
type YearRow struct {
	CollaboratorID uint   `json:"colaboradorId"`
	Name           string `json:"nome"`
	Weeks          []bool `json:"semanas"`
}

// YearOverview - a grade anual inteira (visão de ano da interface).
type YearOverview struct {
	Year  int        `json:"ano"`
	Weeks []WeekSpan `json:"semanas"`
	Rows  []YearRow  `json:"linhas"`
}

// PlannerService compõe repositórios, calendário e agregação. É o
// único lugar que deriva métricas; as antigas telas duplicavam esta
// lógica cada uma por si.
type PlannerService struct {
	collaboratorRepo repository.CollaboratorRepository
	vacationRepo     repository.VacationRepository
	dayOffRepo       repository.DayOffRepository
	anchor           time.Time
}

func NewPlannerService(
	collaboratorRepo repository.CollaboratorRepository,
	vacationRepo repository.VacationRepository,
	dayOffRepo repository.DayOffRepository,
	anchor time.Time,
) *PlannerService {
	return &PlannerService{
		collaboratorRepo: collaboratorRepo,
		vacationRepo:     vacationRepo,
		dayOffRepo:       dayOffRepo,
		anchor:           schedule.DateOnly(anchor),
	}
}

// Anchor retorna a âncora canônica do ciclo.
func (s *PlannerService) Anchor() time.Time {
	return s.anchor
}

// WeekSummary resolve os sete dias da semana que começa em start.
// As férias vêm completas do banco, não filtradas por ano: um período
// virando o ano continua cobrindo os dias de janeiro.
func (s *PlannerService) WeekSummary(start time.Time) (*WeekSummary, error) {
	start = schedule.DateOnly(start)
	end := schedule.AddDays(start, 6)

	collaborators, err := s.collaboratorRepo.GetAll()
	if err != nil {
		return nil, err
	}
	vacations, err := s.vacationRepo.GetAll()
	if err != nil {
		return nil, err
	}
	dayOffs, err := s.dayOffRepo.GetByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	summary := &WeekSummary{
		Week: WeekSpan{Start: schedule.FormatISO(start), End: schedule.FormatISO(end)},
		Days: make([]DaySummary, 0, 7),
	}
	for i := 0; i < 7; i++ {
		day := schedule.AddDays(start, i)
		summary.Days = append(summary.Days, BuildDaySummary(day, collaborators, vacations, dayOffs, s.anchor))
	}
	return summary, nil
}

// YearOverview monta a grade anual de férias por semana.
func (s *PlannerService) YearOverview(year int) (*YearOverview, error) {
	weeks := schedule.WeeksOfYear(year)

	collaborators, err := s.collaboratorRepo.GetAll()
	if err != nil {
		return nil, err
	}
	vacations, err := s.vacationRepo.GetAll()
	if err != nil {
		return nil, err
	}

	overview := &YearOverview{
		Year:  year,
		Weeks: make([]WeekSpan, 0, len(weeks)),
		Rows:  make([]YearRow, 0, len(collaborators)),
	}
	for _, w := range weeks {
		overview.Weeks = append(overview.Weeks, WeekSpan{Start: w.StartISO(), End: w.EndISO()})
	}

	for _, col := range collaborators {
		row := YearRow{
			CollaboratorID: col.ID,
			Name:           col.Name,
			Weeks:          make([]bool, len(weeks)),
		}
		for i, w := range weeks {
			for _, v := range vacations {
				if v.CollaboratorID == col.ID && schedule.RangesOverlap(v.StartDate, v.EndDate, w.Start, w.End) {
					row.Weeks[i] = true
					break
				}
			}
		}
		overview.Rows = append(overview.Rows, row)
	}
	return overview, nil
}
