package schedule

import "time"

// Escalas de trabalho suportadas. Os literais são os mesmos gravados
// na coluna escala_trabalho, então não podem mudar sem migração.
const (
	EscalaAltA   = "2x2x3x2x2x3_A"
	EscalaAltB   = "2x2x3x2x2x3_B"
	EscalaDomQui = "DOM-QUI"
)

// CycleDays - tamanho do ciclo das escalas alternadas (A e B).
const CycleDays = 14

// Índices do ciclo de 14 dias em que cada escala alternada trabalha.
// Juntos cobrem {0..13} sem sobreposição: todo dia é "on" para
// exatamente uma das duas escalas.
var (
	altAWorkIdx = map[int]bool{0: true, 1: true, 4: true, 5: true, 6: true, 9: true, 10: true}
	altBWorkIdx = map[int]bool{2: true, 3: true, 7: true, 8: true, 11: true, 12: true, 13: true}
)

// IsValidEscala verifica se o identificador de escala é um dos três suportados.
func IsValidEscala(escala string) bool {
	switch escala {
	case EscalaAltA, EscalaAltB, EscalaDomQui:
		return true
	}
	return false
}

// DateOnly normaliza a data para meia-noite UTC, descartando hora e fuso.
// Toda comparação de datas do domínio passa por aqui.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays soma n dias corridos à data (n pode ser negativo).
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// FormatISO formata a data como YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseISO interpreta uma data YYYY-MM-DD já normalizada em UTC.
func ParseISO(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, time.UTC)
}

// DaysBetween retorna a quantidade de dias corridos de from até to
// (negativa quando to é anterior a from).
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// CycleIndex posiciona a data dentro do ciclo de 14 dias ancorado em anchor.
// O resultado fica sempre em [0,13], mesmo para datas anteriores à âncora.
func CycleIndex(date, anchor time.Time) int {
	diff := DaysBetween(anchor, date)
	return ((diff % CycleDays) + CycleDays) % CycleDays
}

// IsScheduled decide se um colaborador com a escala informada está
// escalado para trabalhar na data. Escala desconhecida nunca escala.
func IsScheduled(date time.Time, escala string, anchor time.Time) bool {
	if escala == EscalaDomQui {
		dow := DateOnly(date).Weekday()
		return dow >= time.Sunday && dow <= time.Thursday
	}

	idx := CycleIndex(date, anchor)
	switch escala {
	case EscalaAltA:
		return altAWorkIdx[idx]
	case EscalaAltB:
		return altBWorkIdx[idx]
	}
	return false
}

// RangesOverlap testa sobreposição de dois intervalos fechados de datas.
// Inclusivo nas duas pontas: [aStart,aEnd] e [bStart,bEnd] se tocam
// quando aStart <= bEnd e bStart <= aEnd.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !DateOnly(aStart).After(DateOnly(bEnd)) && !DateOnly(bStart).After(DateOnly(aEnd))
}

// Contains verifica se um único dia cai dentro do período [start,end].
func Contains(start, end, day time.Time) bool {
	return RangesOverlap(start, end, day, day)
}
