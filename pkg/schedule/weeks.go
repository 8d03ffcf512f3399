package schedule

import "time"

// Week - intervalo fechado de 7 dias começando numa segunda-feira.
type Week struct {
	Start time.Time
	End   time.Time
}

// StartISO retorna o início da semana como YYYY-MM-DD.
func (w Week) StartISO() string { return FormatISO(w.Start) }

// EndISO retorna o fim da semana como YYYY-MM-DD.
func (w Week) EndISO() string { return FormatISO(w.End) }

// WeeksOfYear particiona o ano em semanas consecutivas alinhadas à
// segunda-feira. A primeira semana é a que contém 1º de janeiro (pode
// começar no ano anterior); a última é a que contém 31 de dezembro.
func WeeksOfYear(year int) []Week {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	// Recuar até a segunda-feira da semana que contém 1º de janeiro.
	delta := (int(jan1.Weekday()) - int(time.Monday) + 7) % 7
	start := AddDays(jan1, -delta)

	weeks := []Week{}
	for !start.After(dec31) {
		weeks = append(weeks, Week{Start: start, End: AddDays(start, 6)})
		start = AddDays(start, 7)
	}
	return weeks
}
