package models

import "time"

// Vacation - período de férias (intervalo fechado de datas) de um
// colaborador. Tabela original: ferias.
type Vacation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CollaboratorID uint      `gorm:"column:colaborador_id;not null;index" json:"colaboradorId"`
	StartDate      time.Time `gorm:"column:start_date;type:date;not null" json:"start"`
	EndDate        time.Time `gorm:"column:end_date;type:date;not null" json:"end"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName define o nome da tabela no banco.
func (Vacation) TableName() string {
	return "ferias"
}

// IsValid verifica campos obrigatórios e a ordem das datas.
func (v *Vacation) IsValid() bool {
	if v.CollaboratorID == 0 || v.StartDate.IsZero() || v.EndDate.IsZero() {
		return false
	}
	return !v.EndDate.Before(v.StartDate)
}
