package models

import "time"

// DayOff - folga avulsa de um único dia. No máximo uma folga por
// colaborador por data, garantida pelo índice único composto.
// Tabela original: folgas.
type DayOff struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CollaboratorID uint      `gorm:"column:colaborador_id;not null;uniqueIndex:uidx_folga_colaborador_date" json:"colaboradorId"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:uidx_folga_colaborador_date" json:"date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName define o nome da tabela no banco.
func (DayOff) TableName() string {
	return "folgas"
}

// IsValid verifica campos obrigatórios.
func (d *DayOff) IsValid() bool {
	return d.CollaboratorID != 0 && !d.Date.IsZero()
}
