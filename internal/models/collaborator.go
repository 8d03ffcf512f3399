package models

import (
	"time"

	"github.com/lucasdeosantana/ControleDeFolgas/pkg/schedule"
)

// Collaborator - um colaborador da equipe. As colunas mantêm os nomes
// do schema original (colaboradores) para o banco continuar compatível.
type Collaborator struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"column:nome;not null" json:"nome"`
	RegistrationCode string    `gorm:"column:re;uniqueIndex;not null" json:"re"`
	BadgeNumber      int       `gorm:"column:numero;not null" json:"numero"`
	Team             string    `gorm:"column:equipe;not null" json:"equipe"`
	SupervisionGroup string    `gorm:"column:escala;not null" json:"escala"`
	WorkCycle        string    `gorm:"column:escala_trabalho;type:varchar(20);not null" json:"escala_trabalho"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Vacations []Vacation `gorm:"foreignKey:CollaboratorID" json:"-"`
	DayOffs   []DayOff   `gorm:"foreignKey:CollaboratorID" json:"-"`
}

// TableName define o nome da tabela no banco.
func (Collaborator) TableName() string {
	return "colaboradores"
}

// IsValid verifica se todos os campos obrigatórios estão preenchidos
// e se a escala de trabalho é uma das três suportadas.
func (c *Collaborator) IsValid() bool {
	if c.Name == "" || c.RegistrationCode == "" || c.BadgeNumber == 0 {
		return false
	}
	if c.Team == "" || c.SupervisionGroup == "" {
		return false
	}
	return schedule.IsValidEscala(c.WorkCycle)
}
