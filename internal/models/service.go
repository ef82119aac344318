package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Serviço do catálogo de um barbeiro. DurationMin é imutável depois que
// existe agendamento referenciando o serviço (edições substituem o registro).
type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarberID string `gorm:"size:36;index;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Image       string `gorm:"size:255" json:"image"`

	DurationMin int     `gorm:"column:duration;not null" json:"duration"`
	Price       float64 `gorm:"not null" json:"price"`

	CategoryID string `gorm:"size:36;index" json:"category_id"`

	Active bool `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
