package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Bio    string `gorm:"size:500" json:"bio"`
	Image  string `gorm:"size:255" json:"image"`
	Avatar string `gorm:"size:255" json:"avatar"`

	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	Location   string         `gorm:"size:255" json:"location"`
	Distance   string         `gorm:"size:50" json:"distance"`
	PriceRange string         `gorm:"size:10;default:'$$'" json:"price_range"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`

	Active bool `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
