package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:255;not null" json:"message"`
	Type    string `gorm:"size:30;not null" json:"type"`

	Read bool `gorm:"column:is_read;default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
