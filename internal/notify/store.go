package notify

import (
	"gorm.io/gorm"

	"github.com/mamede573/BarberManager/internal/models"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Record(ev Event) error {
	n := models.Notification{
		UserID:  ev.UserID,
		Title:   ev.Title,
		Message: ev.Message,
		Type:    ev.Type,
	}

	return s.db.Create(&n).Error
}
