package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is an anonymous piece of feedback about one store. There is no
// foreign key to stores: reviews outlive the store they were written for.
type Review struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	StoreID    string `gorm:"size:36;not null;index" json:"store_id"`
	Rating     *int   `json:"rating"`
	Comment    string `gorm:"type:text;not null" json:"comment"`
	Language   string `gorm:"size:8;not null" json:"language"`
	IsApproved bool   `gorm:"not null" json:"is_approved"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
