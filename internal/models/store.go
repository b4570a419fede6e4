package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is one physical location. All language dependent text lives in
// its translations.
type Store struct {
	ID           string             `gorm:"primaryKey;size:36" json:"id"`
	Translations []StoreTranslation `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"translations,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// StoreTranslation holds the name and location of a store for a single
// language. (store_id, language) is unique.
type StoreTranslation struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	StoreID  string `gorm:"size:36;not null;uniqueIndex:idx_store_translations_store_language" json:"store_id"`
	Language string `gorm:"size:8;not null;uniqueIndex:idx_store_translations_store_language" json:"language"`
	Name     string `gorm:"size:150;not null" json:"name"`
	Location string `gorm:"size:255;not null" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *StoreTranslation) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
