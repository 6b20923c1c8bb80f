package model

import (
	"time"

	"github.com/google/uuid"
)

// PetModel mirrors the 'pets' table.
type PetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Species   string    `gorm:"type:varchar(50);not null"`
	Breed     string    `gorm:"type:varchar(100)"`
	Age       int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
