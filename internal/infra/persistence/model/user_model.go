package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	Name              string    `gorm:"type:varchar(100)"`
	Phone             string    `gorm:"type:varchar(50)"`
	Status            string    `gorm:"type:varchar(20);not null;default:'Active'"`
	Plan              string    `gorm:"type:varchar(20);not null;default:'free'"`
	PlanStatus        string    `gorm:"type:varchar(20)"`
	PlanRequest       string    `gorm:"type:varchar(20)"`
	PlanRequestPeriod string    `gorm:"type:varchar(20)"`
	PlanExpiryDate    *time.Time
	NextMonthPlan     string `gorm:"type:varchar(20)"`
	NextMonthPlanDate *time.Time
	SoundEnabled      bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time `gorm:"index"`

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
	Pets            []PetModel            `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PlanChangeModel mirrors the 'plan_changes' table, the per-user care-plan
// history in chronological order.
type PlanChangeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromPlan  string    `gorm:"type:varchar(20);not null"`
	ToPlan    string    `gorm:"type:varchar(20);not null"`
	Action    string    `gorm:"type:varchar(20);not null"`
	ChangedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlanChangeModel) TableName() string {
	return "plan_changes"
}
