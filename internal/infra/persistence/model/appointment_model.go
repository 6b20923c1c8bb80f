package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table. The composite display
// date is stored alongside the parsed schedule time; the display string is
// what the duplicate-booking guard compares.
type AppointmentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID         uuid.UUID `gorm:"type:uuid;not null"`
	PetName       string    `gorm:"type:varchar(100);not null"`
	Service       string    `gorm:"type:varchar(100);not null"`
	Category      string    `gorm:"type:varchar(50);not null"`
	DateLabel     string    `gorm:"type:varchar(50);not null;index:idx_appointments_user_date,priority:2"`
	ScheduledAt   time.Time `gorm:"not null;index"`
	Status        string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	Price         int64     `gorm:"not null;default:0"`
	Duration      string    `gorm:"type:varchar(30)"`
	PaymentMethod string    `gorm:"type:varchar(30)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// TimeSlotModel mirrors the 'time_slots' table, the admin-managed catalog of
// bookable times of day.
type TimeSlotModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Label     string    `gorm:"type:varchar(20);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TimeSlotModel) TableName() string {
	return "time_slots"
}

// SlotReservationModel mirrors the 'slot_reservations' table. The unique
// index on (slot_id, date) is what makes a concurrent claim atomic: the
// second insert for the same pair fails with a constraint violation.
type SlotReservationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SlotID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_slot_date"`
	Date          string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_reservations_slot_date;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	BookedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SlotReservationModel) TableName() string {
	return "slot_reservations"
}
