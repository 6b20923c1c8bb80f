package model

import "time"

// AdminCredentialModel mirrors the 'admin_credentials' table. A single row
// holds the custom back-office login; the emergency fallback never touches
// this table.
type AdminCredentialModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	AdminID      string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminCredentialModel) TableName() string {
	return "admin_credentials"
}

// AdminActivityModel mirrors the 'admin_activities' table, the back-office
// audit trail.
type AdminActivityModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	AdminID    string    `gorm:"type:varchar(100);not null"`
	Action     string    `gorm:"type:varchar(50);not null"`
	Detail     string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AdminActivityModel) TableName() string {
	return "admin_activities"
}

// OverlaySettingsModel mirrors the 'page_overlays' table, one row per portal
// page with a configurable promotional banner.
type OverlaySettingsModel struct {
	Page      string `gorm:"type:varchar(50);primaryKey"`
	Enabled   bool   `gorm:"not null;default:false"`
	Title     string `gorm:"type:varchar(200)"`
	Message   string `gorm:"type:text"`
	ImageURL  string `gorm:"type:text"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OverlaySettingsModel) TableName() string {
	return "page_overlays"
}
