package store

import "time"

// SnapshotRecord is the persistence model for a pricing table snapshot.
// Table name: pricing_snapshots
type SnapshotRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	Version   string    `gorm:"type:text;not null;uniqueIndex"`
	Source    string    `gorm:"type:text;not null"`
	Currency  string    `gorm:"type:text;not null"`
	Payload   string    `gorm:"type:text;not null"` // JSON encoded pricing.Table
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (SnapshotRecord) TableName() string { return "pricing_snapshots" }

// EstimateRecord is the persistence model for a saved cost estimate.
// Table name: estimates
type EstimateRecord struct {
	ID           string    `gorm:"primaryKey;type:text;not null"`
	Project      string    `gorm:"type:text;not null;index:idx_estimate_scope"`
	Environment  string    `gorm:"type:text;not null;index:idx_estimate_scope"`
	Region       string    `gorm:"type:text;not null"`
	TotalCost    string    `gorm:"type:text;not null"` // decimal string
	Currency     string    `gorm:"type:text;not null"`
	TableVersion string    `gorm:"type:text;not null"`
	Payload      string    `gorm:"type:text;not null"` // JSON encoded pricing.Breakdown
	CreatedAt    time.Time `gorm:"not null"`
}

func (EstimateRecord) TableName() string { return "estimates" }
