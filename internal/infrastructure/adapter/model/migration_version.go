package model

import "time"

// MigrationVersion records one applied schema version
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	AppliedAt time.Time `gorm:"not null;index"`
	Details   string    `gorm:"type:text"`
}

// TableName pins the schema version table
func (MigrationVersion) TableName() string {
	return "schema_versions"
}
