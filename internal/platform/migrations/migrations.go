package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the relational schema. Adapters also automigrate their own record on construction.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&storeRecord{})
}

// Store schema mirrors the boutiques Postgres adapter.
type storeRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name       string    `gorm:"column:nom;type:varchar(255);index"`
	Address    string    `gorm:"column:adresse;type:varchar(255)"`
	City       string    `gorm:"column:ville;type:varchar(255)"`
	PostalCode int32     `gorm:"column:code_postal"`
	Opinion    *int32    `gorm:"column:avis;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (storeRecord) TableName() string { return "boutique" }
