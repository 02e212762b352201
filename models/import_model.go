package models

import (
	"time"

	"gorm.io/gorm"
)

// ImportFileLog records CSV files the folder processor already handled so a
// file is never imported twice.
type ImportFileLog struct {
	gorm.Model
	Filename     string `gorm:"unique;not null"`
	DateModified time.Time
	Created      int
	Updated      int
	Skipped      int
}
