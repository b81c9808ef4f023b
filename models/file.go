package models

import (
	"time"

	"gorm.io/gorm"
)

// File is one uploaded file's metadata row. The blob itself lives on disk
// under Filename (server-generated, unique); OriginalName is the name the
// client sent and is informational only.
type File struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	Filename     string    `gorm:"not null;unique" json:"filename"`
	OriginalName string    `gorm:"not null" json:"originalName"`
	MimeType     string    `gorm:"not null" json:"mimeType"`
	Size         int64     `gorm:"not null" json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&File{})
}
