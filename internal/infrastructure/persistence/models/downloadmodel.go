package models

import "time"

// DownloadModel is the persistence model for offline downloads. The table is
// the single record collection of the embedded store, keyed by the content
// id; the payload is stored inline as a blob.
type DownloadModel struct {
	ID           string    `gorm:"primaryKey;size:128"`
	Title        string    `gorm:"size:255;not null"`
	Thumbnail    string    `gorm:"size:1024"`
	Size         string    `gorm:"size:32"`
	DownloadDate time.Time `gorm:"index"`
	FileData     []byte    `gorm:"type:blob"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (DownloadModel) TableName() string {
	return "downloads"
}
