// Package download holds the offline-download record and its persistence
// contract. Records carry the full media payload so titles stay playable
// without network access.
package download

import (
	"fmt"
	"time"
)

// Download is a persisted offline copy of a title. The id is the content
// identifier; writing a record with an existing id overwrites it.
type Download struct {
	ID           string
	Title        string
	Thumbnail    string
	Size         string
	DownloadDate time.Time
	FileData     []byte
}

// New validates and builds a Download. DownloadDate defaults to now when
// zero.
func New(id, title, thumbnail, size string, downloadDate time.Time, fileData []byte) (*Download, error) {
	if id == "" {
		return nil, fmt.Errorf("download id is required")
	}
	if title == "" {
		return nil, fmt.Errorf("download title is required")
	}
	if len(fileData) == 0 {
		return nil, fmt.Errorf("download payload is empty")
	}
	if downloadDate.IsZero() {
		downloadDate = time.Now()
	}

	return &Download{
		ID:           id,
		Title:        title,
		Thumbnail:    thumbnail,
		Size:         size,
		DownloadDate: downloadDate,
		FileData:     fileData,
	}, nil
}
