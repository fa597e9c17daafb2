package dto

import (
	"time"

	"luma/internal/domain/download"
)

// DownloadDTO describes a stored download without its payload. Listings
// stay cheap even when payloads run to hundreds of megabytes.
type DownloadDTO struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Thumbnail    string    `json:"thumbnail"`
	Size         string    `json:"size"`
	DownloadDate time.Time `json:"download_date"`
	ByteSize     int       `json:"byte_size"`
}

// DownloadWithDataDTO additionally carries the media payload.
type DownloadWithDataDTO struct {
	DownloadDTO
	FileData []byte `json:"file_data"`
}

func ToDownloadDTO(d *download.Download) *DownloadDTO {
	if d == nil {
		return nil
	}
	return &DownloadDTO{
		ID:           d.ID,
		Title:        d.Title,
		Thumbnail:    d.Thumbnail,
		Size:         d.Size,
		DownloadDate: d.DownloadDate,
		ByteSize:     len(d.FileData),
	}
}

func ToDownloadDTOList(downloads []*download.Download) []*DownloadDTO {
	dtos := make([]*DownloadDTO, 0, len(downloads))
	for _, d := range downloads {
		dtos = append(dtos, ToDownloadDTO(d))
	}
	return dtos
}

func ToDownloadWithDataDTO(d *download.Download) *DownloadWithDataDTO {
	if d == nil {
		return nil
	}
	return &DownloadWithDataDTO{
		DownloadDTO: *ToDownloadDTO(d),
		FileData:    d.FileData,
	}
}
