package usecases

import (
	"context"
	"fmt"
	"time"

	"luma/internal/application/download/dto"
	"luma/internal/domain/download"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

type SaveDownloadCommand struct {
	ID           string
	Title        string
	Thumbnail    string
	Size         string
	DownloadDate time.Time
	FileData     []byte
}

type SaveDownloadUseCase struct {
	downloadRepo  download.Repository
	maxBlobSizeMB int
	logger        logger.Interface
}

func NewSaveDownloadUseCase(downloadRepo download.Repository, maxBlobSizeMB int, logger logger.Interface) *SaveDownloadUseCase {
	return &SaveDownloadUseCase{
		downloadRepo:  downloadRepo,
		maxBlobSizeMB: maxBlobSizeMB,
		logger:        logger,
	}
}

// Execute persists the download, overwriting any record with the same id.
func (uc *SaveDownloadUseCase) Execute(ctx context.Context, cmd SaveDownloadCommand) (*dto.DownloadDTO, error) {
	if uc.maxBlobSizeMB > 0 && len(cmd.FileData) > uc.maxBlobSizeMB*1024*1024 {
		return nil, errors.NewValidationError(
			"download payload too large",
			fmt.Sprintf("payload is %d bytes, limit is %d MB", len(cmd.FileData), uc.maxBlobSizeMB),
		)
	}

	d, err := download.New(cmd.ID, cmd.Title, cmd.Thumbnail, cmd.Size, cmd.DownloadDate, cmd.FileData)
	if err != nil {
		return nil, errors.NewValidationError("invalid download", err.Error())
	}

	if err := uc.downloadRepo.Put(ctx, d); err != nil {
		uc.logger.Errorw("failed to save download", "error", err, "download_id", cmd.ID)
		return nil, err
	}

	uc.logger.Infow("download saved", "download_id", d.ID, "title", d.Title, "bytes", len(d.FileData))
	return dto.ToDownloadDTO(d), nil
}
