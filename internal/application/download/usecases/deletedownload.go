package usecases

import (
	"context"

	"luma/internal/domain/download"
	"luma/internal/shared/logger"
)

type DeleteDownloadUseCase struct {
	downloadRepo download.Repository
	logger       logger.Interface
}

func NewDeleteDownloadUseCase(downloadRepo download.Repository, logger logger.Interface) *DeleteDownloadUseCase {
	return &DeleteDownloadUseCase{
		downloadRepo: downloadRepo,
		logger:       logger,
	}
}

// Execute removes the record. Deleting an id that is not present succeeds.
func (uc *DeleteDownloadUseCase) Execute(ctx context.Context, downloadID string) error {
	if err := uc.downloadRepo.Delete(ctx, downloadID); err != nil {
		uc.logger.Errorw("failed to delete download", "error", err, "download_id", downloadID)
		return err
	}

	uc.logger.Infow("download deleted", "download_id", downloadID)
	return nil
}
