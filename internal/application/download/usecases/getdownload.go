package usecases

import (
	"context"

	"luma/internal/application/download/dto"
	"luma/internal/domain/download"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

type GetDownloadUseCase struct {
	downloadRepo download.Repository
	logger       logger.Interface
}

func NewGetDownloadUseCase(downloadRepo download.Repository, logger logger.Interface) *GetDownloadUseCase {
	return &GetDownloadUseCase{
		downloadRepo: downloadRepo,
		logger:       logger,
	}
}

// Execute returns the full record including the payload.
func (uc *GetDownloadUseCase) Execute(ctx context.Context, downloadID string) (*dto.DownloadWithDataDTO, error) {
	d, err := uc.downloadRepo.Get(ctx, downloadID)
	if err != nil {
		uc.logger.Errorw("failed to get download", "error", err, "download_id", downloadID)
		return nil, err
	}
	if d == nil {
		return nil, errors.NewNotFoundError("download not found", downloadID)
	}

	return dto.ToDownloadWithDataDTO(d), nil
}
