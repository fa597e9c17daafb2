package usecases

import (
	"context"

	"luma/internal/application/download/dto"
	"luma/internal/domain/download"
	"luma/internal/shared/logger"
)

type ListDownloadsUseCase struct {
	downloadRepo download.Repository
	logger       logger.Interface
}

func NewListDownloadsUseCase(downloadRepo download.Repository, logger logger.Interface) *ListDownloadsUseCase {
	return &ListDownloadsUseCase{
		downloadRepo: downloadRepo,
		logger:       logger,
	}
}

func (uc *ListDownloadsUseCase) Execute(ctx context.Context) ([]*dto.DownloadDTO, error) {
	downloads, err := uc.downloadRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list downloads", "error", err)
		return nil, err
	}

	return dto.ToDownloadDTOList(downloads), nil
}
