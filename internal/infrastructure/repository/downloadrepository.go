package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luma/internal/domain/download"
	"luma/internal/infrastructure/database"
	"luma/internal/infrastructure/persistence/models"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

// DownloadRepositoryImpl persists downloads in the embedded sqlite store.
// Every operation goes through store.Ready(), so the first call lazily opens
// the store and a failed open keeps failing fast with StorageUnavailable.
type DownloadRepositoryImpl struct {
	store  *database.Store
	logger logger.Interface
}

func NewDownloadRepository(store *database.Store, logger logger.Interface) download.Repository {
	return &DownloadRepositoryImpl{
		store:  store,
		logger: logger,
	}
}

// Put upserts by id. The write is flushed before Put returns; a subsequent
// Get from the same caller observes it.
func (r *DownloadRepositoryImpl) Put(ctx context.Context, d *download.Download) error {
	db, err := r.store.Ready()
	if err != nil {
		return err
	}

	model := toDownloadModel(d)
	err = db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to persist download", "error", err, "download_id", d.ID)
		return errors.NewStorageWriteError("failed to save download", err.Error())
	}

	r.logger.Debugw("download persisted", "download_id", d.ID, "size", d.Size)
	return nil
}

// Get returns (nil, nil) when the id is unknown.
func (r *DownloadRepositoryImpl) Get(ctx context.Context, id string) (*download.Download, error) {
	db, err := r.store.Ready()
	if err != nil {
		return nil, err
	}

	var model models.DownloadModel
	if err := db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get download", "error", err, "download_id", id)
		return nil, fmt.Errorf("failed to get download: %w", err)
	}

	return toDownloadEntity(&model), nil
}

// GetAll re-reads the full collection on every call; no cursor state is
// retained between calls.
func (r *DownloadRepositoryImpl) GetAll(ctx context.Context) ([]*download.Download, error) {
	db, err := r.store.Ready()
	if err != nil {
		return nil, err
	}

	var downloadModels []*models.DownloadModel
	if err := db.WithContext(ctx).Order("download_date DESC").Find(&downloadModels).Error; err != nil {
		r.logger.Errorw("failed to list downloads", "error", err)
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}

	result := make([]*download.Download, 0, len(downloadModels))
	for _, model := range downloadModels {
		result = append(result, toDownloadEntity(model))
	}
	return result, nil
}

// Delete removes the record if present; deleting an unknown id is a no-op.
func (r *DownloadRepositoryImpl) Delete(ctx context.Context, id string) error {
	db, err := r.store.Ready()
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Delete(&models.DownloadModel{}, "id = ?", id).Error; err != nil {
		r.logger.Errorw("failed to delete download", "error", err, "download_id", id)
		return errors.NewStorageWriteError("failed to delete download", err.Error())
	}

	r.logger.Debugw("download deleted", "download_id", id)
	return nil
}

func toDownloadModel(d *download.Download) *models.DownloadModel {
	return &models.DownloadModel{
		ID:           d.ID,
		Title:        d.Title,
		Thumbnail:    d.Thumbnail,
		Size:         d.Size,
		DownloadDate: d.DownloadDate,
		FileData:     d.FileData,
	}
}

func toDownloadEntity(m *models.DownloadModel) *download.Download {
	return &download.Download{
		ID:           m.ID,
		Title:        m.Title,
		Thumbnail:    m.Thumbnail,
		Size:         m.Size,
		DownloadDate: m.DownloadDate,
		FileData:     m.FileData,
	}
}
