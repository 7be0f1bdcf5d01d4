package postgres

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type watchHistoryRepository struct {
	db *gorm.DB
}

// NewWatchHistoryRepository is the constructor for watchHistoryRepository.
func NewWatchHistoryRepository(db *gorm.DB) repository.WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

// Record upserts on (user_id, video_id) and refreshes watched_at.
func (repo *watchHistoryRepository) Record(ctx context.Context, entry *entity.WatchHistoryEntry) error {
	if entry.WatchedAt.IsZero() {
		entry.WatchedAt = time.Now().UTC()
	}

	entryM := &model.WatchHistoryModel{
		UserID:    entry.UserID,
		VideoID:   entry.VideoID,
		WatchedAt: entry.WatchedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
		}).
		Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record watch history")
	}

	return nil
}

// ListByUser retrieves the user's history, most recently watched first.
func (repo *watchHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchHistoryEntry, error) {
	var entryModels []*model.WatchHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list watch history")
	}

	entries := make([]*entity.WatchHistoryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.WatchHistoryEntry{
			UserID:    entryM.UserID,
			VideoID:   entryM.VideoID,
			WatchedAt: entryM.WatchedAt,
		})
	}

	return entries, nil
}

// DeleteByVideo removes the video from every user's history.
func (repo *watchHistoryRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.WatchHistoryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete watch history by video")
	}

	return nil
}
