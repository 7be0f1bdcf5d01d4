package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const appendPlaylistVideoSQL = `
INSERT INTO playlist_videos (playlist_id, video_id, position, added_at)
SELECT ?, ?, COALESCE(MAX(position), 0) + 1, NOW()
FROM playlist_videos
WHERE playlist_id = ?`

// playlistRepository implements the repository.PlaylistRepository interface.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{db: db}
}

// Create persists a new, empty playlist.
func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := fromPlaylistDomain(playlist)

	if err := repo.db.WithContext(ctx).Omit("Videos").Create(playlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt

	return nil
}

// FindByID retrieves a playlist with its videos ordered by position.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel

	if err := repo.withOrderedVideos(ctx).
		Where("id = ?", id).
		First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by id")
	}

	return toPlaylistDomain(&playlistM), nil
}

// ListByOwner retrieves the owner's playlists with their videos.
func (repo *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var playlistModels []*model.PlaylistModel

	if err := repo.withOrderedVideos(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list playlists by owner")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistModels))
	for _, playlistM := range playlistModels {
		playlists = append(playlists, toPlaylistDomain(playlistM))
	}

	return playlists, nil
}

// Update saves name and description.
func (repo *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", playlist.ID).
		Updates(map[string]any{
			"name":        playlist.Name,
			"description": playlist.Description,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// Delete removes a playlist. Its entries go with it through ON DELETE CASCADE.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlaylistModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddVideo appends videoID after the last position in one statement.
func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec(appendPlaylistVideoSQL, playlistID, videoID, playlistID).Error
	if err == nil {
		return nil
	}

	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicatePlaylistVideo
	case isForeignKeyConstraintViolation(err):
		return repository.ErrVideoNotFound
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to add video to playlist")
	}
}

// RemoveVideo removes videoID from the playlist.
func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistVideoNotFound
	}

	return nil
}

// RemoveVideoEverywhere removes videoID from every playlist.
func (repo *playlistRepository) RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove video from playlists")
	}

	return nil
}

func (repo *playlistRepository) withOrderedVideos(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

// --- Mapper Functions ---

func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	if data == nil {
		return nil
	}

	videoIDs := make([]uuid.UUID, 0, len(data.Videos))
	for _, entry := range data.Videos {
		videoIDs = append(videoIDs, entry.VideoID)
	}

	return &entity.Playlist{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		VideoIDs:    videoIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromPlaylistDomain(data *entity.Playlist) *model.PlaylistModel {
	if data == nil {
		return nil
	}

	return &model.PlaylistModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
