package postgres

import (
	"context"
	"strings"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

// Create persists a new video.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

// FindByID retrieves a video by its unique ID.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by id")
	}

	return toVideoDomain(&videoM), nil
}

// FindByIDs retrieves the videos in ids. Order is unspecified.
func (repo *videoRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Video, error) {
	if len(ids) == 0 {
		return []*entity.Video{}, nil
	}

	var videoModels []*model.VideoModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find videos by ids")
	}

	return toVideoDomainList(videoModels), nil
}

// List retrieves the videos matching filter, newest first.
func (repo *videoRepository) List(ctx context.Context, filter repository.VideoFilter) ([]*entity.Video, error) {
	query := repo.db.WithContext(ctx).Model(&model.VideoModel{})

	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var videoModels []*model.VideoModel
	if err := query.Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return toVideoDomainList(videoModels), nil
}

// Update saves title, description and thumbnail.
func (repo *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(map[string]any{
			"title":       video.Title,
			"description": video.Description,
			"thumbnail":   video.Thumbnail,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// SetPublished sets the publish flag.
func (repo *videoRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_published": published,
			"updated_at":   gorm.Expr("NOW()"),
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to toggle publish status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// IncrementViews adds one view in a single UPDATE and returns the new counter.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	var videoM model.VideoModel

	result := repo.db.WithContext(ctx).
		Model(&videoM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "views"}}}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to increment views")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrVideoNotFound
	}

	return videoM.Views, nil
}

// Delete removes a video by its ID.
func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VideoModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// CountByOwner returns how many videos the owner has uploaded.
func (repo *videoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count videos by owner")
	}

	return total, nil
}

// SumViewsByOwner returns the total views across the owner's videos.
func (repo *videoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Select("COALESCE(SUM(views), 0)").
		Where("owner_id = ?", ownerID).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum views by owner")
	}

	return total, nil
}

// escapeLike escapes the LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toVideoDomainList(models []*model.VideoModel) []*entity.Video {
	videos := make([]*entity.Video, 0, len(models))
	for _, videoM := range models {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos
}

func fromVideoDomain(data *entity.Video) *model.VideoModel {
	if data == nil {
		return nil
	}

	return &model.VideoModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
