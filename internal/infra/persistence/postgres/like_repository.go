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

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Find retrieves the like that likedBy placed on target.
func (repo *likeRepository) Find(ctx context.Context, likedBy uuid.UUID, target entity.LikeTarget) (*entity.Like, error) {
	var likeM model.LikeModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", likedBy, string(target.Kind()), target.ID()).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like")
	}

	return toLikeDomain(&likeM)
}

// Create persists a new like. The unique index on the triple rejects duplicates.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isCheckConstraintViolation(err) {
			return entity.ErrInvalidTargetKind
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Delete removes a like by its ID.
func (repo *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LikeModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// ListByUser retrieves the likes of one kind placed by likedBy, newest first.
func (repo *likeRepository) ListByUser(ctx context.Context, likedBy uuid.UUID, kind entity.TargetKind) ([]*entity.Like, error) {
	var likeModels []*model.LikeModel

	if err := repo.db.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ?", likedBy, string(kind)).
		Order("created_at DESC").
		Find(&likeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes by user")
	}

	likes := make([]*entity.Like, 0, len(likeModels))
	for _, likeM := range likeModels {
		like, err := toLikeDomain(likeM)
		if err != nil {
			return nil, err
		}
		likes = append(likes, like)
	}

	return likes, nil
}

// CountByTargets counts likes per target ID with a single grouped query.
func (repo *likeRepository) CountByTargets(ctx context.Context, kind entity.TargetKind, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []model.TargetCount
	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Select("target_id, COUNT(*) AS total").
		Where("target_kind = ? AND target_id IN ?", string(kind), ids).
		Group("target_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count likes by targets")
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}

	return counts, nil
}

// CountOnOwnerVideos counts likes placed on any video owned by ownerID.
func (repo *likeRepository) CountOnOwnerVideos(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var total int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.target_kind = ? AND videos.owner_id = ?", string(entity.TargetKindVideo), ownerID).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes on owner videos")
	}

	return total, nil
}

// DeleteByTargets removes every like on the given targets.
func (repo *likeRepository) DeleteByTargets(ctx context.Context, kind entity.TargetKind, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("target_kind = ? AND target_id IN ?", string(kind), ids).
		Delete(&model.LikeModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete likes by targets")
	}

	return nil
}

// --- Mapper Functions ---

// toLikeDomain rebuilds the tagged target. A kind outside the union is a data error.
func toLikeDomain(data *model.LikeModel) (*entity.Like, error) {
	target, err := entity.NewLikeTarget(data.TargetKind, data.TargetID)
	if err != nil {
		return nil, errors.Wrapf(err, "like %s", data.ID)
	}

	return &entity.Like{
		ID:        data.ID,
		LikedBy:   data.LikedBy,
		Target:    target,
		CreatedAt: data.CreatedAt,
	}, nil
}

func fromLikeDomain(data *entity.Like) *model.LikeModel {
	return &model.LikeModel{
		ID:         data.ID,
		LikedBy:    data.LikedBy,
		TargetKind: string(data.Target.Kind()),
		TargetID:   data.Target.ID(),
		CreatedAt:  data.CreatedAt,
	}
}
