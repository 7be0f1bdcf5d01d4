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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository is the constructor for tweetRepository.
func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{db: db}
}

func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetM := fromTweetDomain(tweet)

	if err := repo.db.WithContext(ctx).Create(tweetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tweet")
	}

	tweet.ID = tweetM.ID
	tweet.CreatedAt = tweetM.CreatedAt
	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

func (repo *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	var tweetM model.TweetModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&tweetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to find tweet by id")
	}

	return toTweetDomain(&tweetM), nil
}

func (repo *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	var tweetModels []*model.TweetModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tweetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tweets by owner")
	}

	tweets := make([]*entity.Tweet, 0, len(tweetModels))
	for _, tweetM := range tweetModels {
		tweets = append(tweets, toTweetDomain(tweetM))
	}

	return tweets, nil
}

func (repo *tweetRepository) UpdateContent(ctx context.Context, tweet *entity.Tweet) error {
	var tweetM model.TweetModel

	result := repo.db.WithContext(ctx).
		Model(&tweetM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "updated_at"}}}).
		Where("id = ?", tweet.ID).
		Updates(map[string]any{
			"content":    tweet.Content,
			"updated_at": gorm.Expr("NOW()"),
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

func (repo *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TweetModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTweetDomain(data *model.TweetModel) *entity.Tweet {
	if data == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTweetDomain(data *entity.Tweet) *model.TweetModel {
	if data == nil {
		return nil
	}

	return &model.TweetModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
