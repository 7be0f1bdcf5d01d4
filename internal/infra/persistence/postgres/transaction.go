package postgres

import (
	"context"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. GORM rolls back when fn fails or panics.
// fn's own error comes back unchanged; a failed begin or commit is ErrTransactionFailed.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	default:
		return nil
	}
}

// txRepositories builds repositories that all share tx.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewVideoRepository() repository.VideoRepository {
	return NewVideoRepository(f.tx)
}

func (f txRepositories) NewCommentRepository() repository.CommentRepository {
	return NewCommentRepository(f.tx)
}

func (f txRepositories) NewLikeRepository() repository.LikeRepository {
	return NewLikeRepository(f.tx)
}

func (f txRepositories) NewTweetRepository() repository.TweetRepository {
	return NewTweetRepository(f.tx)
}

func (f txRepositories) NewPlaylistRepository() repository.PlaylistRepository {
	return NewPlaylistRepository(f.tx)
}

func (f txRepositories) NewWatchHistoryRepository() repository.WatchHistoryRepository {
	return NewWatchHistoryRepository(f.tx)
}
