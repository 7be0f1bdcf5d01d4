package repository

import "context"

// TransactionManager runs a unit of work atomically. fn gets repositories bound to
// the transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewVideoRepository() VideoRepository
	NewCommentRepository() CommentRepository
	NewLikeRepository() LikeRepository
	NewTweetRepository() TweetRepository
	NewPlaylistRepository() PlaylistRepository
	NewWatchHistoryRepository() WatchHistoryRepository
}
