package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func firstPage() usecase.ListOptions {
	return usecase.ListOptions{Page: 1, Limit: 10}
}

// txRepos holds the repositories handed to a transaction callback.
type txRepos struct {
	users    *mockRepo.MockUserRepository
	videos   *mockRepo.MockVideoRepository
	comments *mockRepo.MockCommentRepository
	likes    *mockRepo.MockLikeRepository
	tweets   *mockRepo.MockTweetRepository
	lists    *mockRepo.MockPlaylistRepository
	history  *mockRepo.MockWatchHistoryRepository
}

// expectTransaction makes txManager run its callback against a factory of fresh repository mocks.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) *txRepos {
	t.Helper()

	repos := &txRepos{
		users:    mockRepo.NewMockUserRepository(t),
		videos:   mockRepo.NewMockVideoRepository(t),
		comments: mockRepo.NewMockCommentRepository(t),
		likes:    mockRepo.NewMockLikeRepository(t),
		tweets:   mockRepo.NewMockTweetRepository(t),
		lists:    mockRepo.NewMockPlaylistRepository(t),
		history:  mockRepo.NewMockWatchHistoryRepository(t),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(repos.users).Maybe()
	factory.EXPECT().NewVideoRepository().Return(repos.videos).Maybe()
	factory.EXPECT().NewCommentRepository().Return(repos.comments).Maybe()
	factory.EXPECT().NewLikeRepository().Return(repos.likes).Maybe()
	factory.EXPECT().NewTweetRepository().Return(repos.tweets).Maybe()
	factory.EXPECT().NewPlaylistRepository().Return(repos.lists).Maybe()
	factory.EXPECT().NewWatchHistoryRepository().Return(repos.history).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()

	return repos
}

// expectProfiles answers every batched profile lookup with users.
func expectProfiles(userRepo *mockRepo.MockUserRepository, users ...*entity.User) {
	userRepo.EXPECT().
		FindByIDs(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ids []uuid.UUID) ([]*entity.User, error) {
			found := make([]*entity.User, 0, len(ids))
			for _, id := range ids {
				for _, user := range users {
					if user.ID == id {
						found = append(found, user)
					}
				}
			}

			return found, nil
		})
}

// expectLikeCounts answers every batched like count of kind from counts.
func expectLikeCounts(likeRepo *mockRepo.MockLikeRepository, kind entity.TargetKind, counts map[uuid.UUID]int64) {
	likeRepo.EXPECT().
		CountByTargets(mock.Anything, kind, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.TargetKind, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
			out := make(map[uuid.UUID]int64, len(ids))
			for _, id := range ids {
				if n, ok := counts[id]; ok {
					out[id] = n
				}
			}

			return out, nil
		})
}

func newTestUser(username string) *entity.User {
	return &entity.User{
		ID:               uuid.New(),
		Username:         username,
		Email:            username + "@example.com",
		FullName:         "Test " + username,
		PasswordHash:     "$2a$10$hash",
		Avatar:           "https://cdn.example.com/" + username + ".png",
		RefreshTokenHash: "stored-hash",
	}
}
