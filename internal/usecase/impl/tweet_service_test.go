package impl

import (
	"context"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tweetServiceMocks struct {
	tx     *mockRepo.MockTransactionManager
	tweets *mockRepo.MockTweetRepository
	users  *mockRepo.MockUserRepository
	likes  *mockRepo.MockLikeRepository
}

func newTweetServiceForTest(t *testing.T) (*tweetService, *tweetServiceMocks) {
	m := &tweetServiceMocks{
		tx:     mockRepo.NewMockTransactionManager(t),
		tweets: mockRepo.NewMockTweetRepository(t),
		users:  mockRepo.NewMockUserRepository(t),
		likes:  mockRepo.NewMockLikeRepository(t),
	}

	srv := NewTweetService(TweetServiceParams{
		TxManager: m.tx,
		TweetRepo: m.tweets,
		UserRepo:  m.users,
		LikeRepo:  m.likes,
		Logger:    newDiscardLogger(),
	}).(*tweetService)

	return srv, m
}

func TestTweetService_CreateTweet(t *testing.T) {
	t.Parallel()

	t.Run("stores trimmed content", func(t *testing.T) {
		t.Parallel()

		srv, m := newTweetServiceForTest(t)
		actor := uuid.New()
		m.tweets.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(tw *entity.Tweet) bool { return tw.Content == "hello" && tw.OwnerID == actor })).
			RunAndReturn(func(_ context.Context, tw *entity.Tweet) error {
				tw.ID = uuid.New()

				return nil
			})

		view, err := srv.CreateTweet(context.Background(), actor, "  hello ")
		require.NoError(t, err)
		assert.Equal(t, "hello", view.Content)
		assert.Zero(t, view.TotalLikes)
	})

	t.Run("blank content", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTweetServiceForTest(t)

		_, err := srv.CreateTweet(context.Background(), uuid.New(), "\n\t")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestTweetService_ListUserTweets(t *testing.T) {
	t.Parallel()

	srv, m := newTweetServiceForTest(t)
	ctx := context.Background()
	owner := newTestUser("owner")
	now := time.Now()

	older := &entity.Tweet{ID: uuid.New(), OwnerID: owner.ID, Content: "older", CreatedAt: now.Add(-time.Hour)}
	newer := &entity.Tweet{ID: uuid.New(), OwnerID: owner.ID, Content: "newer", CreatedAt: now}

	m.users.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
	m.tweets.EXPECT().ListByOwner(ctx, owner.ID).Return([]*entity.Tweet{older, newer}, nil)
	expectLikeCounts(m.likes, entity.TargetKindTweet, map[uuid.UUID]int64{older.ID: 5})

	page, err := srv.ListUserTweets(ctx, owner.ID, firstPage())
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "newer", page.Items[0].Content)
	assert.Zero(t, page.Items[0].TotalLikes)
	assert.Equal(t, int64(5), page.Items[1].TotalLikes)
	assert.Equal(t, "tweets", page.ItemsKey)
}

func TestTweetService_ListUserTweets_UnknownUser(t *testing.T) {
	t.Parallel()

	srv, m := newTweetServiceForTest(t)
	userID := uuid.New()
	m.users.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err := srv.ListUserTweets(context.Background(), userID, firstPage())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestTweetService_NonOwnerRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(srv *tweetService, actor, tweetID uuid.UUID) error
	}{
		{
			name: "update",
			call: func(srv *tweetService, actor, tweetID uuid.UUID) error {
				_, err := srv.UpdateTweet(context.Background(), actor, tweetID, "mine")
				return err
			},
		},
		{
			name: "delete",
			call: func(srv *tweetService, actor, tweetID uuid.UUID) error {
				return srv.DeleteTweet(context.Background(), actor, tweetID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newTweetServiceForTest(t)
			tweet := &entity.Tweet{ID: uuid.New(), OwnerID: uuid.New(), Content: "original"}
			m.tweets.EXPECT().FindByID(mock.Anything, tweet.ID).Return(tweet, nil)

			err := tt.call(srv, uuid.New(), tweet.ID)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrTweetOwnershipViolation)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 403, appErr.HTTPCode())

			assert.Equal(t, "original", tweet.Content)
			m.tweets.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything)
			m.tx.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestTweetService_DeleteTweet_RemovesLikes(t *testing.T) {
	t.Parallel()

	srv, m := newTweetServiceForTest(t)
	ctx := context.Background()
	tweet := &entity.Tweet{ID: uuid.New(), OwnerID: uuid.New()}

	m.tweets.EXPECT().FindByID(ctx, tweet.ID).Return(tweet, nil)
	repos := expectTransaction(t, m.tx)
	repos.likes.EXPECT().DeleteByTargets(ctx, entity.TargetKindTweet, []uuid.UUID{tweet.ID}).Return(nil).Once()
	repos.tweets.EXPECT().Delete(ctx, tweet.ID).Return(nil).Once()

	require.NoError(t, srv.DeleteTweet(ctx, tweet.OwnerID, tweet.ID))
}
