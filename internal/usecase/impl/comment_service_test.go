package impl

import (
	"context"
	"sync"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceMocks struct {
	tx       *mockRepo.MockTransactionManager
	comments *mockRepo.MockCommentRepository
	videos   *mockRepo.MockVideoRepository
	users    *mockRepo.MockUserRepository
	likes    *mockRepo.MockLikeRepository
}

func newCommentServiceForTest(t *testing.T) (*commentService, *commentServiceMocks) {
	m := &commentServiceMocks{
		tx:       mockRepo.NewMockTransactionManager(t),
		comments: mockRepo.NewMockCommentRepository(t),
		videos:   mockRepo.NewMockVideoRepository(t),
		users:    mockRepo.NewMockUserRepository(t),
		likes:    mockRepo.NewMockLikeRepository(t),
	}

	srv := NewCommentService(CommentServiceParams{
		TxManager:   m.tx,
		CommentRepo: m.comments,
		VideoRepo:   m.videos,
		UserRepo:    m.users,
		LikeRepo:    m.likes,
		Logger:      newDiscardLogger(),
	}).(*commentService)

	return srv, m
}

func TestCommentService_AddComment_SecondCommentConflicts(t *testing.T) {
	t.Parallel()

	srv, m := newCommentServiceForTest(t)
	ctx := context.Background()
	author := newTestUser("author")
	video := &entity.Video{ID: uuid.New(), OwnerID: uuid.New(), IsPublished: true}

	// The unique (owner_id, video_id) index accepts the first insert only.
	var mu sync.Mutex
	stored := 0
	m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	m.comments.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Comment")).
		RunAndReturn(func(_ context.Context, comment *entity.Comment) error {
			mu.Lock()
			defer mu.Unlock()
			if stored > 0 {
				return repository.ErrDuplicateComment
			}
			stored++
			comment.ID = uuid.New()

			return nil
		})
	expectProfiles(m.users, author)
	expectLikeCounts(m.likes, entity.TargetKindComment, nil)

	first, err := srv.AddComment(ctx, author.ID, video.ID, "  first!  ")
	require.NoError(t, err)
	assert.Equal(t, "first!", first.Content)
	assert.Equal(t, author.Username, first.Owner.Username)
	assert.Zero(t, first.LikeCount)

	_, err = srv.AddComment(ctx, author.ID, video.ID, "second")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCommentAlreadyExists)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestCommentService_AddComment_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		setup   func(m *commentServiceMocks, videoID uuid.UUID)
		wantErr error
	}{
		{
			name:    "blank content",
			content: "   ",
			setup:   func(*commentServiceMocks, uuid.UUID) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing video",
			content: "hello",
			setup: func(m *commentServiceMocks, videoID uuid.UUID) {
				m.videos.EXPECT().FindByID(mock.Anything, videoID).Return(nil, repository.ErrVideoNotFound)
			},
			wantErr: domainerrors.ErrVideoNotFound,
		},
		{
			name:    "draft of another channel",
			content: "hello",
			setup: func(m *commentServiceMocks, videoID uuid.UUID) {
				m.videos.EXPECT().FindByID(mock.Anything, videoID).Return(&entity.Video{ID: videoID, OwnerID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrVideoNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newCommentServiceForTest(t)
			videoID := uuid.New()
			tt.setup(m, videoID)

			_, err := srv.AddComment(context.Background(), uuid.New(), videoID, tt.content)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCommentService_UpdateComment_NonOwnerRejected(t *testing.T) {
	t.Parallel()

	srv, m := newCommentServiceForTest(t)
	ctx := context.Background()
	comment := &entity.Comment{ID: uuid.New(), OwnerID: uuid.New(), VideoID: uuid.New(), Content: "original"}

	m.comments.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)

	_, err := srv.UpdateComment(ctx, uuid.New(), comment.ID, "hijacked")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCommentOwnershipViolation)
	assert.Equal(t, "original", comment.Content)
	m.comments.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything)
}

func TestCommentService_UpdateComment(t *testing.T) {
	t.Parallel()

	srv, m := newCommentServiceForTest(t)
	ctx := context.Background()
	author := newTestUser("author")
	comment := &entity.Comment{ID: uuid.New(), OwnerID: author.ID, VideoID: uuid.New(), Content: "original"}

	m.comments.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
	m.comments.EXPECT().UpdateContent(ctx, comment).Return(nil)
	expectProfiles(m.users, author)
	expectLikeCounts(m.likes, entity.TargetKindComment, map[uuid.UUID]int64{comment.ID: 2})

	view, err := srv.UpdateComment(ctx, author.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", view.Content)
	assert.Equal(t, int64(2), view.LikeCount)
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	videoOwner := uuid.New()
	author := uuid.New()

	tests := []struct {
		name    string
		actor   uuid.UUID
		allowed bool
	}{
		{name: "author", actor: author, allowed: true},
		{name: "video owner", actor: videoOwner, allowed: true},
		{name: "stranger", actor: uuid.New(), allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newCommentServiceForTest(t)
			ctx := context.Background()
			comment := &entity.Comment{ID: uuid.New(), OwnerID: author, VideoID: uuid.New()}

			m.comments.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
			if tt.actor != author {
				m.videos.EXPECT().FindByID(ctx, comment.VideoID).Return(&entity.Video{ID: comment.VideoID, OwnerID: videoOwner}, nil)
			}

			if !tt.allowed {
				err := srv.DeleteComment(ctx, tt.actor, comment.ID)
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrCommentOwnershipViolation)
				m.tx.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)

				return
			}

			repos := expectTransaction(t, m.tx)
			repos.likes.EXPECT().DeleteByTargets(ctx, entity.TargetKindComment, []uuid.UUID{comment.ID}).Return(nil)
			repos.comments.EXPECT().Delete(ctx, comment.ID).Return(nil)

			require.NoError(t, srv.DeleteComment(ctx, tt.actor, comment.ID))
		})
	}
}

func TestCommentService_ListComments_DropsOrphansAndCounts(t *testing.T) {
	t.Parallel()

	srv, m := newCommentServiceForTest(t)
	ctx := context.Background()
	videoID := uuid.New()
	author := newTestUser("author")

	kept := &entity.Comment{ID: uuid.New(), OwnerID: author.ID, VideoID: videoID, Content: "kept"}
	orphan := &entity.Comment{ID: uuid.New(), OwnerID: uuid.New(), VideoID: videoID, Content: "orphan"}

	m.videos.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID, IsPublished: true}, nil)
	m.comments.EXPECT().ListByVideo(ctx, videoID).Return([]*entity.Comment{kept, orphan}, nil)
	expectProfiles(m.users, author)
	expectLikeCounts(m.likes, entity.TargetKindComment, map[uuid.UUID]int64{kept.ID: 4})

	page, err := srv.ListComments(ctx, nil, videoID, firstPage())
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "kept", page.Items[0].Content)
	assert.Equal(t, int64(4), page.Items[0].LikeCount)
	assert.Equal(t, 1, page.TotalDocs)
	assert.Equal(t, "comments", page.ItemsKey)
}

func TestCommentService_ListComments_DraftVisibility(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name    string
		viewer  *uuid.UUID
		wantErr error
	}{
		{name: "anonymous", viewer: nil, wantErr: domainerrors.ErrVideoNotFound},
		{name: "other user", viewer: &stranger, wantErr: domainerrors.ErrVideoNotFound},
		{name: "owner", viewer: &owner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newCommentServiceForTest(t)
			ctx := context.Background()
			videoID := uuid.New()

			m.videos.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID, OwnerID: owner, IsPublished: false}, nil)
			if tt.wantErr == nil {
				m.comments.EXPECT().ListByVideo(ctx, videoID).Return(nil, nil)
			}

			page, err := srv.ListComments(ctx, tt.viewer, videoID, firstPage())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				m.comments.AssertNotCalled(t, "ListByVideo", mock.Anything, mock.Anything)

				return
			}
			require.NoError(t, err)
			assert.Empty(t, page.Items)
		})
	}
}
