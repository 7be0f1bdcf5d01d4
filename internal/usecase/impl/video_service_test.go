package impl

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoServiceMocks struct {
	tx        *mockRepo.MockTransactionManager
	videos    *mockRepo.MockVideoRepository
	users     *mockRepo.MockUserRepository
	likes     *mockRepo.MockLikeRepository
	history   *mockRepo.MockWatchHistoryRepository
	media     *mockService.MockMediaStorage
	publisher *mockService.MockEventPublisher
}

func newVideoServiceForTest(t *testing.T) (*videoService, *videoServiceMocks) {
	m := &videoServiceMocks{
		tx:        mockRepo.NewMockTransactionManager(t),
		videos:    mockRepo.NewMockVideoRepository(t),
		users:     mockRepo.NewMockUserRepository(t),
		likes:     mockRepo.NewMockLikeRepository(t),
		history:   mockRepo.NewMockWatchHistoryRepository(t),
		media:     mockService.NewMockMediaStorage(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	srv := NewVideoService(VideoServiceParams{
		TxManager:        m.tx,
		VideoRepo:        m.videos,
		UserRepo:         m.users,
		LikeRepo:         m.likes,
		WatchHistoryRepo: m.history,
		Media:            m.media,
		Publisher:        m.publisher,
		Logger:           newDiscardLogger(),
	}).(*videoService)

	return srv, m
}

func newTestVideo(owner uuid.UUID, published bool) *entity.Video {
	return &entity.Video{
		ID:          uuid.New(),
		OwnerID:     owner,
		VideoFile:   "https://cdn.example.com/video/" + uuid.NewString() + ".mp4",
		Thumbnail:   "https://cdn.example.com/image/" + uuid.NewString() + ".png",
		Title:       "Intro to Go",
		Description: "Channels and goroutines",
		Duration:    90,
		IsPublished: published,
	}
}

func testFile(name, contentType string) *usecase.FileInput {
	return &usecase.FileInput{Name: name, ContentType: contentType, Size: 4, Reader: strings.NewReader("data")}
}

func TestVideoService_GetVideo_ConcurrentViewsAreCounted(t *testing.T) {
	t.Parallel()

	srv, m := newVideoServiceForTest(t)
	owner := newTestUser("owner")
	video := newTestVideo(owner.ID, true)

	var views atomic.Int64
	// Every fetch loads its own row, as the repository does.
	m.videos.EXPECT().FindByID(mock.Anything, video.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Video, error) {
			row := *video

			return &row, nil
		})
	m.videos.EXPECT().IncrementViews(mock.Anything, video.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (int64, error) {
			return views.Add(1), nil
		})
	expectProfiles(m.users, owner)
	expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

	const viewers = 25
	var wg sync.WaitGroup
	for range viewers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.GetVideo(context.Background(), nil, video.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(viewers), views.Load())
	m.history.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestVideoService_GetVideo_ViewPolicy(t *testing.T) {
	t.Parallel()

	owner := newTestUser("owner")
	viewer := newTestUser("viewer")

	tests := []struct {
		name          string
		published     bool
		actor         *uuid.UUID
		wantErr       error
		wantIncrement bool
	}{
		{name: "owner fetch of published video", published: true, actor: &owner.ID},
		{name: "owner sees own draft", published: false, actor: &owner.ID},
		{name: "viewer fetch counts", published: true, actor: &viewer.ID, wantIncrement: true},
		{name: "draft hidden from viewer", published: false, actor: &viewer.ID, wantErr: domainerrors.ErrVideoNotFound},
		{name: "draft hidden from anonymous", published: false, wantErr: domainerrors.ErrVideoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newVideoServiceForTest(t)
			ctx := context.Background()
			video := newTestVideo(owner.ID, tt.published)
			video.Views = 7

			m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
			if tt.wantErr == nil {
				if tt.wantIncrement {
					m.videos.EXPECT().IncrementViews(ctx, video.ID).Return(8, nil)
				}
				m.history.EXPECT().Record(ctx, mock.AnythingOfType("*entity.WatchHistoryEntry")).Return(nil)
				expectProfiles(m.users, owner)
				expectLikeCounts(m.likes, entity.TargetKindVideo, nil)
			}

			view, err := srv.GetVideo(ctx, tt.actor, video.ID)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			if tt.wantIncrement {
				assert.Equal(t, int64(8), view.Views)
			} else {
				assert.Equal(t, int64(7), view.Views)
				m.videos.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestVideoService_GetVideo_HistoryFailureIsIgnored(t *testing.T) {
	t.Parallel()

	srv, m := newVideoServiceForTest(t)
	ctx := context.Background()
	owner := newTestUser("owner")
	viewer := uuid.New()
	video := newTestVideo(owner.ID, true)

	m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	m.videos.EXPECT().IncrementViews(ctx, video.ID).Return(1, nil)
	m.history.EXPECT().Record(ctx, mock.Anything).Return(assert.AnError)
	expectProfiles(m.users, owner)
	expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

	_, err := srv.GetVideo(ctx, &viewer, video.ID)
	require.NoError(t, err)
}

func TestVideoService_ViewCarriesNoCredentials(t *testing.T) {
	t.Parallel()

	srv, m := newVideoServiceForTest(t)
	ctx := context.Background()
	owner := newTestUser("owner")
	video := newTestVideo(owner.ID, true)

	m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	expectProfiles(m.users, owner)
	expectLikeCounts(m.likes, entity.TargetKindVideo, map[uuid.UUID]int64{video.ID: 3})
	m.history.EXPECT().Record(ctx, mock.Anything).Return(nil)

	view, err := srv.GetVideo(ctx, &owner.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), view.LikeCount)
	require.NotNil(t, view.Owner)
	assert.Equal(t, owner.Username, view.Owner.Username)

	body, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(body), owner.PasswordHash)
	assert.NotContains(t, string(body), owner.RefreshTokenHash)
	assert.NotContains(t, string(body), "password")
	assert.Contains(t, string(body), `"likeCount":3`)
}

func TestVideoService_PublishVideo(t *testing.T) {
	t.Parallel()

	srv, m := newVideoServiceForTest(t)
	ctx := context.Background()
	owner := newTestUser("owner")

	m.media.EXPECT().
		Upload(ctx, mock.MatchedBy(func(in service.UploadInput) bool { return in.Kind == service.MediaKindVideo })).
		Return(&service.UploadedMedia{URL: "https://cdn.example.com/v.mp4", Duration: 12.5}, nil)
	m.media.EXPECT().
		Upload(ctx, mock.MatchedBy(func(in service.UploadInput) bool { return in.Kind == service.MediaKindImage })).
		Return(&service.UploadedMedia{URL: "https://cdn.example.com/t.png"}, nil)
	m.videos.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Video")).
		RunAndReturn(func(_ context.Context, video *entity.Video) error {
			video.ID = uuid.New()

			return nil
		})
	expectProfiles(m.users, owner)
	expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

	view, err := srv.PublishVideo(ctx, owner.ID, &usecase.PublishVideoInput{
		Title:       " Intro ",
		Description: "desc",
		VideoFile:   testFile("clip.mp4", "video/mp4"),
		Thumbnail:   testFile("thumb.png", "image/png"),
		Duration:    99,
	})
	require.NoError(t, err)
	assert.Equal(t, "Intro", view.Title)
	assert.InDelta(t, 12.5, view.Duration, 0.001)
	assert.False(t, view.IsPublished)
	assert.Equal(t, "https://cdn.example.com/v.mp4", view.VideoFile)
}

func TestVideoService_PublishVideo_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   *usecase.PublishVideoInput
		wantErr error
	}{
		{
			name:    "missing title",
			input:   &usecase.PublishVideoInput{Description: "d", VideoFile: testFile("a.mp4", "video/mp4"), Thumbnail: testFile("a.png", "image/png")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "description too long",
			input:   &usecase.PublishVideoInput{Title: "t", Description: strings.Repeat("x", 1001), VideoFile: testFile("a.mp4", "video/mp4"), Thumbnail: testFile("a.png", "image/png")},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing video file",
			input:   &usecase.PublishVideoInput{Title: "t", Description: "d", Thumbnail: testFile("a.png", "image/png")},
			wantErr: domainerrors.ErrMissingFile,
		},
		{
			name:    "missing thumbnail",
			input:   &usecase.PublishVideoInput{Title: "t", Description: "d", VideoFile: testFile("a.mp4", "video/mp4")},
			wantErr: domainerrors.ErrMissingFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newVideoServiceForTest(t)

			_, err := srv.PublishVideo(context.Background(), uuid.New(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVideoService_PublishVideo_ThumbnailFailureDiscardsVideo(t *testing.T) {
	t.Parallel()

	srv, m := newVideoServiceForTest(t)
	ctx := context.Background()

	m.media.EXPECT().
		Upload(ctx, mock.MatchedBy(func(in service.UploadInput) bool { return in.Kind == service.MediaKindVideo })).
		Return(&service.UploadedMedia{URL: "https://cdn.example.com/v.mp4"}, nil)
	m.media.EXPECT().
		Upload(ctx, mock.MatchedBy(func(in service.UploadInput) bool { return in.Kind == service.MediaKindImage })).
		Return(nil, assert.AnError)
	m.media.EXPECT().Delete(ctx, "https://cdn.example.com/v.mp4").Return(nil).Once()

	_, err := srv.PublishVideo(ctx, uuid.New(), &usecase.PublishVideoInput{
		Title:       "t",
		Description: "d",
		VideoFile:   testFile("clip.mp4", "video/mp4"),
		Thumbnail:   testFile("thumb.png", "image/png"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMediaUploadFailed)
	m.videos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVideoService_NonOwnerCannotModify(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name string
		call func(srv *videoService, videoID uuid.UUID) error
	}{
		{
			name: "update",
			call: func(srv *videoService, videoID uuid.UUID) error {
				_, err := srv.UpdateVideo(context.Background(), stranger, videoID, &usecase.UpdateVideoInput{Title: "mine now"})
				return err
			},
		},
		{
			name: "delete",
			call: func(srv *videoService, videoID uuid.UUID) error {
				return srv.DeleteVideo(context.Background(), stranger, videoID)
			},
		},
		{
			name: "toggle publish",
			call: func(srv *videoService, videoID uuid.UUID) error {
				_, err := srv.TogglePublish(context.Background(), stranger, videoID)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newVideoServiceForTest(t)
			video := newTestVideo(owner, true)
			m.videos.EXPECT().FindByID(mock.Anything, video.ID).Return(video, nil)

			err := tt.call(srv, video.ID)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrVideoOwnershipViolation)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 403, appErr.HTTPCode())

			assert.Equal(t, "Intro to Go", video.Title)
			m.videos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			m.videos.AssertNotCalled(t, "SetPublished", mock.Anything, mock.Anything, mock.Anything)
			m.tx.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestVideoService_UpdateVideo_ReplacesThumbnail(t *testing.T) {
	t.Parallel()

	srv, m := newVideoServiceForTest(t)
	ctx := context.Background()
	owner := newTestUser("owner")
	video := newTestVideo(owner.ID, true)
	oldThumbnail := video.Thumbnail

	m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	m.media.EXPECT().Upload(ctx, mock.Anything).Return(&service.UploadedMedia{URL: "https://cdn.example.com/new.png"}, nil)
	m.videos.EXPECT().Update(ctx, video).Return(nil)
	m.media.EXPECT().Delete(ctx, oldThumbnail).Return(nil).Once()
	expectProfiles(m.users, owner)
	expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

	view, err := srv.UpdateVideo(ctx, owner.ID, video.ID, &usecase.UpdateVideoInput{
		Title:     "Renamed",
		Thumbnail: testFile("new.png", "image/png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", view.Title)
	assert.Equal(t, "https://cdn.example.com/new.png", view.Thumbnail)
	assert.Equal(t, "Channels and goroutines", view.Description)
}

func TestVideoService_UpdateVideo_NothingToUpdate(t *testing.T) {
	t.Parallel()

	srv, _ := newVideoServiceForTest(t)

	_, err := srv.UpdateVideo(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateVideoInput{Title: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNothingToUpdate)
}

func TestVideoService_DeleteVideo_Cascades(t *testing.T) {
	t.Parallel()

	srv, m := newVideoServiceForTest(t)
	ctx := context.Background()
	owner := uuid.New()
	video := newTestVideo(owner, true)
	commentIDs := []uuid.UUID{uuid.New(), uuid.New()}

	m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	repos := expectTransaction(t, m.tx)
	repos.comments.EXPECT().DeleteByVideo(ctx, video.ID).Return(commentIDs, nil).Once()
	repos.likes.EXPECT().DeleteByTargets(ctx, entity.TargetKindComment, commentIDs).Return(nil).Once()
	repos.likes.EXPECT().DeleteByTargets(ctx, entity.TargetKindVideo, []uuid.UUID{video.ID}).Return(nil).Once()
	repos.lists.EXPECT().RemoveVideoEverywhere(ctx, video.ID).Return(nil).Once()
	repos.history.EXPECT().DeleteByVideo(ctx, video.ID).Return(nil).Once()
	repos.videos.EXPECT().Delete(ctx, video.ID).Return(nil).Once()

	m.media.EXPECT().Delete(ctx, video.VideoFile).Return(nil).Once()
	m.media.EXPECT().Delete(ctx, video.Thumbnail).Return(assert.AnError).Once()
	m.publisher.EXPECT().
		PublishVideoEvent(ctx, mock.MatchedBy(func(e *service.VideoEvent) bool {
			return e.Type == service.VideoEventDeleted && e.VideoID == video.ID.String() && e.OwnerID == owner.String()
		})).
		Return(nil).
		Once()

	require.NoError(t, srv.DeleteVideo(ctx, owner, video.ID))
}

func TestVideoService_DeleteVideo_RollbackKeepsMedia(t *testing.T) {
	t.Parallel()

	srv, m := newVideoServiceForTest(t)
	ctx := context.Background()
	owner := uuid.New()
	video := newTestVideo(owner, true)

	m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	repos := expectTransaction(t, m.tx)
	repos.comments.EXPECT().DeleteByVideo(ctx, video.ID).Return(nil, assert.AnError)

	err := srv.DeleteVideo(ctx, owner, video.ID)
	require.Error(t, err)
	m.media.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "PublishVideoEvent", mock.Anything, mock.Anything)
}

func TestVideoService_TogglePublish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		published bool
		wantEvent service.VideoEventType
	}{
		{name: "draft becomes published", published: false, wantEvent: service.VideoEventPublished},
		{name: "published becomes draft", published: true, wantEvent: service.VideoEventUnpublished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newVideoServiceForTest(t)
			ctx := context.Background()
			owner := newTestUser("owner")
			video := newTestVideo(owner.ID, tt.published)

			m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
			m.videos.EXPECT().SetPublished(ctx, video.ID, !tt.published).Return(nil)
			m.publisher.EXPECT().
				PublishVideoEvent(ctx, mock.MatchedBy(func(e *service.VideoEvent) bool { return e.Type == tt.wantEvent })).
				Return(assert.AnError)
			expectProfiles(m.users, owner)
			expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

			view, err := srv.TogglePublish(ctx, owner.ID, video.ID)
			require.NoError(t, err)
			assert.Equal(t, !tt.published, view.IsPublished)
		})
	}
}

func TestVideoService_ListVideos_DraftsOnlyForOwnChannel(t *testing.T) {
	t.Parallel()

	owner := newTestUser("owner")

	tests := []struct {
		name          string
		actor         *uuid.UUID
		channel       *uuid.UUID
		wantPublished bool
	}{
		{name: "anonymous", wantPublished: true},
		{name: "owner browsing everything", actor: &owner.ID, wantPublished: true},
		{name: "owner listing own channel", actor: &owner.ID, channel: &owner.ID, wantPublished: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newVideoServiceForTest(t)
			ctx := context.Background()
			older := newTestVideo(owner.ID, true)
			newer := newTestVideo(owner.ID, true)
			newer.CreatedAt = older.CreatedAt.Add(1)

			m.videos.EXPECT().
				List(ctx, repository.VideoFilter{Query: "go", OwnerID: tt.channel, PublishedOnly: tt.wantPublished}).
				Return([]*entity.Video{older, newer}, nil)
			expectProfiles(m.users, owner)
			expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

			page, err := srv.ListVideos(ctx, tt.actor, &usecase.ListVideosInput{ListOptions: firstPage(), Query: "go", UserID: tt.channel})
			require.NoError(t, err)
			require.Len(t, page.Items, 2)
			assert.Equal(t, newer.ID, page.Items[0].ID)
			assert.Equal(t, "videos", page.ItemsKey)
		})
	}
}
