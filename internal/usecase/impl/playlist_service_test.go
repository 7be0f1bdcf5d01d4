package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type playlistServiceMocks struct {
	playlists *mockRepo.MockPlaylistRepository
	videos    *mockRepo.MockVideoRepository
	users     *mockRepo.MockUserRepository
	likes     *mockRepo.MockLikeRepository
}

func newPlaylistServiceForTest(t *testing.T) (*playlistService, *playlistServiceMocks) {
	m := &playlistServiceMocks{
		playlists: mockRepo.NewMockPlaylistRepository(t),
		videos:    mockRepo.NewMockVideoRepository(t),
		users:     mockRepo.NewMockUserRepository(t),
		likes:     mockRepo.NewMockLikeRepository(t),
	}

	srv := NewPlaylistService(PlaylistServiceParams{
		PlaylistRepo: m.playlists,
		VideoRepo:    m.videos,
		UserRepo:     m.users,
		LikeRepo:     m.likes,
		Logger:       newDiscardLogger(),
	}).(*playlistService)

	return srv, m
}

func TestPlaylistService_CreatePlaylist(t *testing.T) {
	t.Parallel()

	t.Run("starts empty", func(t *testing.T) {
		t.Parallel()

		srv, m := newPlaylistServiceForTest(t)
		actor := uuid.New()
		m.playlists.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Playlist")).Return(nil)

		view, err := srv.CreatePlaylist(context.Background(), actor, &usecase.PlaylistInput{Name: "Favs", Description: "best of"})
		require.NoError(t, err)
		assert.Equal(t, "Favs", view.Name)
		assert.Equal(t, actor, view.OwnerID)
		assert.NotNil(t, view.Videos)
		assert.Zero(t, view.VideoCount)
	})

	t.Run("description required", func(t *testing.T) {
		t.Parallel()

		srv, _ := newPlaylistServiceForTest(t)

		_, err := srv.CreatePlaylist(context.Background(), uuid.New(), &usecase.PlaylistInput{Name: "Favs"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPlaylistService_AddVideo(t *testing.T) {
	t.Parallel()

	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	owner := newTestUser("owner")
	first := newTestVideo(owner.ID, true)
	second := newTestVideo(owner.ID, true)
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner.ID, Name: "Favs", VideoIDs: []uuid.UUID{first.ID}}
	reloaded := *playlist
	reloaded.VideoIDs = []uuid.UUID{first.ID, second.ID}

	m.playlists.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil).Once()
	m.videos.EXPECT().FindByID(ctx, second.ID).Return(second, nil)
	m.playlists.EXPECT().AddVideo(ctx, playlist.ID, second.ID).Return(nil).Once()
	m.playlists.EXPECT().FindByID(ctx, playlist.ID).Return(&reloaded, nil).Once()
	m.videos.EXPECT().FindByIDs(ctx, []uuid.UUID{first.ID, second.ID}).Return([]*entity.Video{second, first}, nil)
	expectProfiles(m.users, owner)
	expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

	view, err := srv.AddVideo(ctx, owner.ID, playlist.ID, second.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, view.VideoCount)
	require.Len(t, view.Videos, 2)
	assert.Equal(t, first.ID, view.Videos[0].ID)
	assert.Equal(t, second.ID, view.Videos[1].ID)
}

func TestPlaylistService_AddVideo_AlreadyPresent(t *testing.T) {
	t.Parallel()

	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	owner := uuid.New()
	video := newTestVideo(owner, true)
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner, VideoIDs: []uuid.UUID{video.ID}}

	m.playlists.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	_, err := srv.AddVideo(ctx, owner, playlist.ID, video.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVideoAlreadyInPlaylist)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
	m.playlists.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistService_AddVideo_LostRaceIsConflict(t *testing.T) {
	t.Parallel()

	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	owner := uuid.New()
	video := newTestVideo(owner, true)
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner}

	m.playlists.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	m.videos.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	m.playlists.EXPECT().AddVideo(ctx, playlist.ID, video.ID).Return(repository.ErrDuplicatePlaylistVideo)

	_, err := srv.AddVideo(ctx, owner, playlist.ID, video.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVideoAlreadyInPlaylist)
}

func TestPlaylistService_RemoveVideo_NotPresent(t *testing.T) {
	t.Parallel()

	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	owner := uuid.New()
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner, VideoIDs: []uuid.UUID{uuid.New()}}

	m.playlists.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)

	_, err := srv.RemoveVideo(ctx, owner, playlist.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotInPlaylist)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	m.playlists.AssertNotCalled(t, "RemoveVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistService_NonOwnerRejected(t *testing.T) {
	t.Parallel()

	stranger := uuid.New()

	tests := []struct {
		name string
		call func(srv *playlistService, playlistID uuid.UUID) error
	}{
		{
			name: "update",
			call: func(srv *playlistService, playlistID uuid.UUID) error {
				_, err := srv.UpdatePlaylist(context.Background(), stranger, playlistID, &usecase.PlaylistInput{Name: "mine"})
				return err
			},
		},
		{
			name: "delete",
			call: func(srv *playlistService, playlistID uuid.UUID) error {
				return srv.DeletePlaylist(context.Background(), stranger, playlistID)
			},
		},
		{
			name: "add video",
			call: func(srv *playlistService, playlistID uuid.UUID) error {
				_, err := srv.AddVideo(context.Background(), stranger, playlistID, uuid.New())
				return err
			},
		},
		{
			name: "remove video",
			call: func(srv *playlistService, playlistID uuid.UUID) error {
				_, err := srv.RemoveVideo(context.Background(), stranger, playlistID, uuid.New())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newPlaylistServiceForTest(t)
			playlist := &entity.Playlist{ID: uuid.New(), OwnerID: uuid.New(), Name: "theirs"}
			m.playlists.EXPECT().FindByID(mock.Anything, playlist.ID).Return(playlist, nil)

			err := tt.call(srv, playlist.ID)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrPlaylistOwnershipViolation)
			assert.Equal(t, "theirs", playlist.Name)
			m.playlists.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			m.playlists.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestPlaylistService_GetPlaylist_HidesOthersDrafts(t *testing.T) {
	t.Parallel()

	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	channel := newTestUser("channel")
	viewer := uuid.New()
	published := newTestVideo(channel.ID, true)
	draft := newTestVideo(channel.ID, false)
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: channel.ID, VideoIDs: []uuid.UUID{draft.ID, published.ID}}

	m.playlists.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	m.videos.EXPECT().FindByIDs(ctx, playlist.VideoIDs).Return([]*entity.Video{draft, published}, nil)
	expectProfiles(m.users, channel)
	expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

	view, err := srv.GetPlaylist(ctx, viewer, playlist.ID)
	require.NoError(t, err)
	require.Len(t, view.Videos, 1)
	assert.Equal(t, published.ID, view.Videos[0].ID)
	assert.Equal(t, 1, view.VideoCount)
}

func TestPlaylistService_ListUserPlaylists(t *testing.T) {
	t.Parallel()

	srv, m := newPlaylistServiceForTest(t)
	ctx := context.Background()
	owner := newTestUser("owner")
	empty := &entity.Playlist{ID: uuid.New(), OwnerID: owner.ID, Name: "b-side"}
	video := newTestVideo(owner.ID, true)
	full := &entity.Playlist{ID: uuid.New(), OwnerID: owner.ID, Name: "A-side", VideoIDs: []uuid.UUID{video.ID}}

	m.users.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
	m.playlists.EXPECT().ListByOwner(ctx, owner.ID).Return([]*entity.Playlist{empty, full}, nil)
	m.videos.EXPECT().FindByIDs(ctx, []uuid.UUID{video.ID}).Return([]*entity.Video{video}, nil)
	expectProfiles(m.users, owner)
	expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

	page, err := srv.ListUserPlaylists(ctx, owner.ID, owner.ID, usecase.ListOptions{Page: 1, Limit: 10, SortBy: "name", SortType: "asc"})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "A-side", page.Items[0].Name)
	assert.Equal(t, 1, page.Items[0].VideoCount)
	assert.Empty(t, page.Items[1].Videos)
	assert.Equal(t, "playlists", page.ItemsKey)
}
