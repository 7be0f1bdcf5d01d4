package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"
	"vidtube/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	users         *mockRepo.MockUserRepository
	videos        *mockRepo.MockVideoRepository
	likes         *mockRepo.MockLikeRepository
	subscriptions *mockRepo.MockSubscriptionRepository
	history       *mockRepo.MockWatchHistoryRepository
	hasher        *mockService.MockPasswordHasher
	tokens        *mockService.MockTokenService
	media         *mockService.MockMediaStorage
}

func newUserServiceForTest(t *testing.T) (*userService, *userServiceMocks) {
	m := &userServiceMocks{
		users:         mockRepo.NewMockUserRepository(t),
		videos:        mockRepo.NewMockVideoRepository(t),
		likes:         mockRepo.NewMockLikeRepository(t),
		subscriptions: mockRepo.NewMockSubscriptionRepository(t),
		history:       mockRepo.NewMockWatchHistoryRepository(t),
		hasher:        mockService.NewMockPasswordHasher(t),
		tokens:        mockService.NewMockTokenService(t),
		media:         mockService.NewMockMediaStorage(t),
	}

	srv := NewUserService(UserServiceParams{
		UserRepo:         m.users,
		VideoRepo:        m.videos,
		LikeRepo:         m.likes,
		SubscriptionRepo: m.subscriptions,
		WatchHistoryRepo: m.history,
		Hasher:           m.hasher,
		TokenService:     m.tokens,
		Media:            m.media,
		Logger:           newDiscardLogger(),
	}).(*userService)

	return srv, m
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FullName:   "Jane Doe",
		Email:      "Jane@Example.com",
		Username:   "JaneD",
		Password:   "s3cret",
		Avatar:     testFile("avatar.png", "image/png"),
		CoverImage: testFile("cover.jpg", "image/jpeg"),
	}
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	input := registerInput()

	m.users.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	m.users.EXPECT().FindByHandle(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	m.media.EXPECT().
		Upload(ctx, mock.MatchedBy(func(in service.UploadInput) bool { return in.Name == "avatar.png" })).
		Return(&service.UploadedMedia{URL: "https://cdn.example.com/avatar.png"}, nil)
	m.media.EXPECT().
		Upload(ctx, mock.MatchedBy(func(in service.UploadInput) bool { return in.Name == "cover.jpg" })).
		Return(&service.UploadedMedia{URL: "https://cdn.example.com/cover.jpg"}, nil)
	m.users.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "janed" && u.Email == "jane@example.com" && u.PasswordHash == "hashed"
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = uuid.New()

			return nil
		})

	view, err := srv.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "janed", view.Username)
	assert.Equal(t, "https://cdn.example.com/avatar.png", view.Avatar)
	assert.Equal(t, "https://cdn.example.com/cover.jpg", view.CoverImage)

	body, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "hashed")
}

func TestUserService_Register_DuplicateSkipsUpload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(m *userServiceMocks, input *usecase.RegisterInput)
	}{
		{
			name: "username taken",
			setup: func(m *userServiceMocks, input *usecase.RegisterInput) {
				m.users.EXPECT().FindByUsername(mock.Anything, input.Username).Return(newTestUser("janed"), nil)
			},
		},
		{
			name: "email taken",
			setup: func(m *userServiceMocks, input *usecase.RegisterInput) {
				m.users.EXPECT().FindByUsername(mock.Anything, input.Username).Return(nil, repository.ErrUserNotFound)
				m.users.EXPECT().FindByHandle(mock.Anything, input.Email).Return(newTestUser("other"), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newUserServiceForTest(t)
			input := registerInput()
			tt.setup(m, input)

			_, err := srv.Register(context.Background(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
			m.media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
			m.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_Register_CreateFailureDiscardsMedia(t *testing.T) {
	t.Parallel()

	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	input := registerInput()

	m.users.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	m.users.EXPECT().FindByHandle(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	m.media.EXPECT().
		Upload(ctx, mock.MatchedBy(func(in service.UploadInput) bool { return in.Name == "avatar.png" })).
		Return(&service.UploadedMedia{URL: "https://cdn.example.com/avatar.png"}, nil)
	m.media.EXPECT().
		Upload(ctx, mock.MatchedBy(func(in service.UploadInput) bool { return in.Name == "cover.jpg" })).
		Return(&service.UploadedMedia{URL: "https://cdn.example.com/cover.jpg"}, nil)
	m.users.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUser)
	m.media.EXPECT().Delete(ctx, "https://cdn.example.com/avatar.png").Return(nil).Once()
	m.media.EXPECT().Delete(ctx, "https://cdn.example.com/cover.jpg").Return(nil).Once()

	_, err := srv.Register(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(in *usecase.RegisterInput)
		wantErr error
	}{
		{name: "blank username", mutate: func(in *usecase.RegisterInput) { in.Username = "  " }, wantErr: domainerrors.ErrValidationFailed},
		{name: "blank password", mutate: func(in *usecase.RegisterInput) { in.Password = "" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing avatar", mutate: func(in *usecase.RegisterInput) { in.Avatar = nil }, wantErr: domainerrors.ErrMissingFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newUserServiceForTest(t)
			input := registerInput()
			tt.mutate(input)

			_, err := srv.Register(context.Background(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	user := newTestUser("jane")

	m.users.EXPECT().FindByHandle(ctx, "jane@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("s3cret", user.PasswordHash).Return(true)
	m.tokens.EXPECT().GenerateTokens(user.ID).Return("access", "refresh", nil)
	m.users.EXPECT().SetRefreshTokenHash(ctx, user.ID, util.SHA256Hex("refresh")).Return(nil).Once()

	out, err := srv.Login(ctx, &usecase.LoginInput{UsernameOrEmail: "jane@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(m *userServiceMocks, user *entity.User)
	}{
		{
			name: "unknown handle",
			setup: func(m *userServiceMocks, _ *entity.User) {
				m.users.EXPECT().FindByHandle(mock.Anything, "jane").Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "wrong password",
			setup: func(m *userServiceMocks, user *entity.User) {
				m.users.EXPECT().FindByHandle(mock.Anything, "jane").Return(user, nil)
				m.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newUserServiceForTest(t)
			tt.setup(m, newTestUser("jane"))

			_, err := srv.Login(context.Background(), &usecase.LoginInput{UsernameOrEmail: "jane", Password: "wrong"})
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			m.tokens.AssertNotCalled(t, "GenerateTokens", mock.Anything)
		})
	}
}

func TestUserService_RefreshTokens(t *testing.T) {
	t.Parallel()

	user := newTestUser("jane")

	tests := []struct {
		name      string
		token     string
		setup     func(m *userServiceMocks, u *entity.User)
		wantErr   error
		wantPair  bool
		storedFor string
	}{
		{
			name:    "missing token",
			token:   " ",
			setup:   func(*userServiceMocks, *entity.User) {},
			wantErr: domainerrors.ErrRefreshTokenMissing,
		},
		{
			name:  "token fails validation",
			token: "garbage",
			setup: func(m *userServiceMocks, _ *entity.User) {
				m.tokens.EXPECT().ValidateRefreshToken("garbage").Return(nil, assert.AnError)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name:  "rotated token is rejected",
			token: "old-refresh",
			setup: func(m *userServiceMocks, u *entity.User) {
				m.tokens.EXPECT().ValidateRefreshToken("old-refresh").Return(&service.Claims{UserID: u.ID}, nil)
				u.RefreshTokenHash = util.SHA256Hex("new-refresh")
				m.users.EXPECT().FindByID(mock.Anything, u.ID).Return(u, nil)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name:  "logged out user is rejected",
			token: "refresh",
			setup: func(m *userServiceMocks, u *entity.User) {
				m.tokens.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: u.ID}, nil)
				u.RefreshTokenHash = ""
				m.users.EXPECT().FindByID(mock.Anything, u.ID).Return(u, nil)
			},
			wantErr: domainerrors.ErrRefreshTokenInvalid,
		},
		{
			name:  "current token rotates",
			token: "refresh",
			setup: func(m *userServiceMocks, u *entity.User) {
				m.tokens.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: u.ID}, nil)
				u.RefreshTokenHash = util.SHA256Hex("refresh")
				m.users.EXPECT().FindByID(mock.Anything, u.ID).Return(u, nil)
				m.tokens.EXPECT().GenerateTokens(u.ID).Return("access-2", "refresh-2", nil)
				m.users.EXPECT().SetRefreshTokenHash(mock.Anything, u.ID, util.SHA256Hex("refresh-2")).Return(nil).Once()
			},
			wantPair: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newUserServiceForTest(t)
			u := *user
			tt.setup(m, &u)

			out, err := srv.RefreshTokens(context.Background(), tt.token)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, 401, appErr.HTTPCode())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-2", out.AccessToken)
			assert.Equal(t, "refresh-2", out.RefreshToken)
		})
	}
}

func TestUserService_Logout(t *testing.T) {
	t.Parallel()

	srv, m := newUserServiceForTest(t)
	userID := uuid.New()
	m.users.EXPECT().SetRefreshTokenHash(mock.Anything, userID, "").Return(nil).Once()

	require.NoError(t, srv.Logout(context.Background(), userID))
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		srv, m := newUserServiceForTest(t)
		user := newTestUser("jane")
		m.tokens.EXPECT().ValidateAccessToken("access").Return(&service.Claims{UserID: user.ID}, nil)
		m.users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		id, err := srv.Authenticate(context.Background(), "access")
		require.NoError(t, err)
		assert.Equal(t, user.ID, id)
	})

	t.Run("deleted user", func(t *testing.T) {
		t.Parallel()

		srv, m := newUserServiceForTest(t)
		userID := uuid.New()
		m.tokens.EXPECT().ValidateAccessToken("access").Return(&service.Claims{UserID: userID}, nil)
		m.users.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		_, err := srv.Authenticate(context.Background(), "access")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		srv, m := newUserServiceForTest(t)
		m.tokens.EXPECT().ValidateAccessToken("bad").Return(nil, assert.AnError)

		_, err := srv.Authenticate(context.Background(), "bad")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAccessToken)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("wrong current password", func(t *testing.T) {
		t.Parallel()

		srv, m := newUserServiceForTest(t)
		user := newTestUser("jane")
		m.users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		m.hasher.EXPECT().Check("old", user.PasswordHash).Return(false)

		err := srv.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "new"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCurrentPassword)
		m.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("stores new hash", func(t *testing.T) {
		t.Parallel()

		srv, m := newUserServiceForTest(t)
		user := newTestUser("jane")
		m.users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		m.hasher.EXPECT().Check("old", user.PasswordHash).Return(true)
		m.hasher.EXPECT().Hash("new").Return("new-hash", nil)
		m.users.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new-hash" })).
			Return(nil)

		require.NoError(t, srv.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "new"}))
	})
}

func TestUserService_UpdateAccountDetails(t *testing.T) {
	t.Parallel()

	t.Run("nothing to update", func(t *testing.T) {
		t.Parallel()

		srv, _ := newUserServiceForTest(t)

		_, err := srv.UpdateAccountDetails(context.Background(), uuid.New(), &usecase.UpdateAccountInput{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNothingToUpdate)
	})

	t.Run("email only", func(t *testing.T) {
		t.Parallel()

		srv, m := newUserServiceForTest(t)
		user := newTestUser("jane")
		m.users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		m.users.EXPECT().Update(mock.Anything, user).Return(nil)

		view, err := srv.UpdateAccountDetails(context.Background(), user.ID, &usecase.UpdateAccountInput{Email: " New@Example.com "})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", view.Email)
		assert.Equal(t, "Test jane", view.FullName)
	})
}

func TestUserService_UpdateAvatar_ReplacesPreviousAsset(t *testing.T) {
	t.Parallel()

	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	user := newTestUser("jane")
	previous := user.Avatar

	m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.media.EXPECT().Upload(ctx, mock.Anything).Return(&service.UploadedMedia{URL: "https://cdn.example.com/new.png"}, nil)
	m.users.EXPECT().Update(ctx, user).Return(nil)
	m.media.EXPECT().Delete(ctx, previous).Return(nil).Once()

	view, err := srv.UpdateAvatar(ctx, user.ID, testFile("new.png", "image/png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.png", view.Avatar)
}

func TestUserService_UpdateCoverImage_FailedUpdateDiscardsUpload(t *testing.T) {
	t.Parallel()

	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	user := newTestUser("jane")

	m.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.media.EXPECT().Upload(ctx, mock.Anything).Return(&service.UploadedMedia{URL: "https://cdn.example.com/cover.png"}, nil)
	m.users.EXPECT().Update(ctx, user).Return(assert.AnError)
	m.media.EXPECT().Delete(ctx, "https://cdn.example.com/cover.png").Return(nil).Once()

	_, err := srv.UpdateCoverImage(ctx, user.ID, testFile("cover.png", "image/png"))
	require.Error(t, err)
}

func TestUserService_GetChannelProfile(t *testing.T) {
	t.Parallel()

	channel := newTestUser("channel")
	viewer := uuid.New()

	tests := []struct {
		name           string
		viewer         *uuid.UUID
		subscribed     bool
		wantSubscribed bool
	}{
		{name: "anonymous"},
		{name: "subscribed viewer", viewer: &viewer, subscribed: true, wantSubscribed: true},
		{name: "other viewer", viewer: &viewer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newUserServiceForTest(t)
			ctx := context.Background()

			m.users.EXPECT().FindByUsername(ctx, "channel").Return(channel, nil)
			m.subscriptions.EXPECT().CountByChannels(ctx, []uuid.UUID{channel.ID}).Return(map[uuid.UUID]int64{channel.ID: 12}, nil)
			m.subscriptions.EXPECT().CountBySubscribers(ctx, []uuid.UUID{channel.ID}).Return(map[uuid.UUID]int64{}, nil)
			if tt.viewer != nil {
				if tt.subscribed {
					m.subscriptions.EXPECT().Find(ctx, viewer, channel.ID).Return(&entity.Subscription{SubscriberID: viewer, ChannelID: channel.ID}, nil)
				} else {
					m.subscriptions.EXPECT().Find(ctx, viewer, channel.ID).Return(nil, repository.ErrSubscriptionNotFound)
				}
			}

			profile, err := srv.GetChannelProfile(ctx, tt.viewer, "channel")
			require.NoError(t, err)
			assert.Equal(t, int64(12), profile.SubscriberCount)
			assert.Zero(t, profile.SubscribedToCount)
			assert.Equal(t, tt.wantSubscribed, profile.IsSubscribed)
		})
	}
}

func TestUserService_GetChannelProfile_UnknownChannel(t *testing.T) {
	t.Parallel()

	srv, m := newUserServiceForTest(t)
	m.users.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := srv.GetChannelProfile(context.Background(), nil, "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}

func TestUserService_GetWatchHistory(t *testing.T) {
	t.Parallel()

	srv, m := newUserServiceForTest(t)
	ctx := context.Background()
	user := newTestUser("jane")
	owner := newTestUser("owner")

	watchedFirst := newTestVideo(owner.ID, true)
	watchedLast := newTestVideo(owner.ID, true)
	unpublished := newTestVideo(owner.ID, false)
	now := time.Now()

	m.history.EXPECT().ListByUser(ctx, user.ID).Return([]*entity.WatchHistoryEntry{
		{UserID: user.ID, VideoID: watchedFirst.ID, WatchedAt: now.Add(-time.Hour)},
		{UserID: user.ID, VideoID: unpublished.ID, WatchedAt: now.Add(-time.Minute)},
		{UserID: user.ID, VideoID: watchedLast.ID, WatchedAt: now},
		{UserID: user.ID, VideoID: uuid.New(), WatchedAt: now},
	}, nil)
	m.videos.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.Video{watchedFirst, watchedLast, unpublished}, nil)
	expectProfiles(m.users, owner)
	expectLikeCounts(m.likes, entity.TargetKindVideo, nil)

	page, err := srv.GetWatchHistory(ctx, user.ID, firstPage())
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, watchedLast.ID, page.Items[0].ID)
	assert.Equal(t, watchedFirst.ID, page.Items[1].ID)
	assert.Equal(t, "videos", page.ItemsKey)
	require.NotNil(t, page.Items[0].Owner)
	assert.Equal(t, "owner", page.Items[0].Owner.Username)
}
