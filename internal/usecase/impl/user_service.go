package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/pagination"
	"vidtube/internal/usecase"
	"vidtube/internal/usecase/aggregate"
	"vidtube/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo         repository.UserRepository
	videoRepo        repository.VideoRepository
	likeRepo         repository.LikeRepository
	subscriptionRepo repository.SubscriptionRepository
	watchHistoryRepo repository.WatchHistoryRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	media            service.MediaStorage
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	VideoRepo        repository.VideoRepository
	LikeRepo         repository.LikeRepository
	SubscriptionRepo repository.SubscriptionRepository
	WatchHistoryRepo repository.WatchHistoryRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Media            service.MediaStorage
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:         params.UserRepo,
		videoRepo:        params.VideoRepo,
		likeRepo:         params.LikeRepo,
		subscriptionRepo: params.SubscriptionRepo,
		watchHistoryRepo: params.WatchHistoryRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		media:            params.Media,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

var userErrors = map[error]error{
	repository.ErrUserNotFound:  domainerrors.ErrUserNotFound,
	repository.ErrDuplicateUser: domainerrors.ErrUserAlreadyExists,
}

// Register creates an account. Uploaded media are discarded when the user cannot be stored.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserView, error) {
	if isBlank(input.FullName, input.Email, input.Username, input.Password) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fullName, email, username and password are required")
	}
	if input.Avatar == nil {
		return nil, domainerrors.ErrMissingFile.WithDetails("avatar is required")
	}

	if err := srv.ensureHandlesFree(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	avatar, err := uploadMedia(ctx, srv.media, service.MediaKindImage, input.Avatar)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     entity.NormalizeHandle(input.Username),
		Email:        entity.NormalizeHandle(input.Email),
		FullName:     strings.TrimSpace(input.FullName),
		PasswordHash: hash,
		Avatar:       avatar.URL,
	}

	if input.CoverImage != nil {
		cover, err := uploadMedia(ctx, srv.media, service.MediaKindImage, input.CoverImage)
		if err != nil {
			discardMedia(ctx, srv.media, srv.log(ctx), avatar.URL)

			return nil, err
		}
		user.CoverImage = cover.URL
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user, discarding uploaded media", slog.String("username", user.Username), slog.Any("error", err))
		discardMedia(ctx, srv.media, srv.log(ctx), user.Avatar, user.CoverImage)

		return nil, translate(err, "failed to create user", userErrors)
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return usecase.NewUserView(user), nil
}

func (srv *userService) ensureHandlesFree(ctx context.Context, username, email string) error {
	for _, find := range []func() (*entity.User, error){
		func() (*entity.User, error) { return srv.userRepo.FindByUsername(ctx, username) },
		func() (*entity.User, error) { return srv.userRepo.FindByHandle(ctx, email) },
	} {
		_, err := find()
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}
	}

	return nil
}

// Login accepts the username or the email and issues a fresh token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if isBlank(input.UsernameOrEmail, input.Password) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username or email and password are required")
	}

	user, err := srv.userRepo.FindByHandle(ctx, input.UsernameOrEmail)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(ctx, user)
}

// issueTokens generates a token pair and stores the hash of the refresh token.
func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
	}

	if err := srv.userRepo.SetRefreshTokenHash(ctx, user.ID, util.SHA256Hex(refreshToken)); err != nil {
		return nil, translate(err, "failed to store refresh token", userErrors)
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         usecase.NewUserView(user),
	}, nil
}

// Logout invalidates the stored refresh token.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.SetRefreshTokenHash(ctx, userID, ""); err != nil {
		return translate(err, "failed to clear refresh token", userErrors)
	}

	return nil
}

// RefreshTokens rotates both tokens when refreshToken matches the stored hash.
func (srv *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, domainerrors.ErrRefreshTokenMissing
	}

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for refresh")
	}

	presented := util.SHA256Hex(refreshToken)
	if user.RefreshTokenHash == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(user.RefreshTokenHash)) != 1 {
		srv.log(ctx).Warn("Refresh token does not match the stored one", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid.WithDetails("refresh token is expired or used")
	}

	return srv.issueTokens(ctx, user)
}

// Authenticate validates an access token and checks the user still exists.
func (srv *userService) Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error) {
	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidAccessToken, err.Error())
	}

	if _, err := srv.userRepo.FindByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, domainerrors.ErrInvalidAccessToken
		}

		return uuid.Nil, errors.Wrap(err, "failed to load authenticated user")
	}

	return claims.UserID, nil
}

func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if isBlank(input.OldPassword, input.NewPassword) {
		return domainerrors.ErrValidationFailed.WithDetails("oldPassword and newPassword are required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return translate(err, "failed to find user", userErrors)
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCurrentPassword
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return translate(err, "failed to update password", userErrors)
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

func (srv *userService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find current user", userErrors)
	}

	return usecase.NewUserView(user), nil
}

func (srv *userService) UpdateAccountDetails(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*usecase.UserView, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := entity.NormalizeHandle(input.Email)
	if fullName == "" && email == "" {
		return nil, domainerrors.ErrNothingToUpdate
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find user", userErrors)
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if email != "" {
		user.Email = email
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translate(err, "failed to update account details", userErrors)
	}

	return usecase.NewUserView(user), nil
}

func (srv *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar *usecase.FileInput) (*usecase.UserView, error) {
	if avatar == nil {
		return nil, domainerrors.ErrMissingFile.WithDetails("avatar is required")
	}

	return srv.replaceImage(ctx, userID, avatar, func(user *entity.User) *string { return &user.Avatar })
}

func (srv *userService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, cover *usecase.FileInput) (*usecase.UserView, error) {
	if cover == nil {
		return nil, domainerrors.ErrMissingFile.WithDetails("coverImage is required")
	}

	return srv.replaceImage(ctx, userID, cover, func(user *entity.User) *string { return &user.CoverImage })
}

// replaceImage uploads file into the field picked by slot. The previous asset is deleted after the update.
func (srv *userService) replaceImage(
	ctx context.Context,
	userID uuid.UUID,
	file *usecase.FileInput,
	slot func(*entity.User) *string,
) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find user", userErrors)
	}

	uploaded, err := uploadMedia(ctx, srv.media, service.MediaKindImage, file)
	if err != nil {
		return nil, err
	}

	field := slot(user)
	previous := *field
	*field = uploaded.URL

	if err := srv.userRepo.Update(ctx, user); err != nil {
		discardMedia(ctx, srv.media, srv.log(ctx), uploaded.URL)

		return nil, translate(err, "failed to update user image", userErrors)
	}

	discardMedia(ctx, srv.media, srv.log(ctx), previous)

	return usecase.NewUserView(user), nil
}

// GetChannelProfile builds the channel page with subscriber counts.
func (srv *userService) GetChannelProfile(ctx context.Context, viewer *uuid.UUID, username string) (*usecase.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username is required")
	}

	channel, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, translate(err, "failed to find channel", map[error]error{
			repository.ErrUserNotFound: domainerrors.ErrChannelNotFound,
		})
	}

	subscribers, err := srv.subscriptionRepo.CountByChannels(ctx, []uuid.UUID{channel.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	subscribedTo, err := srv.subscriptionRepo.CountBySubscribers(ctx, []uuid.UUID{channel.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribed channels")
	}

	isSubscribed := false
	if viewer != nil {
		_, err := srv.subscriptionRepo.Find(ctx, *viewer, channel.ID)
		switch {
		case err == nil:
			isSubscribed = true
		case !errors.Is(err, repository.ErrSubscriptionNotFound):
			return nil, errors.Wrap(err, "failed to check subscription")
		}
	}

	return &usecase.ChannelProfile{
		ID:                channel.ID,
		Username:          channel.Username,
		FullName:          channel.FullName,
		Email:             channel.Email,
		Avatar:            channel.Avatar,
		CoverImage:        channel.CoverImage,
		SubscriberCount:   subscribers[channel.ID],
		SubscribedToCount: subscribedTo[channel.ID],
		IsSubscribed:      isSubscribed,
	}, nil
}

var watchHistorySorts = videoSortSpec("watchedAt", map[string]func(a, b *videoRow) int{
	"watchedAt": compareAt,
})

// GetWatchHistory lists the videos the user opened, most recently watched first.
func (srv *userService) GetWatchHistory(ctx context.Context, userID uuid.UUID, opts usecase.ListOptions) (*pagination.Page[usecase.WatchHistoryView], error) {
	sort, err := watchHistorySorts.Resolve(opts.SortBy, opts.SortType)
	if err != nil {
		return nil, err
	}

	pipeline := aggregate.Pipeline[videoRow, usecase.WatchHistoryView]{
		Filter: func(ctx context.Context) ([]*videoRow, error) {
			entries, err := srv.watchHistoryRepo.ListByUser(ctx, userID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to list watch history")
			}

			return srv.joinWatchedVideos(ctx, entries)
		},
		Stages: append(
			[]aggregate.Stage[videoRow]{aggregate.Where(func(row *videoRow) bool { return row.video.VisibleTo(&userID) })},
			videoJoins(srv.userRepo, srv.likeRepo)...,
		),
		Sort: sort,
		Shape: func(row *videoRow) usecase.WatchHistoryView {
			return usecase.WatchHistoryView{VideoView: shapeVideo(row), WatchedAt: row.at}
		},
	}

	views, err := pipeline.Run(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(views, opts, "videos"), nil
}

func (srv *userService) joinWatchedVideos(ctx context.Context, entries []*entity.WatchHistoryEntry) ([]*videoRow, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.VideoID)
	}

	videos, err := srv.videoRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watched videos")
	}

	byID := make(map[uuid.UUID]*entity.Video, len(videos))
	for _, video := range videos {
		byID[video.ID] = video
	}

	rows := make([]*videoRow, 0, len(entries))
	for _, entry := range entries {
		if video, ok := byID[entry.VideoID]; ok {
			rows = append(rows, &videoRow{video: video, at: entry.WatchedAt})
		}
	}

	return rows, nil
}

func isBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}

	return false
}
