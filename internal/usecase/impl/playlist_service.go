package impl

import (
	"cmp"
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"
	"vidtube/internal/pagination"
	"vidtube/internal/usecase"
	"vidtube/internal/usecase/aggregate"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
	likeRepo     repository.LikeRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for PlaylistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	UserRepo     repository.UserRepository
	LikeRepo     repository.LikeRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		userRepo:     params.UserRepo,
		likeRepo:     params.LikeRepo,
		logger:       params.Logger,
	}
}

func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

var playlistErrors = map[error]error{
	repository.ErrPlaylistNotFound:       domainerrors.ErrPlaylistNotFound,
	repository.ErrDuplicatePlaylistVideo: domainerrors.ErrVideoAlreadyInPlaylist,
	repository.ErrPlaylistVideoNotFound:  domainerrors.ErrVideoNotInPlaylist,
	repository.ErrVideoNotFound:          domainerrors.ErrVideoNotFound,
	repository.ErrUserNotFound:           domainerrors.ErrUserNotFound,
}

type playlistRow struct {
	playlist *entity.Playlist
	videos   []usecase.VideoView
}

var playlistSorts = aggregate.SortSpec[playlistRow]{
	DefaultKey:       "createdAt",
	DefaultDirection: aggregate.Desc,
	Keys: map[string]func(a, b *playlistRow) int{
		"createdAt":  func(a, b *playlistRow) int { return a.playlist.CreatedAt.Compare(b.playlist.CreatedAt) },
		"updatedAt":  func(a, b *playlistRow) int { return a.playlist.UpdatedAt.Compare(b.playlist.UpdatedAt) },
		"name":       func(a, b *playlistRow) int { return strings.Compare(strings.ToLower(a.playlist.Name), strings.ToLower(b.playlist.Name)) },
		"videoCount": func(a, b *playlistRow) int { return cmp.Compare(len(a.videos), len(b.videos)) },
	},
}

// attachVideos loads the videos of every playlist in one batch and keeps playlist order.
// Drafts are only listed for the viewer who owns them.
func (srv *playlistService) attachVideos(viewer uuid.UUID) aggregate.Stage[playlistRow] {
	return func(ctx context.Context, rows []*playlistRow) ([]*playlistRow, error) {
		var ids []uuid.UUID
		for _, row := range rows {
			ids = append(ids, row.playlist.VideoIDs...)
		}

		views, err := aggregate.Pipeline[videoRow, usecase.VideoView]{
			Filter: func(ctx context.Context) ([]*videoRow, error) {
				if len(ids) == 0 {
					return nil, nil
				}

				videos, err := srv.videoRepo.FindByIDs(ctx, ids)
				if err != nil {
					return nil, errors.Wrap(err, "failed to load playlist videos")
				}

				return videoRows(videos), nil
			},
			Stages: append(
				[]aggregate.Stage[videoRow]{aggregate.Where(func(row *videoRow) bool { return row.video.VisibleTo(&viewer) })},
				videoJoins(srv.userRepo, srv.likeRepo)...,
			),
			Shape: shapeVideo,
		}.Run(ctx)
		if err != nil {
			return nil, err
		}

		byID := make(map[uuid.UUID]usecase.VideoView, len(views))
		for _, view := range views {
			byID[view.ID] = view
		}

		for _, row := range rows {
			row.videos = make([]usecase.VideoView, 0, len(row.playlist.VideoIDs))
			for _, id := range row.playlist.VideoIDs {
				if view, ok := byID[id]; ok {
					row.videos = append(row.videos, view)
				}
			}
		}

		return rows, nil
	}
}

func (srv *playlistService) playlistPipeline(
	viewer uuid.UUID,
	playlists []*entity.Playlist,
	sort *aggregate.Sort[playlistRow],
) aggregate.Pipeline[playlistRow, usecase.PlaylistView] {
	return aggregate.Pipeline[playlistRow, usecase.PlaylistView]{
		Filter: func(context.Context) ([]*playlistRow, error) {
			rows := make([]*playlistRow, 0, len(playlists))
			for _, playlist := range playlists {
				rows = append(rows, &playlistRow{playlist: playlist})
			}

			return rows, nil
		},
		Stages: []aggregate.Stage[playlistRow]{srv.attachVideos(viewer)},
		Sort:   sort,
		Shape:  shapePlaylist,
	}
}

func shapePlaylist(row *playlistRow) usecase.PlaylistView {
	videos := row.videos
	if videos == nil {
		videos = []usecase.VideoView{}
	}

	return usecase.PlaylistView{
		ID:          row.playlist.ID,
		OwnerID:     row.playlist.OwnerID,
		Name:        row.playlist.Name,
		Description: row.playlist.Description,
		VideoCount:  len(videos),
		Videos:      videos,
		CreatedAt:   row.playlist.CreatedAt,
		UpdatedAt:   row.playlist.UpdatedAt,
	}
}

func (srv *playlistService) CreatePlaylist(ctx context.Context, actor uuid.UUID, input *usecase.PlaylistInput) (*usecase.PlaylistView, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	if name == "" || description == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and description are required")
	}

	playlist := &entity.Playlist{OwnerID: actor, Name: name, Description: description}
	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, translate(err, "failed to create playlist", playlistErrors)
	}

	view := shapePlaylist(&playlistRow{playlist: playlist})

	return &view, nil
}

func (srv *playlistService) GetPlaylist(ctx context.Context, actor, playlistID uuid.UUID) (*usecase.PlaylistView, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		return nil, translate(err, "failed to find playlist", playlistErrors)
	}

	return srv.loadView(ctx, actor, playlist)
}

func (srv *playlistService) UpdatePlaylist(ctx context.Context, actor, playlistID uuid.UUID, input *usecase.PlaylistInput) (*usecase.PlaylistView, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	if name == "" && description == "" {
		return nil, domainerrors.ErrNothingToUpdate
	}

	playlist, err := srv.ownedPlaylist(ctx, actor, playlistID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}

	if err := srv.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, translate(err, "failed to update playlist", playlistErrors)
	}

	return srv.loadView(ctx, actor, playlist)
}

func (srv *playlistService) DeletePlaylist(ctx context.Context, actor, playlistID uuid.UUID) error {
	if _, err := srv.ownedPlaylist(ctx, actor, playlistID); err != nil {
		return err
	}

	if err := srv.playlistRepo.Delete(ctx, playlistID); err != nil {
		return translate(err, "failed to delete playlist", playlistErrors)
	}

	return nil
}

// AddVideo appends the video. A video already present is a conflict.
func (srv *playlistService) AddVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*usecase.PlaylistView, error) {
	playlist, err := srv.ownedPlaylist(ctx, actor, playlistID)
	if err != nil {
		return nil, err
	}

	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, "failed to find video", playlistErrors)
	}
	if !video.VisibleTo(&actor) {
		return nil, domainerrors.ErrVideoNotFound
	}

	if playlist.Contains(videoID) {
		return nil, domainerrors.ErrVideoAlreadyInPlaylist
	}

	if err := srv.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, translate(err, "failed to add video to playlist", playlistErrors)
	}

	return srv.reload(ctx, actor, playlistID)
}

// RemoveVideo drops the video. A video not in the playlist is a validation error.
func (srv *playlistService) RemoveVideo(ctx context.Context, actor, playlistID, videoID uuid.UUID) (*usecase.PlaylistView, error) {
	playlist, err := srv.ownedPlaylist(ctx, actor, playlistID)
	if err != nil {
		return nil, err
	}

	if !playlist.Contains(videoID) {
		return nil, domainerrors.ErrVideoNotInPlaylist
	}

	if err := srv.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, translate(err, "failed to remove video from playlist", playlistErrors)
	}

	return srv.reload(ctx, actor, playlistID)
}

func (srv *playlistService) ListUserPlaylists(ctx context.Context, actor, userID uuid.UUID, opts usecase.ListOptions) (*pagination.Page[usecase.PlaylistView], error) {
	sort, err := playlistSorts.Resolve(opts.SortBy, opts.SortType)
	if err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, translate(err, "failed to find user", playlistErrors)
	}

	playlists, err := srv.playlistRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	views, err := srv.playlistPipeline(actor, playlists, sort).Run(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(views, opts, "playlists"), nil
}

func (srv *playlistService) ownedPlaylist(ctx context.Context, actor, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		return nil, translate(err, "failed to find playlist", playlistErrors)
	}
	if !playlist.IsOwnedBy(actor) {
		srv.log(ctx).Warn("Playlist ownership violation", slog.Any("playlistID", playlistID), slog.Any("actor", actor))

		return nil, domainerrors.ErrPlaylistOwnershipViolation
	}

	return playlist, nil
}

func (srv *playlistService) reload(ctx context.Context, actor, playlistID uuid.UUID) (*usecase.PlaylistView, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		return nil, translate(err, "failed to reload playlist", playlistErrors)
	}

	return srv.loadView(ctx, actor, playlist)
}

func (srv *playlistService) loadView(ctx context.Context, viewer uuid.UUID, playlist *entity.Playlist) (*usecase.PlaylistView, error) {
	view, err := srv.playlistPipeline(viewer, []*entity.Playlist{playlist}, nil).RunOne(ctx)
	if err != nil {
		return nil, aggregate.NotFoundOr(err, domainerrors.ErrPlaylistNotFound)
	}

	return &view, nil
}
