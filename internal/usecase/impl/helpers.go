// Package impl contains the implementation of the application's business logic.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"strings"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/pagination"
	"vidtube/internal/usecase"
	"vidtube/internal/usecase/aggregate"

	"github.com/google/uuid"
)

// --- Lookups ---

// profileLookup loads the public profiles of ids in one query.
func profileLookup(users repository.UserRepository) func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.UserProfile, error) {
	return func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.UserProfile, error) {
		found, err := users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load user profiles")
		}

		profiles := make(map[uuid.UUID]entity.UserProfile, len(found))
		for _, user := range found {
			profiles[user.ID] = user.Profile()
		}

		return profiles, nil
	}
}

// likeCounter counts the likes of targets of one kind in one query.
func likeCounter(likes repository.LikeRepository, kind entity.TargetKind) func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	return func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
		counts, err := likes.CountByTargets(ctx, kind, ids)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count %s likes", kind)
		}

		return counts, nil
	}
}

// --- Video rows ---

// videoRow is the working row of every pipeline that yields videos.
type videoRow struct {
	video     *entity.Video
	owner     *entity.UserProfile
	likeCount int64
	at        time.Time // likedAt or watchedAt, when the view has one.
}

func videoRows(videos []*entity.Video) []*videoRow {
	rows := make([]*videoRow, 0, len(videos))
	for _, video := range videos {
		rows = append(rows, &videoRow{video: video})
	}

	return rows
}

// videoJoins embeds the owner profile and counts the likes of each video.
func videoJoins(users repository.UserRepository, likes repository.LikeRepository) []aggregate.Stage[videoRow] {
	return []aggregate.Stage[videoRow]{
		aggregate.Embed(
			func(row *videoRow) uuid.UUID { return row.video.OwnerID },
			profileLookup(users),
			func(row *videoRow, owner entity.UserProfile) { row.owner = &owner },
		),
		aggregate.Count(
			func(row *videoRow) uuid.UUID { return row.video.ID },
			likeCounter(likes, entity.TargetKindVideo),
			func(row *videoRow, n int64) { row.likeCount = n },
		),
	}
}

func shapeVideo(row *videoRow) usecase.VideoView {
	view := usecase.NewVideoView(row.video)
	view.Owner = row.owner
	view.LikeCount = row.likeCount

	return view
}

// videoSortSpec is the sort whitelist shared by video views. extra adds view specific keys.
func videoSortSpec(defaultKey string, extra map[string]func(a, b *videoRow) int) aggregate.SortSpec[videoRow] {
	keys := map[string]func(a, b *videoRow) int{
		"createdAt": func(a, b *videoRow) int { return a.video.CreatedAt.Compare(b.video.CreatedAt) },
		"views":     func(a, b *videoRow) int { return cmp.Compare(a.video.Views, b.video.Views) },
		"duration":  func(a, b *videoRow) int { return cmp.Compare(a.video.Duration, b.video.Duration) },
		"title":     func(a, b *videoRow) int { return strings.Compare(strings.ToLower(a.video.Title), strings.ToLower(b.video.Title)) },
		"likeCount": func(a, b *videoRow) int { return cmp.Compare(a.likeCount, b.likeCount) },
	}
	for key, compare := range extra {
		keys[key] = compare
	}

	return aggregate.SortSpec[videoRow]{
		DefaultKey:       defaultKey,
		DefaultDirection: aggregate.Desc,
		Keys:             keys,
	}
}

func compareAt(a, b *videoRow) int {
	return a.at.Compare(b.at)
}

// --- Pagination ---

func paginate[V any](views []V, opts usecase.ListOptions, itemsKey string) *pagination.Page[V] {
	return pagination.Paginate(views, opts.Page, opts.Limit, pagination.WithItemsKey(itemsKey))
}

// --- Media ---

// uploadMedia stores file and maps provider failures to MEDIA_UPLOAD_FAILED.
func uploadMedia(ctx context.Context, storage service.MediaStorage, kind service.MediaKind, file *usecase.FileInput) (*service.UploadedMedia, error) {
	uploaded, err := storage.Upload(ctx, service.UploadInput{
		Name:        file.Name,
		ContentType: file.ContentType,
		Kind:        kind,
		Reader:      file.Reader,
		Size:        file.Size,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	return uploaded, nil
}

// discardMedia deletes assets best-effort. Failures are logged and never retried.
func discardMedia(ctx context.Context, storage service.MediaStorage, logger *slog.Logger, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := storage.Delete(ctx, url); err != nil {
			logger.WarnContext(ctx, "Failed to delete media asset", slog.String("url", url), slog.Any("error", err))
		}
	}
}

// --- Errors ---

// translate maps repository sentinels to domain errors. Unmatched errors are wrapped with msg.
func translate(err error, msg string, mapping map[error]error) error {
	for sentinel, domainErr := range mapping {
		if errors.Is(err, sentinel) {
			return domainErr
		}
	}

	return errors.Wrap(err, msg)
}
