package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"
	"vidtube/internal/pagination"
	"vidtube/internal/usecase"
	"vidtube/internal/usecase/aggregate"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	qrCodeService    service.QRCodeService
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		qrCodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

var subscriptionErrors = map[error]error{
	repository.ErrUserNotFound:          domainerrors.ErrChannelNotFound,
	domainerrors.ErrSelfSubscription:    domainerrors.ErrSelfSubscription,
	repository.ErrSubscriptionNotFound:  domainerrors.ErrNotFound,
	repository.ErrDuplicateSubscription: domainerrors.ErrConflict,
}

// Toggle subscribes or unsubscribes the actor. A lost insert race reports the subscription as present.
func (srv *subscriptionService) Toggle(ctx context.Context, actor, channelID uuid.UUID) (entity.ReactionState, error) {
	if err := srv.checkChannel(ctx, actor, channelID); err != nil {
		return "", err
	}

	existing, err := srv.subscriptionRepo.Find(ctx, actor, channelID)
	switch {
	case err == nil:
		if err := srv.subscriptionRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
			return "", errors.Wrap(err, "failed to unsubscribe")
		}
		srv.log(ctx).Info("Unsubscribed from channel", slog.Any("subscriberID", actor), slog.Any("channelID", channelID))

		return entity.ReactionAbsent, nil
	case !errors.Is(err, repository.ErrSubscriptionNotFound):
		return "", errors.Wrap(err, "failed to find subscription")
	}

	return srv.subscribe(ctx, actor, channelID)
}

func (srv *subscriptionService) subscribe(ctx context.Context, actor, channelID uuid.UUID) (entity.ReactionState, error) {
	subscription := &entity.Subscription{SubscriberID: actor, ChannelID: channelID}
	if err := srv.subscriptionRepo.Create(ctx, subscription); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscription) {
			return entity.ReactionPresent, nil
		}

		return "", translate(err, "failed to subscribe", subscriptionErrors)
	}

	srv.log(ctx).Info("Subscribed to channel", slog.Any("subscriberID", actor), slog.Any("channelID", channelID))

	return entity.ReactionPresent, nil
}

// checkChannel rejects self subscriptions and unknown channels.
func (srv *subscriptionService) checkChannel(ctx context.Context, actor, channelID uuid.UUID) error {
	if actor == channelID {
		return domainerrors.ErrSelfSubscription
	}

	return srv.channelExists(ctx, channelID)
}

func (srv *subscriptionService) channelExists(ctx context.Context, channelID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, channelID); err != nil {
		return translate(err, "failed to find channel", subscriptionErrors)
	}

	return nil
}

type subscriptionRow struct {
	subscription *entity.Subscription
	profile      entity.UserProfile
}

func bySubscribedAt(a, b *subscriptionRow) int {
	return a.subscription.CreatedAt.Compare(b.subscription.CreatedAt)
}

// createdAt is an alias of subscribedAt.
var subscriptionSorts = aggregate.SortSpec[subscriptionRow]{
	DefaultKey:       "subscribedAt",
	DefaultDirection: aggregate.Desc,
	Keys: map[string]func(a, b *subscriptionRow) int{
		"subscribedAt": bySubscribedAt,
		"createdAt":    bySubscribedAt,
	},
}

// subscriptionPipeline embeds the profile on the side picked by side. Rows whose user is gone are dropped.
func (srv *subscriptionService) subscriptionPipeline(
	subscriptions []*entity.Subscription,
	side func(*entity.Subscription) uuid.UUID,
	sort *aggregate.Sort[subscriptionRow],
) aggregate.Pipeline[subscriptionRow, subscriptionRow] {
	return aggregate.Pipeline[subscriptionRow, subscriptionRow]{
		Filter: func(context.Context) ([]*subscriptionRow, error) {
			rows := make([]*subscriptionRow, 0, len(subscriptions))
			for _, subscription := range subscriptions {
				rows = append(rows, &subscriptionRow{subscription: subscription})
			}

			return rows, nil
		},
		Stages: []aggregate.Stage[subscriptionRow]{
			aggregate.EmbedRequired(
				func(row *subscriptionRow) uuid.UUID { return side(row.subscription) },
				profileLookup(srv.userRepo),
				func(row *subscriptionRow, profile entity.UserProfile) { row.profile = profile },
			),
		},
		Sort:  sort,
		Shape: func(row *subscriptionRow) subscriptionRow { return *row },
	}
}

func (srv *subscriptionService) ListSubscribedChannels(ctx context.Context, actor uuid.UUID, opts usecase.ListOptions) (*pagination.Page[usecase.SubscribedChannelView], error) {
	sort, err := subscriptionSorts.Resolve(opts.SortBy, opts.SortType)
	if err != nil {
		return nil, err
	}

	subscriptions, err := srv.subscriptionRepo.ListBySubscriber(ctx, actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	rows, err := srv.subscriptionPipeline(subscriptions, func(s *entity.Subscription) uuid.UUID { return s.ChannelID }, sort).Run(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.SubscribedChannelView, 0, len(rows))
	for _, row := range rows {
		views = append(views, usecase.SubscribedChannelView{
			ID:           row.subscription.ID,
			Channel:      row.profile,
			SubscribedAt: row.subscription.CreatedAt,
		})
	}

	return paginate(views, opts, "channels"), nil
}

func (srv *subscriptionService) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	if err := srv.channelExists(ctx, channelID); err != nil {
		return 0, err
	}

	counts, err := srv.subscriptionRepo.CountByChannels(ctx, []uuid.UUID{channelID})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count subscribers")
	}

	return counts[channelID], nil
}

// ListSubscribers is restricted to the channel itself.
func (srv *subscriptionService) ListSubscribers(ctx context.Context, actor, channelID uuid.UUID, opts usecase.ListOptions) (*pagination.Page[usecase.SubscriberView], error) {
	if actor != channelID {
		return nil, domainerrors.ErrSubscribersForbidden
	}

	sort, err := subscriptionSorts.Resolve(opts.SortBy, opts.SortType)
	if err != nil {
		return nil, err
	}

	subscriptions, err := srv.subscriptionRepo.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	rows, err := srv.subscriptionPipeline(subscriptions, func(s *entity.Subscription) uuid.UUID { return s.SubscriberID }, sort).Run(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.SubscriberView, 0, len(rows))
	for _, row := range rows {
		views = append(views, usecase.SubscriberView{
			ID:           row.subscription.ID,
			Subscriber:   row.profile,
			SubscribedAt: row.subscription.CreatedAt,
		})
	}

	return paginate(views, opts, "subscribers"), nil
}

// GenerateSubscriptionQR generates a QR code for subscribing to a channel
func (srv *subscriptionService) GenerateSubscriptionQR(ctx context.Context, channelID uuid.UUID) ([]byte, error) {
	if err := srv.channelExists(ctx, channelID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateSubscriptionQR(channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// SubscribeByQR subscribes the actor to the scanned channel. An existing subscription is kept.
func (srv *subscriptionService) SubscribeByQR(ctx context.Context, actor uuid.UUID, qrData string) (entity.ReactionState, error) {
	channelID, err := srv.qrCodeService.ParseSubscriptionQR(qrData)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInvalidQRCode, err.Error())
	}

	if err := srv.checkChannel(ctx, actor, channelID); err != nil {
		return "", err
	}

	_, err = srv.subscriptionRepo.Find(ctx, actor, channelID)
	switch {
	case err == nil:
		return entity.ReactionPresent, nil
	case !errors.Is(err, repository.ErrSubscriptionNotFound):
		return "", errors.Wrap(err, "failed to find subscription")
	}

	return srv.subscribe(ctx, actor, channelID)
}
