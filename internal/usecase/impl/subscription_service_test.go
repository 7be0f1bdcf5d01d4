package impl

import (
	"context"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceMocks struct {
	subscriptions *mockRepo.MockSubscriptionRepository
	users         *mockRepo.MockUserRepository
	qr            *mockService.MockQRCodeService
}

func newSubscriptionServiceForTest(t *testing.T) (*subscriptionService, *subscriptionServiceMocks) {
	m := &subscriptionServiceMocks{
		subscriptions: mockRepo.NewMockSubscriptionRepository(t),
		users:         mockRepo.NewMockUserRepository(t),
		qr:            mockService.NewMockQRCodeService(t),
	}

	srv := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: m.subscriptions,
		UserRepo:         m.users,
		QRCodeService:    m.qr,
		Logger:           newDiscardLogger(),
	}).(*subscriptionService)

	return srv, m
}

func TestSubscriptionService_Toggle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(m *subscriptionServiceMocks, actor, channel uuid.UUID)
		want  entity.ReactionState
	}{
		{
			name: "subscribes",
			setup: func(m *subscriptionServiceMocks, actor, channel uuid.UUID) {
				m.subscriptions.EXPECT().Find(mock.Anything, actor, channel).Return(nil, repository.ErrSubscriptionNotFound)
				m.subscriptions.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Subscription")).Return(nil)
			},
			want: entity.ReactionPresent,
		},
		{
			name: "unsubscribes",
			setup: func(m *subscriptionServiceMocks, actor, channel uuid.UUID) {
				existing := &entity.Subscription{ID: uuid.New(), SubscriberID: actor, ChannelID: channel}
				m.subscriptions.EXPECT().Find(mock.Anything, actor, channel).Return(existing, nil)
				m.subscriptions.EXPECT().Delete(mock.Anything, existing.ID).Return(nil)
			},
			want: entity.ReactionAbsent,
		},
		{
			name: "lost insert race",
			setup: func(m *subscriptionServiceMocks, actor, channel uuid.UUID) {
				m.subscriptions.EXPECT().Find(mock.Anything, actor, channel).Return(nil, repository.ErrSubscriptionNotFound)
				m.subscriptions.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateSubscription)
			},
			want: entity.ReactionPresent,
		},
		{
			name: "lost delete race",
			setup: func(m *subscriptionServiceMocks, actor, channel uuid.UUID) {
				existing := &entity.Subscription{ID: uuid.New(), SubscriberID: actor, ChannelID: channel}
				m.subscriptions.EXPECT().Find(mock.Anything, actor, channel).Return(existing, nil)
				m.subscriptions.EXPECT().Delete(mock.Anything, existing.ID).Return(repository.ErrSubscriptionNotFound)
			},
			want: entity.ReactionAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newSubscriptionServiceForTest(t)
			actor := uuid.New()
			channel := newTestUser("channel")
			m.users.EXPECT().FindByID(mock.Anything, channel.ID).Return(channel, nil)
			tt.setup(m, actor, channel.ID)

			got, err := srv.Toggle(context.Background(), actor, channel.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscriptionService_Toggle_Rejects(t *testing.T) {
	t.Parallel()

	t.Run("self subscription", func(t *testing.T) {
		t.Parallel()

		srv, m := newSubscriptionServiceForTest(t)
		actor := uuid.New()

		_, err := srv.Toggle(context.Background(), actor, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrSelfSubscription)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.HTTPCode())
		m.subscriptions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown channel", func(t *testing.T) {
		t.Parallel()

		srv, m := newSubscriptionServiceForTest(t)
		channel := uuid.New()
		m.users.EXPECT().FindByID(mock.Anything, channel).Return(nil, repository.ErrUserNotFound)

		_, err := srv.Toggle(context.Background(), uuid.New(), channel)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
	})
}

func TestSubscriptionService_ListSubscribers(t *testing.T) {
	t.Parallel()

	t.Run("other users are forbidden", func(t *testing.T) {
		t.Parallel()

		srv, m := newSubscriptionServiceForTest(t)

		_, err := srv.ListSubscribers(context.Background(), uuid.New(), uuid.New(), firstPage())
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrSubscribersForbidden)
		m.subscriptions.AssertNotCalled(t, "ListByChannel", mock.Anything, mock.Anything)
	})

	t.Run("channel sees its subscribers", func(t *testing.T) {
		t.Parallel()

		srv, m := newSubscriptionServiceForTest(t)
		ctx := context.Background()
		channel := uuid.New()
		fan := newTestUser("fan")
		now := time.Now()

		m.subscriptions.EXPECT().ListByChannel(ctx, channel).Return([]*entity.Subscription{
			{ID: uuid.New(), SubscriberID: fan.ID, ChannelID: channel, CreatedAt: now},
			{ID: uuid.New(), SubscriberID: uuid.New(), ChannelID: channel, CreatedAt: now.Add(time.Minute)},
		}, nil)
		expectProfiles(m.users, fan)

		page, err := srv.ListSubscribers(ctx, channel, channel, firstPage())
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "fan", page.Items[0].Subscriber.Username)
		assert.Equal(t, "subscribers", page.ItemsKey)
	})
}

func TestSubscriptionService_ListSubscribedChannels(t *testing.T) {
	t.Parallel()

	srv, m := newSubscriptionServiceForTest(t)
	ctx := context.Background()
	actor := uuid.New()
	first := newTestUser("first")
	second := newTestUser("second")
	now := time.Now()

	m.subscriptions.EXPECT().ListBySubscriber(ctx, actor).Return([]*entity.Subscription{
		{ID: uuid.New(), SubscriberID: actor, ChannelID: first.ID, CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), SubscriberID: actor, ChannelID: second.ID, CreatedAt: now},
	}, nil)
	expectProfiles(m.users, first, second)

	page, err := srv.ListSubscribedChannels(ctx, actor, firstPage())
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "second", page.Items[0].Channel.Username)
	assert.Equal(t, "first", page.Items[1].Channel.Username)
	assert.Equal(t, "channels", page.ItemsKey)
}

func TestSubscriptionService_ListSubscribedChannels_SortKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sortBy  string
		want    []string
		wantErr error
	}{
		{name: "subscribedAt ascending", sortBy: "subscribedAt", want: []string{"first", "second"}},
		{name: "createdAt alias", sortBy: "createdAt", want: []string{"first", "second"}},
		{name: "unknown key", sortBy: "views", wantErr: domainerrors.ErrInvalidSort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, m := newSubscriptionServiceForTest(t)
			ctx := context.Background()
			actor := uuid.New()
			first := newTestUser("first")
			second := newTestUser("second")
			now := time.Now()

			if tt.wantErr == nil {
				m.subscriptions.EXPECT().ListBySubscriber(ctx, actor).Return([]*entity.Subscription{
					{ID: uuid.New(), SubscriberID: actor, ChannelID: second.ID, CreatedAt: now},
					{ID: uuid.New(), SubscriberID: actor, ChannelID: first.ID, CreatedAt: now.Add(-time.Hour)},
				}, nil)
				expectProfiles(m.users, first, second)
			}

			opts := firstPage()
			opts.SortBy = tt.sortBy
			opts.SortType = "asc"

			page, err := srv.ListSubscribedChannels(ctx, actor, opts)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.Len(t, page.Items, len(tt.want))
			for i, username := range tt.want {
				assert.Equal(t, username, page.Items[i].Channel.Username)
			}
		})
	}
}

func TestSubscriptionService_CountSubscribers(t *testing.T) {
	t.Parallel()

	srv, m := newSubscriptionServiceForTest(t)
	channel := newTestUser("channel")
	m.users.EXPECT().FindByID(mock.Anything, channel.ID).Return(channel, nil)
	m.subscriptions.EXPECT().CountByChannels(mock.Anything, []uuid.UUID{channel.ID}).Return(map[uuid.UUID]int64{channel.ID: 3}, nil)

	n, err := srv.CountSubscribers(context.Background(), channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSubscriptionService_SubscribeByQR(t *testing.T) {
	t.Parallel()

	t.Run("existing subscription is kept", func(t *testing.T) {
		t.Parallel()

		srv, m := newSubscriptionServiceForTest(t)
		actor := uuid.New()
		channel := newTestUser("channel")

		m.qr.EXPECT().ParseSubscriptionQR("vidtube://subscribe/x").Return(channel.ID, nil)
		m.users.EXPECT().FindByID(mock.Anything, channel.ID).Return(channel, nil)
		m.subscriptions.EXPECT().Find(mock.Anything, actor, channel.ID).Return(&entity.Subscription{ID: uuid.New()}, nil)

		got, err := srv.SubscribeByQR(context.Background(), actor, "vidtube://subscribe/x")
		require.NoError(t, err)
		assert.Equal(t, entity.ReactionPresent, got)
		m.subscriptions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.subscriptions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("new subscription", func(t *testing.T) {
		t.Parallel()

		srv, m := newSubscriptionServiceForTest(t)
		actor := uuid.New()
		channel := newTestUser("channel")

		m.qr.EXPECT().ParseSubscriptionQR("payload").Return(channel.ID, nil)
		m.users.EXPECT().FindByID(mock.Anything, channel.ID).Return(channel, nil)
		m.subscriptions.EXPECT().Find(mock.Anything, actor, channel.ID).Return(nil, repository.ErrSubscriptionNotFound)
		m.subscriptions.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(s *entity.Subscription) bool {
				return s.SubscriberID == actor && s.ChannelID == channel.ID
			})).
			Return(nil)

		got, err := srv.SubscribeByQR(context.Background(), actor, "payload")
		require.NoError(t, err)
		assert.Equal(t, entity.ReactionPresent, got)
	})

	t.Run("unreadable payload", func(t *testing.T) {
		t.Parallel()

		srv, m := newSubscriptionServiceForTest(t)
		m.qr.EXPECT().ParseSubscriptionQR("junk").Return(uuid.Nil, assert.AnError)

		_, err := srv.SubscribeByQR(context.Background(), uuid.New(), "junk")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
	})
}

func TestSubscriptionService_GenerateSubscriptionQR(t *testing.T) {
	t.Parallel()

	srv, m := newSubscriptionServiceForTest(t)
	channel := newTestUser("channel")
	png := []byte{0x89, 'P', 'N', 'G'}

	m.users.EXPECT().FindByID(mock.Anything, channel.ID).Return(channel, nil)
	m.qr.EXPECT().GenerateSubscriptionQR(channel.ID).Return(png, nil)

	got, err := srv.GenerateSubscriptionQR(context.Background(), channel.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
