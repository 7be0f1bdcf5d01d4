package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	localSubscription = "projects/local/subscriptions/video-events-sub"
	localPushAttempts = 3
)

// PubSubPushMessage is the body Google Pub/Sub POSTs to push subscribers.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher delivers events straight to a push endpoint, for development
// without a Pub/Sub emulator. 5xx answers and transport errors are retried.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	retry    func() backoff.BackOff
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		retry: func() backoff.BackOff {
			policy := backoff.NewExponentialBackOff()
			policy.InitialInterval = 100 * time.Millisecond

			return backoff.WithMaxRetries(policy, localPushAttempts-1)
		},
	}
}

func (p *localHTTPPublisher) PublishVideoEvent(ctx context.Context, event *service.VideoEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var msg PubSubPushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	push := func() error {
		return p.push(ctx, body, event.RequestID)
	}
	if err := backoff.Retry(push, backoff.WithContext(p.retry(), ctx)); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "Video event pushed",
		slog.String("event_type", string(event.Type)),
		slog.String("video_id", event.VideoID),
		slog.String("message_id", msg.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return backoff.Permanent(errors.Errorf("push endpoint returned status %d", resp.StatusCode))
	}

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
