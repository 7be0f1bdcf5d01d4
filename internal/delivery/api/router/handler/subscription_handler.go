package handler

import (
	"net/http"

	"vidtube/config"
	"vidtube/internal/delivery/api/response"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Cfg            *config.Config
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	paging         *config.PaginationConfig
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		paging:         params.Cfg.Pagination,
	}
}

type subscribeByQRRequest struct {
	QRData string `json:"qrData" validate:"notblank,max=512"`
}

type subscriptionState struct {
	ChannelID    uuid.UUID `json:"channelId"`
	IsSubscribed bool      `json:"isSubscribed"`
}

type subscriberCount struct {
	ChannelID       uuid.UUID `json:"channelId"`
	SubscriberCount int64     `json:"subscriberCount"`
}

func (h *SubscriptionHandler) ToggleSubscription(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}

	state, err := h.subscriptionUC.Toggle(c.Request().Context(), actor, channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Unsubscribed successfully"
	if state.Present() {
		message = "Subscribed successfully"
	}

	return response.OK(c, subscriptionState{ChannelID: channelID, IsSubscribed: state.Present()}, message)
}

// ListSubscribedChannels returns the channels the actor follows.
func (h *SubscriptionHandler) ListSubscribedChannels(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	page, err := h.subscriptionUC.ListSubscribedChannels(c.Request().Context(), actor, listOptions(c, h.paging))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page, "Subscribed channels fetched successfully")
}

func (h *SubscriptionHandler) CountSubscribers(c echo.Context) error {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}

	count, err := h.subscriptionUC.CountSubscribers(c.Request().Context(), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, subscriberCount{ChannelID: channelID, SubscriberCount: count}, "Subscriber count fetched successfully")
}

// ListSubscribers is restricted to the channel itself.
func (h *SubscriptionHandler) ListSubscribers(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}

	page, err := h.subscriptionUC.ListSubscribers(c.Request().Context(), actor, channelID, listOptions(c, h.paging))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page, "Subscribers fetched successfully")
}

// GenerateSubscriptionQR returns the channel's subscribe QR code as a PNG.
func (h *SubscriptionHandler) GenerateSubscriptionQR(c echo.Context) error {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		return err
	}

	png, err := h.subscriptionUC.GenerateSubscriptionQR(c.Request().Context(), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename=subscription-qr.png")

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *SubscriptionHandler) SubscribeByQR(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req subscribeByQRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	state, err := h.subscriptionUC.SubscribeByQR(c.Request().Context(), actor, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]bool{"isSubscribed": state.Present()}, "Subscribed successfully")
}
