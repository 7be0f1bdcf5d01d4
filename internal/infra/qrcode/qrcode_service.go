package qrcode

import (
	"encoding/json"

	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	payloadTypeSubscription = "subscription"
)

// ErrInvalidPayload is returned when scanned data is not a channel subscription code.
var ErrInvalidPayload = errors.New("invalid subscription QR payload")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ChannelID string `json:"channel_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// EncodeSubscriptionPayload returns the JSON text embedded in a channel's QR code
func EncodeSubscriptionPayload(channelID uuid.UUID) (string, error) {
	jsonData, err := json.Marshal(QRCodeData{
		ChannelID: channelID.String(),
		Type:      payloadTypeSubscription,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// GenerateSubscriptionQR generates a PNG QR code for subscribing to a channel
func (s *qrcodeService) GenerateSubscriptionQR(channelID uuid.UUID) ([]byte, error) {
	payload, err := EncodeSubscriptionPayload(channelID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseSubscriptionQR parses scanned QR code text and returns the channel ID
func (s *qrcodeService) ParseSubscriptionQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrapf(ErrInvalidPayload, "failed to unmarshal QR code data: %v", err)
	}

	if data.Type != payloadTypeSubscription {
		return uuid.Nil, errors.Wrapf(ErrInvalidPayload, "invalid QR code type: %s", data.Type)
	}

	channelID, err := uuid.Parse(data.ChannelID)
	if err != nil {
		return uuid.Nil, errors.Wrapf(ErrInvalidPayload, "failed to parse channel ID: %v", err)
	}

	return channelID, nil
}
