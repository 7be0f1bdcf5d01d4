package service

import "github.com/google/uuid"

// QRCodeService encodes a channel subscription link as a PNG QR code and reads the
// payload back.
type QRCodeService interface {
	GenerateSubscriptionQR(channelID uuid.UUID) ([]byte, error)
	ParseSubscriptionQR(qrData string) (uuid.UUID, error)
}
