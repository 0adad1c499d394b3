package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for device tag QR code generation and parsing.
// The code is printed on the physical intake tag attached to each device.
type QRCodeService interface {
	// GenerateDeviceTag generates a QR code PNG identifying one device.
	GenerateDeviceTag(deviceID uuid.UUID) ([]byte, error)

	// ParseDeviceTag parses scanned QR data and returns the device ID.
	ParseDeviceTag(qrData string) (uuid.UUID, error)
}
