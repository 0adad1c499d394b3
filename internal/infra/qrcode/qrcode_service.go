package qrcode

import (
	"encoding/json"
	"fmt"

	"fixtrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TagData is the payload encoded into the QR code on a device's intake tag.
type TagData struct {
	DeviceID string `json:"device_id"`
	Type     string `json:"type"`
}

const tagType = "device-tag"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Printed tags live on workbenches and get scratched, so default to
	// medium recovery unless configured otherwise.
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDeviceTag generates the QR code PNG printed on a device's intake tag.
func (s *qrcodeService) GenerateDeviceTag(deviceID uuid.UUID) ([]byte, error) {
	data := TagData{
		DeviceID: deviceID.String(),
		Type:     tagType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tag data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseDeviceTag parses scanned QR data and returns the device ID.
func (s *qrcodeService) ParseDeviceTag(qrData string) (uuid.UUID, error) {
	var data TagData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal tag data: %w", err)
	}

	if data.Type != tagType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	deviceID, err := uuid.Parse(data.DeviceID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse device ID: %w", err)
	}

	return deviceID, nil
}
