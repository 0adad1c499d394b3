package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateDeviceTag(t *testing.T) {
	service := NewQRCodeService(256, "M")
	deviceID := uuid.New()

	qrBytes, err := service.GenerateDeviceTag(deviceID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseDeviceTag(t *testing.T) {
	service := NewQRCodeService(256, "M")
	deviceID := uuid.New()

	data := TagData{
		DeviceID: deviceID.String(),
		Type:     "device-tag",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := service.ParseDeviceTag(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, deviceID, parsed)
}

func TestQRCodeService_ParseDeviceTag_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := TagData{
		DeviceID: uuid.New().String(),
		Type:     "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseDeviceTag(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseDeviceTag_Malformed(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseDeviceTag("not-json-at-all")
	assert.Error(t, err)

	_, err = service.ParseDeviceTag(`{"device_id":"not-a-uuid","type":"device-tag"}`)
	assert.Error(t, err)
}
