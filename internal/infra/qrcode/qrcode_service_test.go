package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"garage/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePickupPass(t *testing.T) {
	cfg := &config.Config{
		App: &config.AppConfig{BaseURL: "https://shop.example.com/"},
		QRCode: &config.QRCodeConfig{
			Size:                 128,
			ErrorCorrectionLevel: "M",
		},
	}
	svc := NewQRCodeService(cfg)

	pngBytes, err := svc.GeneratePickupPass(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, pngBytes)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_DefaultsWhenUnconfigured(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	pngBytes, err := svc.GeneratePickupPass(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultQRSize, img.Bounds().Dx())
}
