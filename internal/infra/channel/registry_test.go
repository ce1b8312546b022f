package channel

import (
	"context"
	"testing"

	"garage/config"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryConfig(providers *config.ProvidersConfig) *config.Config {
	cfg := &config.Config{}
	cfg.Providers = providers

	return cfg
}

func TestSenderRegistry_ResolvesConfiguredChannels(t *testing.T) {
	registry := NewSenderRegistry(RegistryParams{
		Ctx: context.Background(),
		Config: registryConfig(&config.ProvidersConfig{
			Email: &config.EmailProviderConfig{
				APIKey:      "sk-test",
				BaseURL:     "https://mail.example.com",
				FromAddress: "noreply@shop.example.com",
			},
			Twilio: &config.TwilioProviderConfig{
				AccountSID:   "AC123",
				AuthToken:    "secret",
				BaseURL:      "https://api.twilio.example.com",
				SMSFrom:      "+15550001111",
				WhatsAppFrom: "+15550001111",
			},
		}),
		Logger: discardLogger(),
	})

	for _, ch := range []entity.Channel{entity.ChannelEmail, entity.ChannelSMS, entity.ChannelWhatsApp} {
		sender, err := registry.SenderFor(ch)
		require.NoError(t, err, "channel %s", ch)
		assert.NotNil(t, sender)
	}
}

func TestSenderRegistry_UnconfiguredChannelFails(t *testing.T) {
	registry := NewSenderRegistry(RegistryParams{
		Ctx:    context.Background(),
		Config: registryConfig(nil),
		Logger: discardLogger(),
	})

	sender, err := registry.SenderFor(entity.ChannelSMS)

	require.Error(t, err)
	assert.Nil(t, sender)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConfigured)
}
