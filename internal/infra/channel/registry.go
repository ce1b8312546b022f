package channel

import (
	"context"
	"log/slog"

	"garage/config"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/service"

	"go.uber.org/fx"
)

// senderRegistry resolves the configured sender for a channel. Channels with
// absent credentials stay unregistered, so resolution for them fails with
// ErrProviderNotConfigured and the dispatcher records the item as failed.
type senderRegistry struct {
	senders map[entity.Channel]service.ChannelSender
}

// RegistryParams holds dependencies for the sender registry, injected by Fx.
type RegistryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSenderRegistry builds the registry from provider configuration. A
// provider that fails to initialize is logged and left out rather than
// failing startup; the remaining channels keep working.
func NewSenderRegistry(params RegistryParams) service.SenderRegistry {
	registry := &senderRegistry{
		senders: make(map[entity.Channel]service.ChannelSender),
	}

	providers := params.Config.Providers
	if providers != nil && providers.Email != nil && providers.Email.APIKey != "" {
		registry.senders[entity.ChannelEmail] = NewEmailSender(providers.Email, params.Logger)
	}
	if providers != nil && providers.Twilio != nil && providers.Twilio.AccountSID != "" {
		registry.senders[entity.ChannelSMS] = NewTwilioSender(providers.Twilio, entity.ChannelSMS, params.Logger)
		if providers.Twilio.WhatsAppFrom != "" {
			registry.senders[entity.ChannelWhatsApp] = NewTwilioSender(providers.Twilio, entity.ChannelWhatsApp, params.Logger)
		}
	}

	firebaseCfg := params.Config.Firebase
	if firebaseCfg != nil && firebaseCfg.CredentialsPath != "" {
		pushSender, err := NewPushSender(params.Ctx, firebaseCfg.CredentialsPath, params.Logger)
		if err != nil {
			params.Logger.Error("push channel unavailable",
				slog.String("error", err.Error()),
			)
		} else {
			registry.senders[entity.ChannelPush] = pushSender
		}
	}

	params.Logger.Info("channel senders registered",
		slog.Int("count", len(registry.senders)),
	)

	return registry
}

// SenderFor returns the sender registered for a channel.
func (r *senderRegistry) SenderFor(channel entity.Channel) (service.ChannelSender, error) {
	sender, ok := r.senders[channel]
	if !ok {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage("no provider configured for channel " + string(channel))
	}

	return sender, nil
}

// Module provides the channel FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSenderRegistry),
)
