package channel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"garage/config"
	"garage/internal/domain/entity"
	"garage/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twilioConfig(baseURL string) *config.TwilioProviderConfig {
	return &config.TwilioProviderConfig{
		AccountSID:   "AC123",
		AuthToken:    "secret",
		BaseURL:      baseURL,
		SMSFrom:      "+15550001111",
		WhatsAppFrom: "+15550001111",
	}
}

func TestTwilioSender_Send_SMS(t *testing.T) {
	var gotTo, gotFrom, gotUser string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotUser, _, _ = r.BasicAuth()
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender := NewTwilioSender(twilioConfig(server.URL), entity.ChannelSMS, discardLogger())

	err := sender.Send(context.Background(), &service.OutboundMessage{
		Channel: entity.ChannelSMS,
		To:      "+15550002222",
		Body:    "Your vehicle is ready.",
	})

	require.NoError(t, err)
	assert.Equal(t, "+15550002222", gotTo)
	assert.Equal(t, "+15550001111", gotFrom)
	assert.Equal(t, "AC123", gotUser)
}

func TestTwilioSender_Send_WhatsAppPrefixesAddresses(t *testing.T) {
	var gotTo, gotFrom string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender := NewTwilioSender(twilioConfig(server.URL), entity.ChannelWhatsApp, discardLogger())

	err := sender.Send(context.Background(), &service.OutboundMessage{
		Channel: entity.ChannelWhatsApp,
		To:      "+15550002222",
		Body:    "Your vehicle is ready.",
	})

	require.NoError(t, err)
	assert.Equal(t, "whatsapp:+15550002222", gotTo)
	assert.Equal(t, "whatsapp:+15550001111", gotFrom)
}

func TestTwilioSender_Send_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid number"}`))
	}))
	defer server.Close()

	sender := NewTwilioSender(twilioConfig(server.URL), entity.ChannelSMS, discardLogger())

	err := sender.Send(context.Background(), &service.OutboundMessage{
		Channel: entity.ChannelSMS,
		To:      "not-a-number",
		Body:    "hello",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
