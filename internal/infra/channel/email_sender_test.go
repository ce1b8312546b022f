package channel

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"garage/config"
	"garage/internal/domain/entity"
	"garage/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmailSender_Send(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := NewEmailSender(&config.EmailProviderConfig{
		APIKey:      "sk-test",
		BaseURL:     server.URL,
		FromAddress: "noreply@shop.example.com",
		FromName:    "The Shop",
	}, discardLogger())

	err := sender.Send(context.Background(), &service.OutboundMessage{
		Channel: entity.ChannelEmail,
		To:      "ana@example.com",
		Subject: "Pickup reminder",
		Body:    "Your vehicle is ready.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "Pickup reminder", gotPayload["subject"])

	from, ok := gotPayload["from"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "noreply@shop.example.com", from["email"])
}

func TestEmailSender_Send_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	sender := NewEmailSender(&config.EmailProviderConfig{
		APIKey:      "sk-bad",
		BaseURL:     server.URL,
		FromAddress: "noreply@shop.example.com",
	}, discardLogger())

	err := sender.Send(context.Background(), &service.OutboundMessage{
		Channel: entity.ChannelEmail,
		To:      "ana@example.com",
		Body:    "hello",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
