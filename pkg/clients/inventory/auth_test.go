package inventory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot/internal/config"
	"github.com/stockpilot/stockpilot/internal/domain/models"
)

func TestLoginStoresTokenAndRole(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-xyz","role":"manager"}`))
	})

	sess := &fakeSession{}
	client := newTestClient(t, handler, sess)

	resp, err := client.Auth.Login(context.Background(), models.LoginRequest{Username: "amina", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "tok-xyz", resp.Token)
	assert.Equal(t, "tok-xyz", sess.Token())
	assert.Equal(t, "manager", sess.role)
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	})

	sess := &fakeSession{}
	client := newTestClient(t, handler, sess)

	_, err := client.Auth.Login(context.Background(), models.LoginRequest{Username: "amina", Password: "wrong"})
	require.Error(t, err)
	assert.Empty(t, sess.Token())
}

func TestLogoutNeverCallsServer(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	t.Cleanup(srv.Close)

	sess := &fakeSession{token: "tok", role: "admin"}
	client := New(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, sess, nil)

	require.NoError(t, client.Auth.Logout())

	assert.Empty(t, sess.Token())
	assert.Empty(t, sess.role)
	assert.Equal(t, int64(0), requests.Load())
}
