package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todod"
	"todod/auth"
	"todod/client"
	todohttp "todod/http"
	"todod/store/memory"
)

// newTestServer runs the real handler over an in-memory store, so client
// tests double as an end-to-end pass over the API.
func newTestServer(t *testing.T, secret string) *httptest.Server {
	t.Helper()

	service, err := todod.NewService(memory.New())
	require.NoError(t, err)

	var verifier auth.Verifier
	if secret != "" {
		verifier = auth.NewStaticTokenVerifier("X-Auth-Token", secret, "test-client")
	}

	handler := todohttp.NewHandler(&todohttp.HandlerConfig{Verifier: verifier}, service)
	server := httptest.NewServer(handler.Router())
	t.Cleanup(server.Close)
	return server
}

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, "sekrit")
	c := client.New(server.URL, "sekrit")

	created, err := c.Create(ctx, "buy milk")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)

	items, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])

	updated, err := c.SetCompleted(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Title)

	result, err := c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deleted", result.Message)
	assert.Equal(t, created.ID, result.ID)

	items, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_Unauthorized(t *testing.T) {
	server := newTestServer(t, "sekrit")
	c := client.New(server.URL, "wrong")

	_, err := c.List(context.Background())
	assert.ErrorIs(t, err, todod.ErrUnauthorized)
}

func TestClient_NotFound(t *testing.T) {
	server := newTestServer(t, "")
	c := client.New(server.URL, "")

	_, err := c.SetCompleted(context.Background(), "does-not-exist", true)
	assert.ErrorIs(t, err, todod.ErrNotFound)
}

func TestClient_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, "")
	c := client.New(server.URL, "")

	for range 2 {
		result, err := c.Delete(ctx, "never-existed")
		require.NoError(t, err)
		assert.Equal(t, "Deleted", result.Message)
	}
}

func TestClient_CustomCredentialHeader(t *testing.T) {
	service, err := todod.NewService(memory.New())
	require.NoError(t, err)

	verifier := auth.NewStaticTokenVerifier("X-Api-Key", "sekrit", "test-client")
	handler := todohttp.NewHandler(&todohttp.HandlerConfig{
		Verifier: verifier,
		CORS:     todohttp.CORSConfig{CredentialHeader: "X-Api-Key"},
	}, service)
	server := httptest.NewServer(handler.Router())
	t.Cleanup(server.Close)

	c := client.New(server.URL, "sekrit", client.WithCredentialHeader("X-Api-Key"))
	_, err = c.List(context.Background())
	assert.NoError(t, err)
}
