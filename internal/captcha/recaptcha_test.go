package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	v := NewVerifier("test-secret")
	v.verifyURL = srv.URL
	return v
}

func TestVerify_HighScorePasses(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-secret", r.Form.Get("secret"))
		assert.Equal(t, "client-token", r.Form.Get("response"))
		w.Write([]byte(`{"success":true,"score":0.9}`))
	})

	score, passed, err := v.Verify(context.Background(), "client-token")

	require.NoError(t, err)
	assert.Equal(t, 0.9, score)
	assert.True(t, passed)
}

func TestVerify_LowScoreDoesNotPass(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"score":0.1}`))
	})

	score, passed, err := v.Verify(context.Background(), "client-token")

	require.NoError(t, err)
	assert.Equal(t, 0.1, score)
	assert.False(t, passed)
}

func TestVerify_BackendError(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, _, err := v.Verify(context.Background(), "client-token")

	require.Error(t, err)
}

func TestVerify_BackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := NewVerifier("test-secret")
	v.verifyURL = srv.URL

	_, _, err := v.Verify(context.Background(), "client-token")

	require.Error(t, err)
}
