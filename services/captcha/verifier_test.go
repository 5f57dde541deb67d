package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *GoogleVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	v := NewGoogleVerifier("test-secret")
	v.VerifyURL = srv.URL
	return v
}

func TestVerifyAcceptsValidToken(t *testing.T) {
	var gotSecret, gotResponse string
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotSecret = r.FormValue("secret")
		gotResponse = r.FormValue("response")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	})

	ok, err := v.Verify(context.Background(), "token-123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "test-secret", gotSecret)
	assert.Equal(t, "token-123", gotResponse)
}

func TestVerifyRejectsRefusedToken(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	})

	ok, err := v.Verify(context.Background(), "bad-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyEmptyTokenShortCircuits(t *testing.T) {
	called := false
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	ok, err := v.Verify(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, called)
}

func TestVerifyErrorsOnUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	v := NewGoogleVerifier("test-secret")
	v.VerifyURL = srv.URL

	_, err := v.Verify(context.Background(), "token")
	assert.Error(t, err)
}

func TestVerifyErrorsOnMalformedResponse(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := v.Verify(context.Background(), "token")
	assert.Error(t, err)
}
