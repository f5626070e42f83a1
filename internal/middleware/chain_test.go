package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"facebook-auth/internal/auth"
	"facebook-auth/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestURL(t *testing.T) {
	t.Run("plain http", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "http://app/cb?foo=bar", nil)
		assert.Equal(t, "http://app/cb?foo=bar", requestURL(r).String())
	})

	t.Run("tls connection", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "https://app/cb", nil)
		r.TLS = &tls.ConnectionState{}
		assert.Equal(t, "https://app/cb", requestURL(r).String())
	})

	t.Run("forwarded proto wins", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "http://app/cb", nil)
		r.Header.Set("X-Forwarded-Proto", "https")
		assert.Equal(t, "https://app/cb", requestURL(r).String())
	})
}

// TestChainFullCycle walks the composed chain through the session
// lifecycle: an anonymous request is bounced to login, the callback
// exchange authenticates it, and a token rejection bounces it again.
func TestChainFullCycle(t *testing.T) {
	store := session.NewMemoryStore()
	exchanger := &stubExchanger{token: "fb-token"}
	login := &stubLoginURL{}

	loader := newLoader(store)
	callback := NewCallbackExchange(testAppConfig(t), exchanger)
	reauth := NewReAuthRedirect(login)

	graphDown := false
	app := func(_ http.ResponseWriter, r *http.Request) error {
		cred, ok := auth.CredentialFromContext(r.Context())
		if !ok {
			return &auth.Error{Kind: auth.KindAccessTokenRequired}
		}
		if graphDown {
			return &auth.Error{Kind: auth.KindInvalidAccessToken, Detail: string(cred.AccessToken)}
		}
		return nil
	}

	chain := Chain(app,
		loader.Wrap,
		callback.Wrap,
		reauth.Wrap,
		BindCredential,
	)

	// Unauthenticated: the app raises, the chain redirects to login.
	w := httptest.NewRecorder()
	require.NoError(t, chain(w, httptest.NewRequest(http.MethodGet, "http://app/me", nil)))
	assert.Equal(t, http.StatusFound, w.Code)
	require.Len(t, login.calls, 1)
	assert.Equal(t, "http://app/me", login.calls[0])
	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)

	// Provider redirects back with a code: the exchange runs and the
	// browser is sent to the cleaned URL.
	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://app/cb?code=abc", nil)
	r.AddCookie(cookie)
	require.NoError(t, chain(w, r))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://app/cb", w.Header().Get("Location"))
	require.Len(t, exchanger.calls, 1)

	// The anonymous session was never persisted, so the exchange ran
	// against a fresh one; its cookie is the one that counts now.
	cookie = sessionCookie(t, w)
	require.NotNil(t, cookie)

	// Authenticated: the same session now reaches the app handler.
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "http://app/me", nil)
	r.AddCookie(cookie)
	require.NoError(t, chain(w, r))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, login.calls, 1, "no redirect while the token is accepted")

	// Token rejected downstream: back to login.
	graphDown = true
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "http://app/me", nil)
	r.AddCookie(cookie)
	require.NoError(t, chain(w, r))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Len(t, login.calls, 2)
}
