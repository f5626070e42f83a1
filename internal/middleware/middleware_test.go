package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"facebook-auth/internal/auth"
	"facebook-auth/internal/auth/facebook"
	"facebook-auth/internal/session"

	"github.com/stretchr/testify/require"
)

// stubExchanger records exchange calls and returns a canned token.
type stubExchanger struct {
	token auth.AccessToken
	err   error
	calls []exchangeCall
}

type exchangeCall struct {
	code        string
	redirectURI string
}

func (s *stubExchanger) Exchange(_ context.Context, code string, redirectURI string) (auth.AccessToken, error) {
	s.calls = append(s.calls, exchangeCall{code: code, redirectURI: redirectURI})
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

// stubLoginURL records the return targets it was asked to build URLs for.
type stubLoginURL struct {
	calls []string
}

func (s *stubLoginURL) LoginURL(redirectURI string) string {
	s.calls = append(s.calls, redirectURI)
	return "https://provider.example/dialog/oauth?redirect=" + redirectURI
}

func testAppConfig(t *testing.T) facebook.AppConfig {
	t.Helper()
	cfg, err := facebook.NewAppConfig("cid", "sec", "http://app/cb", []string{"email"})
	require.NoError(t, err)
	return cfg
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New(time.Hour)
	require.NoError(t, err)
	return sess
}

// newRequest builds a GET request carrying sess the way the loader
// middleware would attach it.
func newRequest(t *testing.T, target string, sess *session.Session) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if sess != nil {
		r = r.WithContext(session.NewContext(r.Context(), sess))
	}
	return r
}

// nextRecorder is a terminal handler that records its invocations.
type nextRecorder struct {
	calls    int
	lastReq  *http.Request
	returned error
}

func (n *nextRecorder) handle(_ http.ResponseWriter, r *http.Request) error {
	n.calls++
	n.lastReq = r
	return n.returned
}
