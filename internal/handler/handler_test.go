package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"facebook-auth/internal/auth"
	"facebook-auth/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, method, target string, sess *session.Session) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, target, nil)
	if sess != nil {
		r = r.WithContext(session.NewContext(r.Context(), sess))
	}
	return r
}

func TestHomeReportsAuthState(t *testing.T) {
	h := New(nil)

	w := httptest.NewRecorder()
	require.NoError(t, h.Home(w, newRequest(t, http.MethodGet, "http://app/", nil)))

	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body["authenticated"])

	w = httptest.NewRecorder()
	r := newRequest(t, http.MethodGet, "http://app/", nil)
	r = r.WithContext(auth.WithCredential(r.Context(), auth.Credential{AccessToken: "tok"}))
	require.NoError(t, h.Home(w, r))

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["authenticated"])
}

func TestLoginSignalsLoginRequired(t *testing.T) {
	h := New(nil)

	err := h.Login(httptest.NewRecorder(), newRequest(t, http.MethodGet, "http://app/login", nil))

	var ae *auth.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, auth.KindLoginRequired, ae.Kind)
}

func TestLogoutClearsCredential(t *testing.T) {
	h := New(nil)

	sess, err := session.New(time.Hour)
	require.NoError(t, err)
	require.NoError(t, sess.Set(auth.SessionKey, auth.Credential{AccessToken: "tok"}))

	w := httptest.NewRecorder()
	require.NoError(t, h.Logout(w, newRequest(t, http.MethodPost, "http://app/logout", sess)))
	assert.Equal(t, http.StatusNoContent, w.Code)

	var cred auth.Credential
	found, err := sess.Get(auth.SessionKey, &cred)
	require.NoError(t, err)
	assert.False(t, found)

	// Logging out twice is fine.
	w = httptest.NewRecorder()
	require.NoError(t, h.Logout(w, newRequest(t, http.MethodPost, "http://app/logout", sess)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogoutWithoutSession(t *testing.T) {
	h := New(nil)

	w := httptest.NewRecorder()
	require.NoError(t, h.Logout(w, newRequest(t, http.MethodPost, "http://app/logout", nil)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
