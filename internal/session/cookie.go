package session

import (
	"net/http"
)

const (
	CookieName = "__Host-session"
)

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/" // required for __Host-
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// SetCookie issues the session cookie to the client. Session cookies
// are always HttpOnly.
func (o CookieOptions) SetCookie(w http.ResponseWriter, s *Session) {
	o = o.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     o.Path,
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: o.SameSite,
	})
}

// ClearCookie removes the session cookie from the client.
func (o CookieOptions) ClearCookie(w http.ResponseWriter) {
	o = o.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     o.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: o.SameSite,
	})
}
