package middleware

import (
	"net/http"

	"facebook-auth/internal/auth"
	"facebook-auth/internal/auth/facebook"
)

// ReAuthRedirect intercepts recognized authentication errors raised
// anywhere downstream and converts them into a redirect to the provider
// login page, with the current request URL as the post-login return
// target. Every other error is returned to the caller as the same
// value, untouched.
type ReAuthRedirect struct {
	login facebook.LoginURLBuilder
}

func NewReAuthRedirect(login facebook.LoginURLBuilder) *ReAuthRedirect {
	return &ReAuthRedirect{login: login}
}

func (m *ReAuthRedirect) Wrap(next Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		err := next(w, r)
		if err == nil || !auth.RequiresLogin(err) {
			return err
		}

		loginURL := m.login.LoginURL(requestURL(r).String())
		http.Redirect(w, r, loginURL, http.StatusFound)
		return nil
	}
}
