package middleware

import (
	"net/http"

	"facebook-auth/internal/auth"
	"facebook-auth/internal/session"
)

// BindCredential propagates the session's stored credential into the
// request context for exactly the one downstream invocation. The
// binding rides on the derived context, so it is gone once next
// returns, on every exit path, and is invisible to other requests.
// With no stored credential, next runs with no binding.
func BindCredential(next Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			return next(w, r)
		}

		var cred auth.Credential
		found, err := sess.Get(auth.SessionKey, &cred)
		if err != nil {
			return err
		}
		if !found {
			return next(w, r)
		}

		ctx := auth.WithCredential(r.Context(), cred)
		return next(w, r.WithContext(ctx))
	}
}
