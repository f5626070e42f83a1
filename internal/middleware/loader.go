package middleware

import (
	"net/http"
	"time"

	"facebook-auth/internal/logger"
	"facebook-auth/internal/session"
)

// Loader is the host side of the session contract: it resolves the
// request's session from the cookie, exposes it through the context,
// and persists it on the way out whenever the chain changed it —
// whether the chain returned normally or with an error.
type Loader struct {
	store  session.Store
	ttl    time.Duration
	cookie session.CookieOptions
}

func NewLoader(store session.Store, ttl time.Duration, cookie session.CookieOptions) *Loader {
	return &Loader{store: store, ttl: ttl, cookie: cookie}
}

func (l *Loader) Wrap(next Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		sess, fresh, err := l.resolve(r)
		if err != nil {
			return err
		}

		// The cookie must go out before the handler writes the
		// response, so fresh sessions announce themselves up front.
		if fresh {
			l.cookie.SetCookie(w, sess)
		}

		handlerErr := next(w, r.WithContext(session.NewContext(r.Context(), sess)))

		if sess.Dirty() {
			if saveErr := l.store.Save(r.Context(), sess); saveErr != nil {
				if handlerErr != nil {
					// Keep the handler's error; the save failure is
					// only observable in the log.
					logger.Error("session save failed", map[string]any{
						"session_id": sess.ID,
						"error":      saveErr.Error(),
					})
					return handlerErr
				}
				return saveErr
			}
		}

		return handlerErr
	}
}

func (l *Loader) resolve(r *http.Request) (*session.Session, bool, error) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		sess, err := l.store.Get(r.Context(), cookie.Value)
		if err != nil {
			return nil, false, err
		}
		if sess != nil {
			return sess, false, nil
		}
	}

	sess, err := session.New(l.ttl)
	if err != nil {
		return nil, false, err
	}
	return sess, true, nil
}
