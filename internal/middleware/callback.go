package middleware

import (
	"errors"
	"net/http"

	"facebook-auth/internal/auth"
	"facebook-auth/internal/auth/facebook"
	"facebook-auth/internal/session"
)

// CallbackExchange detects the provider's OAuth redirect callback and
// performs the code-for-token exchange. Requests that do not match the
// callback path, or that carry no code, pass through untouched.
type CallbackExchange struct {
	cfg       facebook.AppConfig
	exchanger facebook.Exchanger
}

func NewCallbackExchange(cfg facebook.AppConfig, exchanger facebook.Exchanger) *CallbackExchange {
	return &CallbackExchange{cfg: cfg, exchanger: exchanger}
}

func (m *CallbackExchange) Wrap(next Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) error {
		// Exact match on path only; host and query are not compared.
		if r.URL.Path != m.cfg.CallbackPath() {
			return next(w, r)
		}

		query := r.URL.Query()
		code := query.Get("code")
		if code == "" {
			return next(w, r)
		}

		// Consume the code. The cleaned URL, with the code stripped and
		// every other parameter kept, is both the redirect_uri of the
		// exchange and the target the browser is sent back to, so the
		// code never reaches the application handler.
		query.Del("code")
		cleaned := requestURL(r)
		cleaned.RawQuery = query.Encode()
		target := cleaned.String()

		// An exchange failure is not an auth error; it propagates as-is
		// to the host's default error handling.
		token, err := m.exchanger.Exchange(r.Context(), code, target)
		if err != nil {
			return err
		}

		sess, ok := session.FromContext(r.Context())
		if !ok {
			return errors.New("callback: no session on request")
		}
		cred := auth.Credential{AccessToken: token}
		if err := sess.Set(auth.SessionKey, cred); err != nil {
			return err
		}

		http.Redirect(w, r, target, http.StatusFound)
		return nil
	}
}
