package middleware

import (
	"net/http"
	"net/url"
)

// Handler is an http handler that reports failures on an error channel
// instead of writing them to the response. The error channel is the
// contract between application code and the re-auth stage: a recognized
// auth error becomes a login redirect, everything else surfaces to the
// host's default error path.
type Handler func(w http.ResponseWriter, r *http.Request) error

// Middleware wraps a Handler. Each stage either fully handles the
// request or delegates to next unchanged.
type Middleware func(next Handler) Handler

// Chain wraps h outside-in: the first middleware listed sees the
// request first.
func Chain(h Handler, mw ...Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// requestURL reconstructs the absolute URL of the incoming request.
// Server-side requests carry no scheme, so it is taken from
// X-Forwarded-Proto when a proxy set one, falling back to the
// connection's TLS state.
func requestURL(r *http.Request) *url.URL {
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		if r.TLS != nil {
			scheme = "https"
		} else {
			scheme = "http"
		}
	}

	u := *r.URL
	u.Scheme = scheme
	u.Host = r.Host
	return &u
}
