package session

import "context"

// unexported, collision-proof context key
type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// NewContext attaches the request's session to the context. The loader
// middleware is the only writer.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the session attached by the loader, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}
