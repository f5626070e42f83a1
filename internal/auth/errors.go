package auth

import (
	"errors"
	"fmt"
)

// Kind identifies one of the closed set of authentication failure
// signals. Anything outside this set is an unrelated error and must
// never be intercepted by the middleware chain.
type Kind string

const (
	// KindInvalidAccessToken means the provider rejected the stored token.
	KindInvalidAccessToken Kind = "invalid-access-token"

	// KindAccessTokenRequired means an API call was attempted without a token.
	KindAccessTokenRequired Kind = "access-token-required"

	// KindLoginRequired is an explicit application-level signal that the
	// user must log in, regardless of token state.
	KindLoginRequired Kind = "login-required"
)

// Error is an authentication failure raised by downstream collaborators
// (typically the Graph client) or by application handlers. Detail carries
// the provider-specific message, if any.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// RequiresLogin reports whether err is an authentication error whose
// kind calls for redirecting the user to the provider login page.
// The check is a kind match, not a string comparison, and honors
// error wrapping.
func RequiresLogin(err error) bool {
	var ae *Error
	if !errors.As(err, &ae) {
		return false
	}
	switch ae.Kind {
	case KindInvalidAccessToken, KindAccessTokenRequired, KindLoginRequired:
		return true
	}
	return false
}
