package facebook

import (
	"errors"
	"fmt"
	"net/url"
)

// AppConfig carries the provider app registration. It is supplied once
// at setup and never mutated afterwards.
type AppConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	// Permissions are the OAuth scopes requested at login, in order.
	Permissions []string

	callbackPath string
}

// NewAppConfig validates the registration and precomputes the callback
// path used for request matching.
func NewAppConfig(
	clientID string,
	clientSecret string,
	callbackURL string,
	permissions []string,
) (AppConfig, error) {

	if clientID == "" || clientSecret == "" || callbackURL == "" {
		return AppConfig{}, errors.New("facebook app config missing required fields")
	}

	u, err := url.Parse(callbackURL)
	if err != nil {
		return AppConfig{}, fmt.Errorf("facebook: invalid callback url: %w", err)
	}

	return AppConfig{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		CallbackURL:  callbackURL,
		Permissions:  permissions,
		callbackPath: u.Path,
	}, nil
}

// CallbackPath returns the path component of the configured callback
// URL. Callback detection compares paths only; scheme, host and query
// are deliberately ignored, so two routes sharing a path on different
// hosts would both match.
func (c AppConfig) CallbackPath() string {
	return c.callbackPath
}
