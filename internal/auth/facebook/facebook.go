package facebook

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"facebook-auth/internal/auth"

	"golang.org/x/oauth2"
	fboauth "golang.org/x/oauth2/facebook"
)

// Exchanger swaps an authorization code for an access token. The
// redirect URI must byte-match the one the provider redirected to,
// which varies per request, so it is a call argument rather than
// part of the configuration.
type Exchanger interface {
	Exchange(ctx context.Context, code string, redirectURI string) (auth.AccessToken, error)
}

// LoginURLBuilder produces the provider authorization URL a browser is
// sent to when re-authentication is needed.
type LoginURLBuilder interface {
	LoginURL(redirectURI string) string
}

// Client implements Exchanger and LoginURLBuilder against the real
// Facebook OAuth endpoints.
type Client struct {
	cfg      AppConfig
	endpoint oauth2.Endpoint
}

func NewClient(cfg AppConfig) *Client {
	return &Client{cfg: cfg, endpoint: fboauth.Endpoint}
}

// Exchange performs the code-for-token exchange. Failures are reported
// as-is to the caller; no retry, no translation into the auth taxonomy.
func (c *Client) Exchange(
	ctx context.Context,
	code string,
	redirectURI string,
) (auth.AccessToken, error) {

	oauthCfg := &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		RedirectURL:  redirectURI,
		Endpoint:     c.endpoint,
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("facebook token exchange failed: %w", err)
	}

	return auth.AccessToken(token.AccessToken), nil
}

// LoginURL builds the authorization URL from the client id, the
// post-login return target and the configured permissions in order.
//
// No CSRF state parameter is emitted or validated anywhere in this
// flow; integrators should be aware the callback exchange accepts any
// code presented to it.
func (c *Client) LoginURL(redirectURI string) string {
	q := url.Values{}
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", redirectURI)
	if len(c.cfg.Permissions) > 0 {
		q.Set("scope", strings.Join(c.cfg.Permissions, ","))
	}
	return c.endpoint.AuthURL + "?" + q.Encode()
}
