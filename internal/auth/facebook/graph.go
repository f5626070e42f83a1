package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"facebook-auth/internal/auth"
)

const defaultGraphBaseURL = "https://graph.facebook.com"

// invalidTokenCode is the Graph API OAuthException code returned when
// an access token is expired, revoked or otherwise rejected.
const invalidTokenCode = 190

// Profile is the subset of the Graph /me document the application uses.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type graphError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

type graphErrorEnvelope struct {
	Error graphError `json:"error"`
}

// GraphClient calls the Graph API on behalf of the current request. The
// access token is taken from the request context, where the middleware
// chain bound it, rather than passed through every call site.
type GraphClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewGraphClient(httpClient *http.Client) *GraphClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GraphClient{
		httpClient: httpClient,
		baseURL:    defaultGraphBaseURL,
	}
}

// Me fetches the profile of the user the bound token belongs to.
func (g *GraphClient) Me(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := g.get(ctx, "/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (g *GraphClient) get(ctx context.Context, path string, out any) error {
	cred, ok := auth.CredentialFromContext(ctx)
	if !ok || cred.AccessToken == "" {
		return &auth.Error{Kind: auth.KindAccessTokenRequired}
	}

	q := url.Values{}
	q.Set("access_token", string(cred.AccessToken))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		g.baseURL+path+"?"+q.Encode(),
		nil,
	)
	if err != nil {
		return fmt.Errorf("facebook graph: build request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("facebook graph: %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("facebook graph: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return graphErrorFrom(body, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("facebook graph: decode response: %w", err)
	}

	return nil
}

// graphErrorFrom translates a Graph error document into the auth
// taxonomy where it signals a token problem, and into a plain error
// otherwise. Only token rejections are allowed to trigger re-login.
func graphErrorFrom(body []byte, status int) error {
	var envelope graphErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Type == "" {
		return fmt.Errorf("facebook graph: unexpected status %d", status)
	}

	ge := envelope.Error
	if ge.Type == "OAuthException" && ge.Code == invalidTokenCode {
		return &auth.Error{
			Kind:   auth.KindInvalidAccessToken,
			Detail: ge.Message,
		}
	}

	return fmt.Errorf("facebook graph: %s (type=%s code=%d)", ge.Message, ge.Type, ge.Code)
}
