package auth

// SessionKey is the one session entry the auth core reads and writes.
const SessionKey = "facebook-auth"

// AccessToken is the opaque credential returned by the provider's
// token endpoint. No internal structure is assumed.
type AccessToken string

// Credential is the value stored in the session under the
// "facebook-auth" key. A later successful exchange overwrites it.
type Credential struct {
	AccessToken AccessToken `json:"access_token"`
}
