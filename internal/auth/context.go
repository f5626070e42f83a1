package auth

import "context"

// unexported, collision-proof context key
type credentialContextKeyType struct{}

var credentialKey = credentialContextKeyType{}

// WithCredential binds a credential into the context. The binding lives
// on the derived context only, so it exists for the dynamic extent of
// the calls made with that context and never bleeds into concurrently
// executing requests.
func WithCredential(ctx context.Context, cred Credential) context.Context {
	return context.WithValue(ctx, credentialKey, cred)
}

// CredentialFromContext extracts the bound credential, if any.
func CredentialFromContext(ctx context.Context) (Credential, bool) {
	cred, ok := ctx.Value(credentialKey).(Credential)
	return cred, ok
}
