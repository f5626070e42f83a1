package handler

import (
	"encoding/json"
	"net/http"

	"facebook-auth/internal/auth"
	"facebook-auth/internal/auth/facebook"
	"facebook-auth/internal/session"
)

// Handler holds the application endpoints that sit behind the
// middleware chain. They signal authentication needs by returning
// taxonomy errors and never render redirects themselves.
type Handler struct {
	graph *facebook.GraphClient
}

func New(graph *facebook.GraphClient) *Handler {
	return &Handler{graph: graph}
}

// Home reports whether the current session carries a credential.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) error {
	_, ok := auth.CredentialFromContext(r.Context())
	return writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": ok,
	})
}

// Me returns the Graph profile of the logged-in user. A missing or
// rejected token surfaces as a taxonomy error, which the chain turns
// into a login redirect.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) error {
	profile, err := h.graph.Me(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, profile)
}

// Login is the explicit application-level signal that login is needed
// regardless of token state.
func (h *Handler) Login(_ http.ResponseWriter, _ *http.Request) error {
	return &auth.Error{Kind: auth.KindLoginRequired}
}

// Logout drops the stored credential. Idempotent.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) error {
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.Delete(auth.SessionKey)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
