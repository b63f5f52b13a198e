package httpapi

import (
	"encoding/json"
	"net/http"

	"careerlift-engine/internal/secrets"
)

type SecretsHandler struct{}

type setSessionCookieReq struct {
	Value string `json:"value"`
}

// SetSessionCookie stores an optional target-site session cookie in the OS
// keychain. The fetch client picks it up on the next search.
func (h SecretsHandler) SetSessionCookie(w http.ResponseWriter, r *http.Request) {
	var req setSessionCookieReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON", err.Error(), nil)
		return
	}

	if err := secrets.SetSessionCookie(req.Value); err != nil {
		writeFailure(w, http.StatusBadRequest, "Failed to store session cookie", err.Error(), nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) DeleteSessionCookie(w http.ResponseWriter, r *http.Request) {
	if err := secrets.DeleteSessionCookie(); err != nil {
		writeFailure(w, http.StatusBadRequest, "Failed to delete session cookie", err.Error(), nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
