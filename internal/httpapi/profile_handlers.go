package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"careerlift-engine/internal/domain"
	"careerlift-engine/internal/events"
	"careerlift-engine/internal/store"
)

type ProfileHandler struct {
	Hub *events.Hub

	GetProfile    func(ctx context.Context, id string) (domain.Profile, error)
	UpsertProfile func(ctx context.Context, p domain.Profile) error
}

func (h ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r.Context())
	if userID == "" {
		writeFailure(w, http.StatusUnauthorized, "Missing user identity", "", nil)
		return
	}

	prof, err := h.GetProfile(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		writeFailure(w, http.StatusNotFound, "User not found", "", nil)
		return
	}
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "Failed to load profile", err.Error(), nil)
		return
	}
	writeJSON(w, prof)
}

func (h ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r.Context())
	if userID == "" {
		writeFailure(w, http.StatusUnauthorized, "Missing user identity", "", nil)
		return
	}

	var prof domain.Profile
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&prof); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON", err.Error(), nil)
		return
	}

	// The path identity wins; a body id cannot write someone else's profile.
	prof.ID = userID

	if err := h.UpsertProfile(r.Context(), prof); err != nil {
		writeFailure(w, http.StatusInternalServerError, "Failed to save profile", err.Error(), nil)
		return
	}

	if h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeProfileUpdated, 1, map[string]any{
			"user_id": userID,
		}))
	}
	writeJSON(w, prof)
}
