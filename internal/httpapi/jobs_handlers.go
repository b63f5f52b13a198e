package httpapi

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"careerlift-engine/internal/domain"
	"careerlift-engine/internal/events"
	"careerlift-engine/internal/scrape"
	"careerlift-engine/internal/store"
)

// Remediation hints surfaced with a hard search failure.
var searchFailureSolutions = []string{
	"The target site deploys strong anti-scraping measures",
	"Wait a few minutes and retry, or store a session cookie via /api/secrets/session-cookie",
	"Visit the job search page directly for best results",
}

type JobsHandler struct {
	Hub          *events.Hub
	Log          zerolog.Logger
	SearchStatus *atomic.Value // stores SearchStatus

	GetProfile func(ctx context.Context, id string) (domain.Profile, error)
	Search     func(ctx context.Context, p domain.Profile) (scrape.Result, error)
}

type jobsResponse struct {
	Success bool               `json:"success"`
	Jobs    []domain.ScoredJob `json:"jobs"`
	Meta    scrape.Meta        `json:"meta"`
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.Search(r.Context(), prof)
	now := time.Now().Format(time.RFC3339)
	if err != nil {
		h.storeStatus(func(st *SearchStatus) {
			st.LastRunAt = now
			st.LastError = err.Error()
		})
		writeFailure(w, http.StatusInternalServerError,
			"Failed to fetch recent jobs", err.Error(), searchFailureSolutions)
		return
	}

	h.storeStatus(func(st *SearchStatus) {
		st.LastRunAt = now
		st.LastOkAt = now
		st.LastError = ""
		st.LastKeyword = res.Meta.KeywordUsed
		st.LastFound = res.Meta.TotalFound
		st.LastFinal = res.Meta.FinalCount
	})

	if h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeSearchCompleted, 1, map[string]any{
			"user_id": userID,
			"found":   res.Meta.TotalFound,
			"final":   res.Meta.FinalCount,
		}))
	}

	// Jobs is never nil in the envelope, even when the final set is empty.
	jobs := res.Jobs
	if jobs == nil {
		jobs = []domain.ScoredJob{}
	}
	writeJSON(w, jobsResponse{Success: true, Jobs: jobs, Meta: res.Meta})
}

func (h JobsHandler) Status(w http.ResponseWriter, r *http.Request) {
	if h.SearchStatus == nil {
		writeJSON(w, SearchStatus{})
		return
	}
	st, _ := h.SearchStatus.Load().(SearchStatus)
	writeJSON(w, st)
}

func (h JobsHandler) storeStatus(update func(*SearchStatus)) {
	if h.SearchStatus == nil {
		return
	}
	st, _ := h.SearchStatus.Load().(SearchStatus)
	update(&st)
	h.SearchStatus.Store(st)
}
