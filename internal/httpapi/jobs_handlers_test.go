package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"careerlift-engine/internal/domain"
	"careerlift-engine/internal/scrape"
	"careerlift-engine/internal/store"
)

func jobsRequest(userID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	if userID != "" {
		r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
	}
	return r
}

func okProfile(ctx context.Context, id string) (domain.Profile, error) {
	return domain.Profile{ID: id, CareerGoal: domain.GoalFullStack}, nil
}

func TestJobsList_MissingIdentity(t *testing.T) {
	h := JobsHandler{Log: zerolog.Nop()}
	w := httptest.NewRecorder()

	h.List(w, jobsRequest(""))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var body failureBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Fatal("failure envelope must carry success=false")
	}
}

func TestJobsList_UnknownUser(t *testing.T) {
	h := JobsHandler{
		Log: zerolog.Nop(),
		GetProfile: func(ctx context.Context, id string) (domain.Profile, error) {
			return domain.Profile{}, store.ErrNotFound
		},
	}
	w := httptest.NewRecorder()

	h.List(w, jobsRequest("u1"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestJobsList_Success(t *testing.T) {
	var status atomic.Value
	h := JobsHandler{
		Log:          zerolog.Nop(),
		SearchStatus: &status,
		GetProfile:   okProfile,
		Search: func(ctx context.Context, p domain.Profile) (scrape.Result, error) {
			return scrape.Result{
				Jobs: []domain.ScoredJob{{Title: "Full Stack Developer", Company: "Acme", MatchScore: 32, IsRecent: true}},
				Meta: scrape.Meta{KeywordUsed: "full stack", TotalFound: 3, FinalCount: 1},
			}, nil
		},
	}
	w := httptest.NewRecorder()

	h.List(w, jobsRequest("u1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var body jobsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || len(body.Jobs) != 1 || body.Meta.FinalCount != 1 {
		t.Fatalf("unexpected envelope: %+v", body)
	}

	st, _ := status.Load().(SearchStatus)
	if st.LastKeyword != "full stack" || st.LastFound != 3 || st.LastError != "" {
		t.Fatalf("status not recorded: %+v", st)
	}
}

func TestJobsList_EmptyResultStillSerializesJobsArray(t *testing.T) {
	h := JobsHandler{
		Log:        zerolog.Nop(),
		GetProfile: okProfile,
		Search: func(ctx context.Context, p domain.Profile) (scrape.Result, error) {
			return scrape.Result{}, nil
		},
	}
	w := httptest.NewRecorder()

	h.List(w, jobsRequest("u1"))

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw["jobs"]) != "[]" {
		t.Fatalf("jobs must be an empty array, got %s", raw["jobs"])
	}
}

func TestJobsList_SearchFailure(t *testing.T) {
	var status atomic.Value
	h := JobsHandler{
		Log:          zerolog.Nop(),
		SearchStatus: &status,
		GetProfile:   okProfile,
		Search: func(ctx context.Context, p domain.Profile) (scrape.Result, error) {
			return scrape.Result{}, errors.New("connection reset")
		},
	}
	w := httptest.NewRecorder()

	h.List(w, jobsRequest("u1"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body failureBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success || body.Error != "connection reset" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if len(body.Solution) == 0 {
		t.Fatal("hard search failures must carry remediation hints")
	}

	st, _ := status.Load().(SearchStatus)
	if st.LastError != "connection reset" {
		t.Fatalf("failure not recorded in status: %+v", st)
	}
}

func TestJobsStatus_ZeroValueWithoutStore(t *testing.T) {
	h := JobsHandler{Log: zerolog.Nop()}
	w := httptest.NewRecorder()

	h.Status(w, httptest.NewRequest(http.MethodGet, "/jobs/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestWithUser(t *testing.T) {
	var got string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserIDFrom(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	r.Header.Set("X-User-ID", "  u42  ")
	WithUser(inner).ServeHTTP(httptest.NewRecorder(), r)

	if got != "u42" {
		t.Fatalf("resolved user = %q, want u42", got)
	}
}
