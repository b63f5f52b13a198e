package httpapi

// SearchStatus is the last-search health snapshot exposed at /jobs/status.
type SearchStatus struct {
	LastRunAt   string `json:"last_run_at"`
	LastOkAt    string `json:"last_ok_at"`
	LastError   string `json:"last_error"`
	LastKeyword string `json:"last_keyword"`
	LastFound   int    `json:"last_found"`
	LastFinal   int    `json:"last_final"`
}
