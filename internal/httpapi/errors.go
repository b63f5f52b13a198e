package httpapi

import (
	"encoding/json"
	"net/http"
)

// failureBody is the error envelope every non-200 response uses. The client
// always gets well-formed JSON, never a bare error string.
type failureBody struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Error    string   `json:"error,omitempty"`
	Solution []string `json:"solution,omitempty"`
}

func writeFailure(w http.ResponseWriter, status int, message, errText string, solution []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(failureBody{
		Success:  false,
		Message:  message,
		Error:    errText,
		Solution: solution,
	})
}
