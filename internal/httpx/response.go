package httpx

import (
	"encoding/json"
	"net/http"
)

// Notification is the transient user-facing feedback attached to mutation
// responses: title + description + severity, matching what the UI shows as a
// toast.
type Notification struct {
	Severity    string `json:"severity"` // "success" or "error"
	Title       string `json:"title"`
	Description string `json:"description"`
}

func Success(title, description string) Notification {
	return Notification{Severity: "success", Title: title, Description: description}
}

func Failure(title, description string) Notification {
	return Notification{Severity: "error", Title: title, Description: description}
}

type ErrorResponse struct {
	Error        string        `json:"error"`
	Details      any           `json:"details,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// JSONErrorNotify is JSONError with a toast payload naming the failing
// constraint.
func JSONErrorNotify(w http.ResponseWriter, status int, msg string, details any, note Notification) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details, Notification: &note})
}
