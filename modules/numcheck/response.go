package numcheck

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is the standard JSON response structure.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// FormatInfo describes a catalog entry.
type FormatInfo struct {
	Name        string `json:"name,omitempty"`
	Format      string `json:"format"`
	Precision   int    `json:"precision"`
	Scale       int    `json:"scale"`
	NonNegative bool   `json:"non_negative"`
}

// Result is the outcome of checking one value.
type Result struct {
	Value  *string `json:"value"`
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"`
}

// ValidateResponse is the data payload of the validate endpoints.
type ValidateResponse struct {
	Format  FormatInfo `json:"format"`
	Results []Result   `json:"results"`
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, JSONResponse{Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string, details map[string][]string) {
	writeJSON(w, status, JSONResponse{Error: &ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	}})
}
