package forecastio

import "fmt"

// APIError is returned when the API answers with a non-2xx status.
// Code and Message come from the JSON error body when one is present.
type APIError struct {
	StatusCode int
	Code       int    `json:"code"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("forecast API error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("forecast API error: status %d", e.StatusCode)
}
