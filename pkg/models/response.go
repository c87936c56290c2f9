package models

// ErrorResponse is the body of every non-2xx HTTP response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
