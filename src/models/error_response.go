package models

// ErrorResponse is the standard error body for every endpoint.
type ErrorResponse struct {
	Status  int    `json:"status"`         // HTTP status code
	Code    string `json:"code,omitempty"` // machine-readable error kind
	Message string `json:"message"`
}
