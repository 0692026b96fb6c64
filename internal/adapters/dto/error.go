package dto

// ErrorResponse represents a common API error response. Details carries the
// captured provisioning output when deployment failed.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
