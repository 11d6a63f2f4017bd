package response

// StandardApiResponse is the envelope every endpoint answers with
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}

// StepRedirect is the payload of a failed flow-step guard. It is the API
// analog of the storefront's silent backward navigation: the client is told
// which step still has unmet prerequisites and navigates there.
type StepRedirect struct {
	RedirectStep string `json:"redirect_step"`
}
