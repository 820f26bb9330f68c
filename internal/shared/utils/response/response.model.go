package response

// MessageResponse is the body returned by the booking API
type MessageResponse struct {
	Message string `json:"message"`         // Human-readable message
	Error   string `json:"error,omitempty"` // Underlying error detail, failures only
}
