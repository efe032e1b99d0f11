package dto

// MessageResponse is the envelope for confirmations that carry no entity
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a MessageResponse
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
