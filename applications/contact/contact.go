package contact

// Params is a contact form submission. It is never persisted; it exists for
// one request-response cycle and one notification attempt.
type Params struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}
