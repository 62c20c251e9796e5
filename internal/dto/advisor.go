package dto

type ChatRequest struct {
	Message string `json:"message"`
	Persona string `json:"persona,omitempty"`
	// PersonaEnabled defaults to true when omitted.
	PersonaEnabled *bool `json:"persona_enabled,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
