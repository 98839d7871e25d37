package dto

// FiscalChatRequest domanda per l'assistente fiscale AI.
type FiscalChatRequest struct {
	Question string `json:"question" validate:"required,min=3,max=2000"`
	Context  string `json:"context" validate:"omitempty,max=4000"` // contesto opzionale (es. regime fiscale)
}

// FiscalChatResponse risposta dell'assistente.
type FiscalChatResponse struct {
	Answer string `json:"answer"`
	Model  string `json:"model"`
}

// MovementInsightsRequest finestra temporale da analizzare.
type MovementInsightsRequest struct {
	From string `json:"from" validate:"required"` // "2006-01-02"
	To   string `json:"to" validate:"required"`
}

// MovementInsightsResponse sintesi AI sull'andamento dei movimenti.
type MovementInsightsResponse struct {
	Summary string `json:"summary"`
	Model   string `json:"model"`
}
