package ports

import "context"

// LLMService definisce la porta di uscita verso i servizi di intelligenza artificiale.
// Qualunque adapter (Anthropic, OpenAI, mock) deve implementare questa interfaccia.
// Per il principio di inversione delle dipendenze l'applicazione conosce solo
// questo contratto, non l'implementazione concreta.
type LLMService interface {
	// Complete invia il prompt di sistema e la domanda dell'utente e restituisce
	// la risposta testuale più il nome del modello usato.
	// Il context deve portare un timeout per evitare blocchi su chiamate esterne.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (answer, model string, err error)
}
