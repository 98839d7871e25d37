package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain"
	"github.com/easycashflows/api/internal/domain/repository"
)

const aiTimeout = 10 * time.Second

// Prompt di sistema dell'assistente fiscale. Le risposte non sostituiscono
// la consulenza di un commercialista e il prompt lo dichiara sempre.
const fiscalSystemPrompt = `Sei un assistente fiscale per piccole imprese italiane.
Rispondi in italiano, in modo conciso e pratico, su IVA, regimi fiscali,
fatturazione elettronica, scadenze e adempimenti. Quando la domanda richiede
una valutazione sul caso specifico, ricorda all'utente di verificare con il
proprio commercialista. Non inventare aliquote o scadenze: se non sei sicuro,
dillo.`

const insightsSystemPrompt = `Sei un analista finanziario per piccole imprese italiane.
Ricevi un riepilogo di movimenti di cassa (entrate e uscite) e produci una
sintesi in italiano: andamento, voci principali, eventuali segnali di
attenzione sulla liquidità. Massimo tre paragrafi.`

// AIUseCase espone l'assistente fiscale e l'analisi AI dei movimenti.
type AIUseCase struct {
	llm          ports.LLMService
	movementRepo repository.MovementRepository
}

// NewAIUseCase costruisce lo use case.
func NewAIUseCase(llm ports.LLMService, movementRepo repository.MovementRepository) *AIUseCase {
	return &AIUseCase{llm: llm, movementRepo: movementRepo}
}

// FiscalChat risponde a una domanda fiscale. Il context della richiesta
// viene limitato a 10 secondi per non tenere appesa la connessione HTTP.
func (uc *AIUseCase) FiscalChat(ctx context.Context, in dto.FiscalChatRequest) (*dto.FiscalChatResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	prompt := in.Question
	if in.Context != "" {
		prompt = fmt.Sprintf("Contesto: %s\n\nDomanda: %s", in.Context, in.Question)
	}

	answer, model, err := uc.llm.Complete(ctx, fiscalSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	return &dto.FiscalChatResponse{Answer: answer, Model: model}, nil
}

// MovementInsights riassume i movimenti del periodo e chiede al modello una
// lettura dell'andamento. Il riepilogo passato al modello è aggregato: mai
// dati anagrafici di clienti o fornitori.
func (uc *AIUseCase) MovementInsights(ctx context.Context, companyID string, in dto.MovementInsightsRequest) (*dto.MovementInsightsResponse, error) {
	from, err := time.Parse("2006-01-02", in.From)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := time.Parse("2006-01-02", in.To)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}

	movements, err := uc.movementRepo.List(repository.MovementFilter{
		CompanyID: companyID,
		From:      &from,
		To:        &to,
		Limit:     500,
	})
	if err != nil {
		return nil, err
	}
	if len(movements) == 0 {
		return &dto.MovementInsightsResponse{
			Summary: "Nessun movimento nel periodo selezionato.",
		}, nil
	}

	var income, expense decimal.Decimal
	var b strings.Builder
	fmt.Fprintf(&b, "Periodo: %s - %s\n", in.From, in.To)
	fmt.Fprintf(&b, "Movimenti: %d\n\n", len(movements))
	for _, m := range movements {
		if m.Type == "income" {
			income = income.Add(m.Amount)
		} else {
			expense = expense.Add(m.Amount)
		}
		desc := m.Description
		if desc == "" {
			desc = "(senza descrizione)"
		}
		fmt.Fprintf(&b, "%s | %s | %s EUR | %s\n",
			m.Date.Format("2006-01-02"), m.Type, m.Amount.StringFixed(2), desc)
	}
	fmt.Fprintf(&b, "\nTotale entrate: %s EUR\nTotale uscite: %s EUR\nSaldo: %s EUR\n",
		income.StringFixed(2), expense.StringFixed(2), income.Sub(expense).StringFixed(2))

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	summary, model, err := uc.llm.Complete(ctx, insightsSystemPrompt, b.String())
	if err != nil {
		return nil, err
	}
	return &dto.MovementInsightsResponse{Summary: summary, Model: model}, nil
}
