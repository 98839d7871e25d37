package banking

import (
	"fmt"

	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/domain/entity"
)

// ProviderFor restituisce il client open banking per il provider configurato
// sull'IBAN. I client sono stateless: le credenziali viaggiano per chiamata.
func ProviderFor(provider string) (ports.BankingProvider, error) {
	switch provider {
	case entity.BankingProviderFabrick:
		return NewFabrickClient(), nil
	case entity.BankingProviderTink:
		return NewTinkClient(), nil
	default:
		return nil, fmt.Errorf("provider banking sconosciuto: %q", provider)
	}
}
