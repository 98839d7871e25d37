// Package phone normalizza i numeri di telefono in formato E.164.
package phone

import (
	"fmt"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// Normalize porta il numero in formato E.164. La region di default è IT:
// i numeri senza prefisso internazionale vengono interpretati come italiani.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("numero di telefono vuoto")
	}

	num, err := libphonenumber.Parse(raw, "IT")
	if err != nil {
		return "", fmt.Errorf("numero di telefono non valido %q: %w", raw, err)
	}
	if !libphonenumber.IsValidNumber(num) {
		return "", fmt.Errorf("numero di telefono non valido: %s", raw)
	}
	return libphonenumber.Format(num, libphonenumber.E164), nil
}
