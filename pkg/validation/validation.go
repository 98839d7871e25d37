package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate istanza condivisa: validator/v10 è thread-safe e fa cache dei metadata degli struct.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO tramite i tag `validate` e restituisce un errore leggibile
// con l'elenco dei campi non validi ("name: required; email: email").
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}
