package iban

import (
	"fmt"
	"strings"
	"unicode"
)

// Lunghezze IBAN per paese (ISO 13616). Sottoinsieme dei paesi SEPA più comuni
// per l'utenza dell'applicazione; i paesi non elencati vengono validati solo col mod-97.
var countryLengths = map[string]int{
	"IT": 27, "DE": 22, "FR": 27, "ES": 24, "NL": 18,
	"BE": 16, "PT": 25, "AT": 20, "CH": 21, "GB": 22,
	"IE": 22, "LU": 20, "MT": 31, "SM": 27, "GR": 27,
}

// Normalize rimuove spazi e separatori e porta l'IBAN in maiuscolo.
// "IT60 X054 2811 1010 0000 0123 456" -> "IT60X0542811101000000123456".
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Validate verifica struttura e checksum mod-97 (ISO 7064) dell'IBAN.
// Accetta l'IBAN con o senza spazi/trattini.
func Validate(raw string) error {
	s := Normalize(raw)
	if len(s) < 15 || len(s) > 34 {
		return fmt.Errorf("iban: lunghezza %d fuori dall'intervallo 15-34", len(s))
	}
	country := s[:2]
	for _, r := range country {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("iban: codice paese non valido %q", country)
		}
	}
	if expected, ok := countryLengths[country]; ok && len(s) != expected {
		return fmt.Errorf("iban: per %s sono attesi %d caratteri, trovati %d", country, expected, len(s))
	}
	for _, r := range s[2:4] {
		if r < '0' || r > '9' {
			return fmt.Errorf("iban: cifre di controllo non numeriche")
		}
	}
	if mod97(s[4:] + s[:4]) != 1 {
		return fmt.Errorf("iban: checksum mod-97 non valido")
	}
	return nil
}

// mod97 calcola il resto modulo 97 della stringa riarrangiata, con le lettere
// convertite nei valori 10-35. Calcolo incrementale per evitare big integer.
func mod97(s string) int {
	rem := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			rem = (rem*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			v := int(r-'A') + 10
			rem = (rem*100 + v) % 97
		default:
			return -1
		}
	}
	return rem
}
