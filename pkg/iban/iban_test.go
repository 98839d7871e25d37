package iban

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"IT60 X054 2811 1010 0000 0123 456", "IT60X0542811101000000123456"},
		{"it60-x054-2811-1010-0000-0123-456", "IT60X0542811101000000123456"},
		{"DE89370400440532013000", "DE89370400440532013000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in))
	}
}

func TestValidate_IBANValidi(t *testing.T) {
	// IBAN di esempio pubblici con checksum corretto.
	valid := []string{
		"IT60X0542811101000000123456",
		"IT60 X054 2811 1010 0000 0123 456",
		"DE89370400440532013000",
		"FR1420041010050500013M02606",
		"GB29NWBK60161331926819",
	}
	for _, s := range valid {
		assert.NoError(t, Validate(s), "atteso valido: %s", s)
	}
}

func TestValidate_ChecksumErrato(t *testing.T) {
	assert.Error(t, Validate("IT60X0542811101000000123457"), "ultima cifra alterata: mod-97 deve fallire")
}

func TestValidate_LunghezzaPerPaese(t *testing.T) {
	// Un IBAN italiano deve avere 27 caratteri.
	assert.Error(t, Validate("IT60X05428111010000001234"))
}

func TestValidate_StrutturaInvalida(t *testing.T) {
	cases := []string{
		"",
		"IT60",
		"1260X0542811101000000123456", // paese numerico
		"ITAAX0542811101000000123456", // cifre di controllo non numeriche
	}
	for _, s := range cases {
		assert.Error(t, Validate(s), "atteso invalido: %q", s)
	}
}
