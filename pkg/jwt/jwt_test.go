package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret    = "unit-test-secret"
	userID    = "11111111-1111-1111-1111-111111111111"
	companyID = "22222222-2222-2222-2222-222222222222"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(secret, userID, companyID, "cashflow", "easycashflows", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotUser, gotCompany, gotRole, err := Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, companyID, gotCompany)
	assert.Equal(t, "cashflow", gotRole)
}

func TestGenerate_SecretVuoto(t *testing.T) {
	_, err := Generate("", userID, companyID, "user", "easycashflows", 60)
	assert.Error(t, err)
}

func TestParse_FirmaErrata(t *testing.T) {
	tok, err := Generate(secret, userID, companyID, "admin", "easycashflows", 60)
	require.NoError(t, err)

	_, _, _, err = Parse("altro-secret", tok)
	assert.Error(t, err, "un token firmato con altro secret non deve validare")
}

func TestParse_TokenScaduto(t *testing.T) {
	// Scadenza negativa: il token nasce già scaduto.
	tok, err := Generate(secret, userID, companyID, "admin", "easycashflows", -1)
	require.NoError(t, err)

	_, _, _, err = Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_TokenMalformato(t *testing.T) {
	_, _, _, err := Parse(secret, "non.un.jwt")
	assert.Error(t, err)
}
