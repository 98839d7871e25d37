package calendarsync

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easycashflows/api/internal/domain/entity"
)

func TestSignState_Roundtrip(t *testing.T) {
	state, err := signState(stateSecret, "user-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	userID, provider, err := verifyState(stateSecret, state)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.CalendarProviderGoogle, provider)
}

func TestSignState_SecretVuoto(t *testing.T) {
	_, err := signState("", "user-1", entity.CalendarProviderGoogle)
	assert.Error(t, err)
}

func TestVerifyState_SecretSbagliato(t *testing.T) {
	state, err := signState(stateSecret, "user-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	_, _, err = verifyState("un-altro-secret", state)
	assert.Error(t, err)
}

func TestVerifyState_StateScaduto(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		Audience:  jwt.ClaimStrings{entity.CalendarProviderGoogle},
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-30 * time.Minute)),
	}
	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(stateSecret))
	require.NoError(t, err)

	_, _, err = verifyState(stateSecret, state)
	assert.Error(t, err, "uno state scaduto non deve essere accettato")
}

func TestSignState_ScadenzaDieciMinuti(t *testing.T) {
	state, err := signState(stateSecret, "user-1", entity.CalendarProviderGoogle)
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(stateSecret), nil
	})
	require.NoError(t, err)

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, 10*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time),
		"lo state OAuth vale dieci minuti")
}
