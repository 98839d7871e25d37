package calendarsync

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Lo state OAuth è un JWT di breve durata: lega la callback all'utente che ha
// avviato il flusso senza tenere stato lato server.
const stateTTL = 10 * time.Minute

func signState(secret, userID, provider string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("calendar: secret dello state vuoto")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Audience:  jwt.ClaimStrings{provider},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func verifyState(secret, state string) (userID, provider string, err error) {
	token, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metodo di firma inatteso: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || len(claims.Audience) == 0 {
		return "", "", fmt.Errorf("state non valido")
	}
	return claims.Subject, claims.Audience[0], nil
}
