package domain

import "errors"

// Errori di dominio (senza dipendenze esterne).
var (
	ErrNotFound           = errors.New("risorsa non trovata")
	ErrUserNotFound       = errors.New("utente non trovato")
	ErrEmailAlreadyExists = errors.New("email già registrata")
	ErrInvalidInput       = errors.New("input non valido")
	ErrDuplicate          = errors.New("risorsa duplicata")
	ErrUnauthorized       = errors.New("non autorizzato")
	ErrForbidden          = errors.New("accesso negato")
	ErrConflict           = errors.New("conflitto con lo stato attuale")
	ErrInUse              = errors.New("risorsa referenziata da altri record")
	ErrInactiveReference  = errors.New("riferimento a un record disattivato")
	ErrNotConfigured      = errors.New("provider non configurato")
	ErrUnavailable        = errors.New("servizio non disponibile")
)
