package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowCounter_RispettaIlLimite(t *testing.T) {
	w := newWindowCounter()

	for i := 0; i < 5; i++ {
		assert.True(t, w.allow("10.0.0.1", 5, time.Minute), "richiesta %d entro il limite", i+1)
	}
	assert.False(t, w.allow("10.0.0.1", 5, time.Minute), "la sesta richiesta deve essere bloccata")
}

func TestWindowCounter_ChiaviIndipendenti(t *testing.T) {
	w := newWindowCounter()

	for i := 0; i < 3; i++ {
		w.allow("10.0.0.1", 3, time.Minute)
	}
	assert.False(t, w.allow("10.0.0.1", 3, time.Minute))
	assert.True(t, w.allow("10.0.0.2", 3, time.Minute), "un altro IP non deve essere toccato dal limite del primo")
}

func TestWindowCounter_FinestraScadutaResetta(t *testing.T) {
	w := newWindowCounter()

	assert.True(t, w.allow("10.0.0.1", 1, 10*time.Millisecond))
	assert.False(t, w.allow("10.0.0.1", 1, 10*time.Millisecond))

	time.Sleep(15 * time.Millisecond)
	assert.True(t, w.allow("10.0.0.1", 1, 10*time.Millisecond), "dopo la scadenza della finestra il contatore riparte")
}

func TestWindowCounter_LimiteZeroDisabilita(t *testing.T) {
	w := newWindowCounter()
	for i := 0; i < 100; i++ {
		assert.True(t, w.allow("10.0.0.1", 0, time.Minute))
	}
}
