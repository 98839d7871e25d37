package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_NumeroItalianoSenzaPrefisso(t *testing.T) {
	got, err := Normalize("347 123 4567")
	require.NoError(t, err)
	assert.Equal(t, "+393471234567", got, "il default regionale è IT")
}

func TestNormalize_GiaInE164(t *testing.T) {
	got, err := Normalize("+393471234567")
	require.NoError(t, err)
	assert.Equal(t, "+393471234567", got)
}

func TestNormalize_PrefissoEstero(t *testing.T) {
	got, err := Normalize("+49 30 901820")
	require.NoError(t, err)
	assert.Equal(t, "+4930901820", got)
}

func TestNormalize_NumeroInvalido(t *testing.T) {
	_, err := Normalize("123")
	assert.Error(t, err)
}

func TestNormalize_Vuoto(t *testing.T) {
	_, err := Normalize("")
	assert.Error(t, err)
}
