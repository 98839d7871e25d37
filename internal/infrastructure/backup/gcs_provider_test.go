package backup

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriteCloser struct {
	buf      bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (w *fakeWriteCloser) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return w.buf.Write(p)
}

func (w *fakeWriteCloser) Close() error {
	w.closed = true
	return w.closeErr
}

func TestWriteAndClose_ScriveEChiude(t *testing.T) {
	w := &fakeWriteCloser{}

	err := writeAndClose(w, "backups/company-1/x.json", []byte(`{"items":[]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, w.buf.String())
	assert.True(t, w.closed)
}

func TestWriteAndClose_ChiudeAncheSeLaScritturaFallisce(t *testing.T) {
	w := &fakeWriteCloser{writeErr: errors.New("quota superata")}

	err := writeAndClose(w, "backups/company-1/x.json", []byte("dati"))
	require.Error(t, err)
	assert.True(t, w.closed, "il writer va chiuso anche quando la Write fallisce")
}

func TestWriteAndClose_ErroreInChiusura(t *testing.T) {
	w := &fakeWriteCloser{closeErr: errors.New("commit fallito")}

	err := writeAndClose(w, "backups/company-1/x.json", []byte("dati"))
	assert.Error(t, err)
}
