package backup

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/easycashflows/api/internal/application/ports"
)

var _ ports.BackupProvider = (*GCSProvider)(nil)

// GCSProvider storage di backup su Google Cloud Storage.
type GCSProvider struct {
	client *storage.Client
	bucket string
}

// NewGCSProvider costruisce il provider. Se credentialsJSON è vuoto usa le
// Application Default Credentials (service account su Cloud Run,
// GOOGLE_APPLICATION_CREDENTIALS in locale).
func NewGCSProvider(ctx context.Context, bucket, credentialsJSON string) (*GCSProvider, error) {
	var client *storage.Client
	var err error
	if credentialsJSON != "" {
		client, err = storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else {
		client, err = storage.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("gcs: creare il client: %w", err)
	}
	return &GCSProvider{client: client, bucket: bucket}, nil
}

// Test verifica che il bucket esista e sia accessibile con le credenziali date.
func (p *GCSProvider) Test(ctx context.Context) error {
	if _, err := p.client.Bucket(p.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("gcs: bucket %q non trovato o non accessibile: %w", p.bucket, err)
	}
	return nil
}

// Upload carica lo snapshot sotto objectKey.
func (p *GCSProvider) Upload(ctx context.Context, objectKey string, data []byte) error {
	wc := p.client.Bucket(p.bucket).Object(objectKey).NewWriter(ctx)
	wc.ContentType = "application/octet-stream"
	return writeAndClose(wc, objectKey, data)
}

// writeAndClose chiude il writer su entrambi i rami: l'oggetto resta appeso
// sul bucket finché la Close non viene chiamata.
func writeAndClose(wc io.WriteCloser, objectKey string, data []byte) error {
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return fmt.Errorf("gcs: scrivere l'oggetto %q: %w", objectKey, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("gcs: chiudere il writer: %w", err)
	}
	return nil
}

// List elenca le chiavi degli snapshot sotto il prefisso.
func (p *GCSProvider) List(ctx context.Context, prefix string) ([]string, error) {
	it := p.client.Bucket(p.bucket).Objects(ctx, &storage.Query{Prefix: prefix})

	var keys []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gcs: elencare gli oggetti: %w", err)
		}
		keys = append(keys, attrs.Name)
	}
	return keys, nil
}

// Download legge uno snapshot esistente.
func (p *GCSProvider) Download(ctx context.Context, objectKey string) ([]byte, error) {
	rc, err := p.client.Bucket(p.bucket).Object(objectKey).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs: aprire l'oggetto %q: %w", objectKey, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("gcs: leggere l'oggetto %q: %w", objectKey, err)
	}
	return data, nil
}

// Close rilascia il client sottostante.
func (p *GCSProvider) Close() error {
	return p.client.Close()
}
