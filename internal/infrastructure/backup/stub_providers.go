package backup

import (
	"context"
	"fmt"

	"github.com/easycashflows/api/internal/application/ports"
)

var (
	_ ports.BackupProvider = (*S3Provider)(nil)
	_ ports.BackupProvider = (*AzureProvider)(nil)
)

// S3Provider accetta e valida la configurazione S3 ma non esegue operazioni:
// l'integrazione reale non è ancora attiva. Ogni chiamata restituisce un
// errore descrittivo così la UI può mostrare lo stato.
type S3Provider struct {
	bucket string
	region string
}

// NewS3Provider costruisce lo stub con la configurazione validata.
func NewS3Provider(bucket, region string) *S3Provider {
	return &S3Provider{bucket: bucket, region: region}
}

func (p *S3Provider) Test(context.Context) error {
	return fmt.Errorf("s3: provider non ancora disponibile (bucket %q, region %q): configurazione salvata, backup non eseguiti", p.bucket, p.region)
}

func (p *S3Provider) Upload(context.Context, string, []byte) error {
	return fmt.Errorf("s3: provider non ancora disponibile")
}

func (p *S3Provider) List(context.Context, string) ([]string, error) {
	return nil, fmt.Errorf("s3: provider non ancora disponibile")
}

func (p *S3Provider) Download(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("s3: provider non ancora disponibile")
}

// AzureProvider come S3Provider, per Azure Blob Storage.
type AzureProvider struct {
	container string
	account   string
}

// NewAzureProvider costruisce lo stub con la configurazione validata.
func NewAzureProvider(container, account string) *AzureProvider {
	return &AzureProvider{container: container, account: account}
}

func (p *AzureProvider) Test(context.Context) error {
	return fmt.Errorf("azure: provider non ancora disponibile (container %q, account %q): configurazione salvata, backup non eseguiti", p.container, p.account)
}

func (p *AzureProvider) Upload(context.Context, string, []byte) error {
	return fmt.Errorf("azure: provider non ancora disponibile")
}

func (p *AzureProvider) List(context.Context, string) ([]string, error) {
	return nil, fmt.Errorf("azure: provider non ancora disponibile")
}

func (p *AzureProvider) Download(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("azure: provider non ancora disponibile")
}
