package dto

import "time"

// CreateIBANRequest input per registrare un conto bancario.
type CreateIBANRequest struct {
	CompanyID   string `json:"company_id" validate:"required,uuid4"`
	Value       string `json:"iban" validate:"required,min=15,max=42"`
	BankName    string `json:"bank_name" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateIBANRequest input per aggiornare un conto bancario.
type UpdateIBANRequest struct {
	BankName    *string `json:"bank_name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// ConfigureBankingRequest collega l'IBAN a un provider open banking.
type ConfigureBankingRequest struct {
	Provider string `json:"provider" validate:"required,oneof=fabrick tink"`
	APIKey   string `json:"api_key" validate:"required,min=8"`
	AutoSync bool   `json:"auto_sync"`
}

// IBANResponse output di un conto bancario. L'API key non viene mai esposta.
type IBANResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Value           string    `json:"iban"`
	BankName        string    `json:"bank_name"`
	Description     string    `json:"description"`
	BankingProvider string    `json:"banking_provider,omitempty"`
	BankingLinked   bool      `json:"banking_linked"`
	AutoSync        bool      `json:"auto_sync"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IBANListResponse lista paginata.
type IBANListResponse struct {
	Items []IBANResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
