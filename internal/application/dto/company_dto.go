package dto

import "time"

// CreateCompanyRequest input per creare un'azienda.
type CreateCompanyRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	VATNumber string `json:"vat_number" validate:"required,min=8,max=20"`
	TaxCode   string `json:"tax_code" validate:"omitempty,max=20"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZIP       string `json:"zip" validate:"omitempty,max=10"`
	Country   string `json:"country" validate:"omitempty,len=2"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// UpdateCompanyRequest input per aggiornare un'azienda (campi opzionali).
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxCode  *string `json:"tax_code" validate:"omitempty,max=20"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	ZIP      *string `json:"zip" validate:"omitempty,max=10"`
	Country  *string `json:"country" validate:"omitempty,len=2"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

// CompanyResponse output di un'azienda.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VATNumber string    `json:"vat_number"`
	TaxCode   string    `json:"tax_code"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	ZIP       string    `json:"zip"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginata di aziende.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
