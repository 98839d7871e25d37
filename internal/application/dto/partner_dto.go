package dto

import "time"

// CreatePartnerRequest input condiviso per fornitori e clienti.
type CreatePartnerRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	VATNumber string `json:"vat_number" validate:"omitempty,min=8,max=20"`
	TaxCode   string `json:"tax_code" validate:"omitempty,max=20"`
	Address   string `json:"address"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	IBAN      string `json:"iban" validate:"omitempty,max=34"`
}

// UpdatePartnerRequest input di aggiornamento condiviso (campi opzionali).
type UpdatePartnerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxCode  *string `json:"tax_code" validate:"omitempty,max=20"`
	Address  *string `json:"address"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	IBAN     *string `json:"iban" validate:"omitempty,max=34"`
	IsActive *bool   `json:"is_active"`
}

// PartnerResponse output condiviso per fornitori e clienti.
type PartnerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VATNumber string    `json:"vat_number"`
	TaxCode   string    `json:"tax_code"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IBAN      string    `json:"iban"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartnerListResponse lista paginata.
type PartnerListResponse struct {
	Items []PartnerResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
