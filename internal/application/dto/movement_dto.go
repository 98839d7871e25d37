package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest input per registrare un movimento finanziario.
// Amount è sempre positivo: il segno lo determina Type.
type CreateMovementRequest struct {
	CompanyID      string          `json:"company_id" validate:"required,uuid4"`
	CoreID         string          `json:"core_id" validate:"required,uuid4"`
	Type           string          `json:"type" validate:"required,oneof=income expense"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	Date           time.Time       `json:"date" validate:"required"`
	Description    string          `json:"description" validate:"omitempty,max=500"`
	ReasonID       string          `json:"reason_id" validate:"required,uuid4"`
	StatusID       string          `json:"status_id" validate:"required,uuid4"`
	ResourceID     *string         `json:"resource_id" validate:"omitempty,uuid4"`
	OfficeID       *string         `json:"office_id" validate:"omitempty,uuid4"`
	IBANID         *string         `json:"iban_id" validate:"omitempty,uuid4"`
	TagID          *string         `json:"tag_id" validate:"omitempty,uuid4"`
	SupplierID     *string         `json:"supplier_id" validate:"omitempty,uuid4"`
	CustomerID     *string         `json:"customer_id" validate:"omitempty,uuid4"`
	DocumentNumber string          `json:"document_number" validate:"omitempty,max=50"`
	Notes          string          `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateMovementRequest input di aggiornamento (campi opzionali).
type UpdateMovementRequest struct {
	CoreID         *string          `json:"core_id" validate:"omitempty,uuid4"`
	Type           *string          `json:"type" validate:"omitempty,oneof=income expense"`
	Amount         *decimal.Decimal `json:"amount"`
	VATAmount      *decimal.Decimal `json:"vat_amount"`
	Date           *time.Time       `json:"date"`
	Description    *string          `json:"description" validate:"omitempty,max=500"`
	ReasonID       *string          `json:"reason_id" validate:"omitempty,uuid4"`
	StatusID       *string          `json:"status_id" validate:"omitempty,uuid4"`
	ResourceID     *string          `json:"resource_id" validate:"omitempty,uuid4"`
	OfficeID       *string          `json:"office_id" validate:"omitempty,uuid4"`
	IBANID         *string          `json:"iban_id" validate:"omitempty,uuid4"`
	TagID          *string          `json:"tag_id" validate:"omitempty,uuid4"`
	SupplierID     *string          `json:"supplier_id" validate:"omitempty,uuid4"`
	CustomerID     *string          `json:"customer_id" validate:"omitempty,uuid4"`
	DocumentNumber *string          `json:"document_number" validate:"omitempty,max=50"`
	Notes          *string          `json:"notes" validate:"omitempty,max=2000"`
}

// ListMovementsRequest filtri da query string per il listato.
type ListMovementsRequest struct {
	Type       string `query:"type" validate:"omitempty,oneof=income expense"`
	StatusID   string `query:"status_id" validate:"omitempty,uuid4"`
	CoreID     string `query:"core_id" validate:"omitempty,uuid4"`
	TagID      string `query:"tag_id" validate:"omitempty,uuid4"`
	IBANID     string `query:"iban_id" validate:"omitempty,uuid4"`
	SupplierID string `query:"supplier_id" validate:"omitempty,uuid4"`
	CustomerID string `query:"customer_id" validate:"omitempty,uuid4"`
	From       string `query:"from"` // RFC 3339 o "2006-01-02"
	To         string `query:"to"`
	Limit      int    `query:"limit" validate:"min=0,max=100"`
	Offset     int    `query:"offset" validate:"min=0"`
}

// MovementResponse output di un movimento.
type MovementResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	CoreID         string          `json:"core_id"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	ReasonID       string          `json:"reason_id"`
	StatusID       string          `json:"status_id"`
	ResourceID     *string         `json:"resource_id,omitempty"`
	OfficeID       *string         `json:"office_id,omitempty"`
	IBANID         *string         `json:"iban_id,omitempty"`
	TagID          *string         `json:"tag_id,omitempty"`
	SupplierID     *string         `json:"supplier_id,omitempty"`
	CustomerID     *string         `json:"customer_id,omitempty"`
	DocumentNumber string          `json:"document_number,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MovementListResponse lista paginata.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MovementTotalsResponse totali di periodo per i widget del dashboard.
type MovementTotalsResponse struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}
