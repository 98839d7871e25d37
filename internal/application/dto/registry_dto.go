package dto

import "time"

// ── Core (linea di business) ──────────────────────────────────────────────────

// CreateCoreRequest input per creare una linea di business.
type CreateCoreRequest struct {
	CompanyID   string `json:"company_id" validate:"required,uuid4"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateCoreRequest input per aggiornare una linea di business.
type UpdateCoreRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// CoreResponse output di una linea di business.
type CoreResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CoreListResponse lista paginata.
type CoreListResponse struct {
	Items []CoreResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ── Resource (collaboratore) ─────────────────────────────────────────────────

// CreateResourceRequest input per creare un collaboratore.
type CreateResourceRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid4"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Role      string `json:"role" validate:"omitempty,max=100"`
}

// UpdateResourceRequest input per aggiornare un collaboratore.
type UpdateResourceRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role" validate:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active"`
}

// ResourceResponse output di un collaboratore.
type ResourceResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResourceListResponse lista paginata.
type ResourceListResponse struct {
	Items []ResourceResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Office (sede) ────────────────────────────────────────────────────────────

// CreateOfficeRequest input per creare una sede.
type CreateOfficeRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid4"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Address   string `json:"address"`
	City      string `json:"city"`
}

// UpdateOfficeRequest input per aggiornare una sede.
type UpdateOfficeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	IsActive *bool   `json:"is_active"`
}

// OfficeResponse output di una sede.
type OfficeResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OfficeListResponse lista paginata.
type OfficeListResponse struct {
	Items []OfficeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
