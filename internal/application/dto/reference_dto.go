package dto

import "time"

// CreateTagRequest input per creare un'etichetta.
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateTagRequest input per aggiornare un'etichetta.
type UpdateTagRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=50"`
	Color    *string `json:"color" validate:"omitempty,hexcolor"`
	IsActive *bool   `json:"is_active"`
}

// TagResponse output di un'etichetta.
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagListResponse lista paginata.
type TagListResponse struct {
	Items []TagResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// CreateReferenceRequest input condiviso per stati e causali (solo nome).
type CreateReferenceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateReferenceRequest input di aggiornamento condiviso per stati e causali.
type UpdateReferenceRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active"`
}

// ReferenceResponse output condiviso per stati e causali.
type ReferenceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReferenceListResponse lista paginata.
type ReferenceListResponse struct {
	Items []ReferenceResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
