package dto

import "time"

// BankingSyncResponse esito dell'importazione transazioni da un provider.
type BankingSyncResponse struct {
	IBANID   string    `json:"iban_id"`
	Imported int       `json:"imported"` // nuovi movimenti creati
	Skipped  int       `json:"skipped"`  // già importati (external_id noto)
	SyncedAt time.Time `json:"synced_at"`
}

// SEPAExportRequest selezione dei movimenti di spesa da esportare come
// bonifici SEPA (pain.001.001.03).
type SEPAExportRequest struct {
	IBANID      string   `json:"iban_id" validate:"required,uuid4"`      // conto di addebito
	MovementIDs []string `json:"movement_ids" validate:"required,min=1,dive,uuid4"`
	Execution   string   `json:"execution_date" validate:"omitempty"` // "2006-01-02"; default domani
}
