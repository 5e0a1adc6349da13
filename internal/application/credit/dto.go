package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/udhaar/backend/internal/domain/credit"
)

// CreateEntryRequest represents a request to write a new entry into the book
type CreateEntryRequest struct {
	Counterparty string          `json:"counterparty" binding:"required,min=1,max=200"`
	Product      string          `json:"product" binding:"required,min=1,max=200"`
	Quantity     int             `json:"quantity" binding:"required,gt=0"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DueDate      time.Time       `json:"due_date" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=lend borrow"`
	IMEIs        []string        `json:"imeis"`
}

// ValidateIMEIsRequest carries a newline-delimited block of candidate IMEIs
type ValidateIMEIsRequest struct {
	Block string `json:"block" binding:"required"`
}

// ValidateIMEIsResponse lists the accepted IMEIs of a clean batch
type ValidateIMEIsResponse struct {
	Accepted []string `json:"accepted"`
}

// EntryListFilter holds listing options for credit entries
type EntryListFilter struct {
	Type         string `form:"type" binding:"omitempty,oneof=lend borrow"`
	Counterparty string `form:"counterparty"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
}

// EntryResponse represents a credit entry in API responses
type EntryResponse struct {
	ID           uuid.UUID       `json:"id"`
	Counterparty string          `json:"counterparty"`
	Product      string          `json:"product"`
	Quantity     int             `json:"quantity"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"due_date"`
	Status       string          `json:"status"`
	Type         string          `json:"type"`
	IMEIs        []string        `json:"imeis"`
	Version      int             `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToEntryResponse maps a domain entry to its response DTO
func ToEntryResponse(e *credit.CreditEntry) EntryResponse {
	return EntryResponse{
		ID:           e.ID,
		Counterparty: e.Counterparty,
		Product:      e.Product,
		Quantity:     e.Quantity,
		Amount:       e.Amount,
		DueDate:      e.DueDate,
		Status:       string(e.Status),
		Type:         string(e.Type),
		IMEIs:        e.IMEIs,
		Version:      e.GetVersion(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// LedgerResponse is the stable lend/borrow partition of the book
type LedgerResponse struct {
	Lend   []EntryResponse `json:"lend"`
	Borrow []EntryResponse `json:"borrow"`
}

// SummaryResponse carries the derived totals for both entry types
type SummaryResponse struct {
	Lend   credit.Summary `json:"lend"`
	Borrow credit.Summary `json:"borrow"`
}

// SweepResponse reports how many entries an overdue sweep flagged
type SweepResponse struct {
	Flagged int `json:"flagged"`
}

func toEntryResponses(entries []*credit.CreditEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryResponse(e))
	}
	return out
}
