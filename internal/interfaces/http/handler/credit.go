package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	creditapp "github.com/udhaar/backend/internal/application/credit"
)

// CreditHandler handles credit ledger API endpoints
type CreditHandler struct {
	BaseHandler
	entryService *creditapp.EntryService
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(entryService *creditapp.EntryService) *CreditHandler {
	return &CreditHandler{
		entryService: entryService,
	}
}

// Create writes a new entry into the credit book. When IMEIs are
// supplied the whole batch is rejected if any one of them is invalid
// or already recorded.
func (h *CreditHandler) Create(c *gin.Context) {
	var req creditapp.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.entryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, entry)
}

// GetByID retrieves a credit entry by ID
func (h *CreditHandler) GetByID(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	entry, err := h.entryService.Get(c.Request.Context(), entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entry)
}

// List returns credit entries, optionally filtered by type or counterparty
func (h *CreditHandler) List(c *gin.Context) {
	var filter creditapp.EntryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	entries, total, err := h.entryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, total, filter.Page, filter.PageSize)
}

// Delete removes a credit entry
func (h *CreditHandler) Delete(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	if err := h.entryService.Delete(c.Request.Context(), entryID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Accept moves a pending entry to accepted
func (h *CreditHandler) Accept(c *gin.Context) {
	h.transition(c, h.entryService.Accept)
}

// Pay settles an entry
func (h *CreditHandler) Pay(c *gin.Context) {
	h.transition(c, h.entryService.Pay)
}

// MarkOverdue flags a single past-due entry as overdue
func (h *CreditHandler) MarkOverdue(c *gin.Context) {
	h.transition(c, h.entryService.MarkOverdue)
}

// SweepOverdue flags every unpaid entry whose due date has passed
func (h *CreditHandler) SweepOverdue(c *gin.Context) {
	result, err := h.entryService.SweepOverdue(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ValidateIMEIs validates a newline-delimited block of IMEIs without
// recording them
func (h *CreditHandler) ValidateIMEIs(c *gin.Context) {
	var req creditapp.ValidateIMEIsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.entryService.ValidateIMEIs(c.Request.Context(), req.Block)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Stats returns the outstanding total and per-status counts for one
// entry type
func (h *CreditHandler) Stats(c *gin.Context) {
	summary, err := h.entryService.Stats(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Summary returns the derived totals for both entry types
func (h *CreditHandler) Summary(c *gin.Context) {
	summary, err := h.entryService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// Ledger returns the book partitioned into lend and borrow sides,
// each in insertion order
func (h *CreditHandler) Ledger(c *gin.Context) {
	ledger, err := h.entryService.Ledger(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ledger)
}

type entryTransition func(ctx context.Context, id uuid.UUID) (*creditapp.EntryResponse, error)

func (h *CreditHandler) transition(c *gin.Context, apply entryTransition) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	entry, err := apply(c.Request.Context(), entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entry)
}
