// Package credit contains the application services for the udhaar book.
package credit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/udhaar/backend/internal/domain/credit"
	"github.com/udhaar/backend/internal/domain/imei"
	"github.com/udhaar/backend/internal/domain/shared"
)

// EntryService handles credit entry operations and derived ledger views
type EntryService struct {
	repo   credit.CreditEntryRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewEntryService creates a new EntryService
func NewEntryService(repo credit.CreditEntryRepository, logger *zap.Logger) *EntryService {
	return &EntryService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates and writes a new entry into the book. Supplied IMEIs
// are checked for format and for uniqueness across every other entry.
func (s *EntryService) Create(ctx context.Context, req CreateEntryRequest) (*EntryResponse, error) {
	entryType, err := credit.ParseEntryType(req.Type)
	if err != nil {
		return nil, err
	}

	var accepted []string
	if len(req.IMEIs) > 0 {
		existing, err := s.repo.CollectIMEIs(ctx, uuid.Nil)
		if err != nil {
			return nil, err
		}
		accepted, err = imei.ValidateAll(req.IMEIs, imei.NewSet(existing...))
		if err != nil {
			return nil, err
		}
	}

	entry, err := credit.NewCreditEntry(req.Counterparty, req.Product, req.Quantity,
		req.Amount, req.DueDate, entryType, accepted)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.logEvents(entry)
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// ValidateIMEIs checks a newline-delimited block of candidates against
// every IMEI already in the book, without persisting anything. The
// batch is all-or-nothing.
func (s *EntryService) ValidateIMEIs(ctx context.Context, block string) (*ValidateIMEIsResponse, error) {
	existing, err := s.repo.CollectIMEIs(ctx, uuid.Nil)
	if err != nil {
		return nil, err
	}

	accepted, err := imei.ValidateBatch(block, imei.NewSet(existing...))
	if err != nil {
		return nil, err
	}

	return &ValidateIMEIsResponse{Accepted: accepted}, nil
}

// Get retrieves an entry by ID
func (s *EntryService) Get(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// List returns entries filtered by type or counterparty with pagination
func (s *EntryService) List(ctx context.Context, filter EntryListFilter) ([]EntryResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	repoFilter := shared.Filter{
		Offset:  (filter.Page - 1) * filter.PageSize,
		Limit:   filter.PageSize,
		OrderBy: "created_at ASC",
	}

	var page shared.Paginated[*credit.CreditEntry]
	var err error
	switch {
	case filter.Counterparty != "":
		page, err = s.repo.FindByCounterparty(ctx, filter.Counterparty, repoFilter)
	case filter.Type != "":
		entryType, typeErr := credit.ParseEntryType(filter.Type)
		if typeErr != nil {
			return nil, 0, typeErr
		}
		page, err = s.repo.FindByType(ctx, entryType, repoFilter)
	default:
		entries, allErr := s.repo.FindAll(ctx)
		if allErr != nil {
			return nil, 0, allErr
		}
		return toEntryResponses(entries), int64(len(entries)), nil
	}
	if err != nil {
		return nil, 0, err
	}

	return toEntryResponses(page.Items), page.Total, nil
}

// Delete removes an entry from the book
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("credit entry deleted", zap.String("entry_id", id.String()))
	return nil
}

// Accept moves a pending entry to accepted
func (s *EntryService) Accept(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	return s.transition(ctx, id, func(e *credit.CreditEntry) error {
		return e.Accept()
	})
}

// Pay settles an entry
func (s *EntryService) Pay(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	return s.transition(ctx, id, func(e *credit.CreditEntry) error {
		return e.MarkPaid()
	})
}

// MarkOverdue explicitly flags one entry whose due date has passed
func (s *EntryService) MarkOverdue(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	now := s.now()
	return s.transition(ctx, id, func(e *credit.CreditEntry) error {
		return e.MarkOverdue(now)
	})
}

// SweepOverdue flags every unpaid entry whose due date has passed and
// returns how many were flagged
func (s *EntryService) SweepOverdue(ctx context.Context) (*SweepResponse, error) {
	due, err := s.repo.FindDue(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	flagged := 0
	for _, entry := range due {
		if err := entry.MarkOverdue(now); err != nil {
			continue
		}
		if err := s.repo.Save(ctx, entry); err != nil {
			return nil, err
		}
		s.logEvents(entry)
		flagged++
	}

	if flagged > 0 {
		s.logger.Info("overdue sweep complete", zap.Int("flagged", flagged))
	}
	return &SweepResponse{Flagged: flagged}, nil
}

// Stats derives the outstanding total and per-status counts for one type
func (s *EntryService) Stats(ctx context.Context, rawType string) (*credit.Summary, error) {
	entryType, err := credit.ParseEntryType(rawType)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := credit.Summarize(entries, entryType)
	return &summary, nil
}

// Summary derives totals for both entry types in one pass
func (s *EntryService) Summary(ctx context.Context) (*SummaryResponse, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		Lend:   credit.Summarize(entries, credit.EntryTypeLend),
		Borrow: credit.Summarize(entries, credit.EntryTypeBorrow),
	}, nil
}

// Ledger returns the stable lend/borrow partition of the whole book
func (s *EntryService) Ledger(ctx context.Context) (*LedgerResponse, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	p := credit.Partition(entries)
	return &LedgerResponse{
		Lend:   toEntryResponses(p.Lend),
		Borrow: toEntryResponses(p.Borrow),
	}, nil
}

func (s *EntryService) transition(ctx context.Context, id uuid.UUID, apply func(*credit.CreditEntry) error) (*EntryResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(entry); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	s.logEvents(entry)
	resp := ToEntryResponse(entry)
	return &resp, nil
}

func (s *EntryService) logEvents(entry *credit.CreditEntry) {
	for _, event := range entry.GetDomainEvents() {
		s.logger.Info("domain event",
			zap.String("event_type", event.GetEventType()),
			zap.String("aggregate_id", event.GetAggregateID().String()),
		)
	}
	entry.ClearDomainEvents()
}
