package credit

import "github.com/shopspring/decimal"

// Ledger aggregation. Every function here is a pure, deterministic
// computation over the entries it is given: nothing is cached and no
// entry is mutated, so results are always freshly derived.

// StatusSet is a set of entry statuses used to exclude entries from sums
type StatusSet map[EntryStatus]struct{}

// NewStatusSet builds a status set from the given statuses
func NewStatusSet(statuses ...EntryStatus) StatusSet {
	s := make(StatusSet, len(statuses))
	for _, st := range statuses {
		s[st] = struct{}{}
	}
	return s
}

// Has reports whether the status is in the set
func (s StatusSet) Has(status EntryStatus) bool {
	_, ok := s[status]
	return ok
}

// DefaultExcluded is the status set excluded from outstanding totals
func DefaultExcluded() StatusSet {
	return NewStatusSet(EntryStatusPaid)
}

// TotalOutstanding sums the amounts of entries matching the given type
// whose status is not excluded. A nil exclude set defaults to excluding
// paid entries.
func TotalOutstanding(entries []*CreditEntry, entryType EntryType, exclude StatusSet) decimal.Decimal {
	if exclude == nil {
		exclude = DefaultExcluded()
	}
	total := decimal.Zero
	for _, e := range entries {
		if e.Type != entryType || exclude.Has(e.Status) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// CountByStatus counts entries matching both the type and the status
func CountByStatus(entries []*CreditEntry, entryType EntryType, status EntryStatus) int {
	count := 0
	for _, e := range entries {
		if e.Type == entryType && e.Status == status {
			count++
		}
	}
	return count
}

// Partitioned holds the lend and borrow buckets of a ledger
type Partitioned struct {
	Lend   []*CreditEntry
	Borrow []*CreditEntry
}

// Partition splits entries into lend and borrow buckets, preserving the
// original relative order within each bucket.
func Partition(entries []*CreditEntry) Partitioned {
	p := Partitioned{
		Lend:   make([]*CreditEntry, 0, len(entries)),
		Borrow: make([]*CreditEntry, 0),
	}
	for _, e := range entries {
		switch e.Type {
		case EntryTypeLend:
			p.Lend = append(p.Lend, e)
		case EntryTypeBorrow:
			p.Borrow = append(p.Borrow, e)
		}
	}
	return p
}

// Summary is a full derived snapshot of the ledger for one entry type
type Summary struct {
	Type             EntryType       `json:"type"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	PendingCount     int             `json:"pending_count"`
	AcceptedCount    int             `json:"accepted_count"`
	OverdueCount     int             `json:"overdue_count"`
	PaidCount        int             `json:"paid_count"`
}

// Summarize derives the outstanding total and per-status counts for the
// given entry type
func Summarize(entries []*CreditEntry, entryType EntryType) Summary {
	return Summary{
		Type:             entryType,
		TotalOutstanding: TotalOutstanding(entries, entryType, nil),
		PendingCount:     CountByStatus(entries, entryType, EntryStatusPending),
		AcceptedCount:    CountByStatus(entries, entryType, EntryStatusAccepted),
		OverdueCount:     CountByStatus(entries, entryType, EntryStatusOverdue),
		PaidCount:        CountByStatus(entries, entryType, EntryStatusPaid),
	}
}
