package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// JournalEntry is a wallet journal line keyed by (division, entry id),
// where the entry id is assigned by the remote API.
type JournalEntry struct {
	DivisionID    uuid.UUID           `db:"division_id"`
	EntryID       int64               `db:"entry_id"`
	Amount        decimal.NullDecimal `db:"amount"`
	Balance       decimal.NullDecimal `db:"balance"`
	ContextID     null.Val[int64]     `db:"context_id"`
	ContextIDType null.Val[string]    `db:"context_id_type"`
	Date          time.Time           `db:"date"`
	Description   string              `db:"description"`
	FirstPartyID  null.Val[int64]     `db:"first_party_id"`
	Reason        null.Val[string]    `db:"reason"`
	RefType       string              `db:"ref_type"`
	SecondPartyID null.Val[int64]     `db:"second_party_id"`
	Tax           decimal.NullDecimal `db:"tax"`
	TaxReceiverID null.Val[int64]     `db:"tax_receiver_id"`
	UpdatedAt     time.Time           `db:"updated_at"`
}

// JournalFilter specifies filters for listing journal entries.
type JournalFilter struct {
	DivisionID uuid.UUID
	Limit      int
	Offset     int
}

// IJournalTable defines the interface for journal storage operations.
//
//go:generate mockery --name IJournalTable --output mock_IJournalTable.go
type IJournalTable interface {
	// Upsert overwrites every non-key column of an existing entry.
	Upsert(ctx context.Context, entry *JournalEntry) error
	// List returns newest entries first.
	List(ctx context.Context, filter *JournalFilter) ([]*JournalEntry, error)
}

var journalKeyColumns = []string{"division_id", "entry_id"}

var journalValueColumns = []string{
	"amount", "balance", "context_id", "context_id_type", "date", "description",
	"first_party_id", "reason", "ref_type", "second_party_id", "tax", "tax_receiver_id",
	"updated_at",
}

func journalColumns() []any {
	columns := make([]any, 0, len(journalKeyColumns)+len(journalValueColumns))
	for _, c := range journalKeyColumns {
		columns = append(columns, c)
	}
	for _, c := range journalValueColumns {
		columns = append(columns, c)
	}
	return columns
}
