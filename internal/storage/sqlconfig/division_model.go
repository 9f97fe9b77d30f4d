package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
)

// Division is a numbered sub-ledger of an owner's wallet.
type Division struct {
	ID                uuid.UUID           `db:"id"`
	OwnerID           uuid.UUID           `db:"owner_id"`
	DivisionNumber    int                 `db:"division_number"`
	Name              string              `db:"name"`
	JournalLastSynced null.Val[time.Time] `db:"journal_last_synced"`
}

// DivisionUpsert inserts a division or renames an existing one.
type DivisionUpsert struct {
	OwnerID        uuid.UUID
	DivisionNumber int
	Name           string
}

// IDivisionTable defines the interface for division storage operations.
//
//go:generate mockery --name IDivisionTable --output mock_IDivisionTable.go
type IDivisionTable interface {
	Upsert(ctx context.Context, upsert *DivisionUpsert) (*Division, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Division, error)
	// ListByOwner orders by division number.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Division, error)
	SetJournalLastSynced(ctx context.Context, id uuid.UUID, at time.Time) error
}

var divisionColumns = []any{
	"id", "owner_id", "division_number", "name", "journal_last_synced",
}
