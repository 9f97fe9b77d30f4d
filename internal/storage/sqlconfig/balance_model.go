package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BalanceRecord is one point-in-time balance snapshot. Rows are only
// ever inserted.
type BalanceRecord struct {
	ID         uuid.UUID       `db:"id"`
	DivisionID uuid.UUID       `db:"division_id"`
	Balance    decimal.Decimal `db:"balance"`
	CapturedAt time.Time       `db:"captured_at"`
}

// BalanceRecordCreate is the input for appending a snapshot.
type BalanceRecordCreate struct {
	DivisionID uuid.UUID
	Balance    decimal.Decimal
	CapturedAt time.Time
}

// BalanceFilter specifies filters for listing balance history.
type BalanceFilter struct {
	DivisionID uuid.UUID
	Limit      int
}

// IBalanceTable defines the interface for balance history storage.
//
//go:generate mockery --name IBalanceTable --output mock_IBalanceTable.go
type IBalanceTable interface {
	Insert(ctx context.Context, create *BalanceRecordCreate) (*BalanceRecord, error)
	// List returns newest first.
	List(ctx context.Context, filter *BalanceFilter) ([]*BalanceRecord, error)
}

var balanceColumns = []any{"id", "division_id", "balance", "captured_at"}
