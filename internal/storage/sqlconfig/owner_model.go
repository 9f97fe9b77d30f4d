package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Owner is the sync aggregate for one external account.
type Owner struct {
	ID                 uuid.UUID           `db:"id"`
	AccountID          int64               `db:"account_id"`
	IsActive           bool                `db:"is_active"`
	BalancesLastSynced null.Val[time.Time] `db:"balances_last_synced"`
	JournalsLastSynced null.Val[time.Time] `db:"journals_last_synced"`
	CreatedAt          time.Time           `db:"created_at"`
}

// OwnerUpdate only writes the fields that are set.
type OwnerUpdate struct {
	IsActive           omit.Val[bool]
	BalancesLastSynced omit.Val[time.Time]
	JournalsLastSynced omit.Val[time.Time]
}

// OwnerFilter specifies filters for listing owners.
type OwnerFilter struct {
	ActiveOnly bool
}

// IOwnerTable defines the interface for owner storage operations.
//
//go:generate mockery --name IOwnerTable --output mock_IOwnerTable.go
type IOwnerTable interface {
	GetOrCreate(ctx context.Context, accountID int64, now time.Time) (*Owner, bool, error)
	FindByAccountID(ctx context.Context, accountID int64) (*Owner, error)
	List(ctx context.Context, filter *OwnerFilter) ([]*Owner, error)
	Update(ctx context.Context, accountID int64, update *OwnerUpdate) error
}

var ownerColumns = []any{
	"id", "account_id", "is_active", "balances_last_synced", "journals_last_synced", "created_at",
}
