package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
)

// Credential binds an identity to an owner for syncing.
type Credential struct {
	ID         uuid.UUID           `db:"id"`
	OwnerID    uuid.UUID           `db:"owner_id"`
	IdentityID int64               `db:"identity_id"`
	IsValid    bool                `db:"is_valid"`
	LastUsed   null.Val[time.Time] `db:"last_used"`
	CreatedAt  time.Time           `db:"created_at"`
}

// CredentialCreate is the input for binding an identity to an owner.
type CredentialCreate struct {
	OwnerID    uuid.UUID
	IdentityID int64
	CreatedAt  time.Time
}

// ICredentialTable defines the interface for credential storage operations.
//
//go:generate mockery --name ICredentialTable --output mock_ICredentialTable.go
type ICredentialTable interface {
	Insert(ctx context.Context, create *CredentialCreate) (*Credential, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Credential, error)
	// ListValidForAccount orders least recently used first, never-used
	// before everything else, ties broken by creation time.
	ListValidForAccount(ctx context.Context, accountID int64) ([]*Credential, error)
	SetValid(ctx context.Context, id uuid.UUID, valid bool) error
	SetValidByIdentity(ctx context.Context, identityID int64, valid bool) (int64, error)
	// MarkUsedByIdentity never moves last_used backwards.
	MarkUsedByIdentity(ctx context.Context, identityID int64, at time.Time) (int64, error)
}

var credentialColumns = []any{
	"id", "owner_id", "identity_id", "is_valid", "last_used", "created_at",
}
