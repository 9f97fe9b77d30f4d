package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
)

// IdentityToken is an OAuth grant held for an identity. It belongs to the
// identity collaborator, not to any owner.
type IdentityToken struct {
	ID           uuid.UUID      `db:"id"`
	IdentityID   int64          `db:"identity_id"`
	AccessToken  string         `db:"access_token"`
	RefreshToken string         `db:"refresh_token"`
	Scopes       pq.StringArray `db:"scopes"`
	ExpiresAt    time.Time      `db:"expires_at"`
	IsValid      bool           `db:"is_valid"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// IdentityTokenUpsert stores a grant, replacing one with the same
// refresh token.
type IdentityTokenUpsert struct {
	IdentityID   int64
	AccessToken  string
	RefreshToken string
	Scopes       []string
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

// ITokenTable defines the interface for identity token storage.
//
//go:generate mockery --name ITokenTable --output mock_ITokenTable.go
type ITokenTable interface {
	Upsert(ctx context.Context, upsert *IdentityTokenUpsert) (*IdentityToken, error)
	// ListValidByIdentity returns the freshest grant first.
	ListValidByIdentity(ctx context.Context, identityID int64) ([]*IdentityToken, error)
	UpdateAccess(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt, updatedAt time.Time) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

var tokenColumns = []any{
	"id", "identity_id", "access_token", "refresh_token", "scopes", "expires_at", "is_valid", "updated_at",
}
