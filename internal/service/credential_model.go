package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

// Credential is an identity allowed to read an owner's wallet.
type Credential struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	IdentityID int64
	IsValid    bool
	LastUsed   *time.Time
	CreatedAt  time.Time
}

// Selection is a credential together with a live access token for it.
type Selection struct {
	Credential  Credential
	AccessToken string
}

func credentialFromStorage(row *sqlconfig.Credential) Credential {
	return Credential{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		IdentityID: row.IdentityID,
		IsValid:    row.IsValid,
		LastUsed:   row.LastUsed.Ptr(),
		CreatedAt:  row.CreatedAt,
	}
}
