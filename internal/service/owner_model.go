package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

// Owner represents a synced account in the service layer.
type Owner struct {
	ID                 uuid.UUID
	AccountID          int64
	IsActive           bool
	BalancesLastSynced *time.Time
	JournalsLastSynced *time.Time
	CreatedAt          time.Time
}

func ownerFromStorage(row *sqlconfig.Owner) *Owner {
	return &Owner{
		ID:                 row.ID,
		AccountID:          row.AccountID,
		IsActive:           row.IsActive,
		BalancesLastSynced: row.BalancesLastSynced.Ptr(),
		JournalsLastSynced: row.JournalsLastSynced.Ptr(),
		CreatedAt:          row.CreatedAt,
	}
}
