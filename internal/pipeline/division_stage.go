package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/esi"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

const masterWalletName = "Master Wallet"

// DivisionStage reconciles an owner's wallet divisions with the remote
// list. Division names are cached remotely, so the fetch is skipped while
// the owner's balances are fresh.
type DivisionStage struct {
	api       esi.WalletAPI
	clock     clock.Clock
	freshness time.Duration
}

func NewDivisionStage(api esi.WalletAPI, c clock.Clock, freshness time.Duration) *DivisionStage {
	return &DivisionStage{api: api, clock: c, freshness: freshness}
}

// Run reports whether the remote list was fetched.
func (s *DivisionStage) Run(ctx context.Context, tables storage.Tables, owner *service.Owner, token string) (bool, error) {
	if s.Fresh(owner) {
		return false, nil
	}

	records, err := s.api.ListDivisions(ctx, owner.AccountID, token)
	if err != nil {
		return true, remoteError(StateSyncingDivisions, owner.AccountID, err)
	}

	for _, record := range records {
		_, err := tables.Divisions.Upsert(ctx, &sqlconfig.DivisionUpsert{
			OwnerID:        owner.ID,
			DivisionNumber: record.Division,
			Name:           DivisionName(record),
		})
		if err != nil {
			return true, stageError(StateSyncingDivisions, KindStore, owner.AccountID,
				fmt.Errorf("division %d: %w", record.Division, err))
		}
	}
	return true, nil
}

// Fresh reports whether balances were synced within the freshness window.
func (s *DivisionStage) Fresh(owner *service.Owner) bool {
	if owner.BalancesLastSynced == nil {
		return false
	}
	return s.clock.Now().Before(owner.BalancesLastSynced.Add(s.freshness))
}

// DivisionName is the stored name for a remote division. Division 1 never
// carries a name remotely and is always the master wallet.
func DivisionName(record esi.DivisionRecord) string {
	if record.Division == 1 {
		return masterWalletName
	}
	if record.Name == nil || strings.TrimSpace(*record.Name) == "" {
		return fmt.Sprintf("Division %d", record.Division)
	}
	return *record.Name
}
