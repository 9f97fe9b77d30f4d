package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/esi"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

var errNoDivisions = errors.New("no divisions stored for owner")

// BalanceStage appends one balance snapshot per division.
type BalanceStage struct {
	api    esi.WalletAPI
	owners *service.OwnerService
	clock  clock.Clock
}

func NewBalanceStage(api esi.WalletAPI, owners *service.OwnerService, c clock.Clock) *BalanceStage {
	return &BalanceStage{api: api, owners: owners, clock: c}
}

// Run returns the number of snapshots written. Remote balances are matched
// to stored divisions by division number; an unknown or repeated number
// fails the whole stage before anything is written.
func (s *BalanceStage) Run(ctx context.Context, tables storage.Tables, owner *service.Owner, token string) (int, error) {
	divisions, err := tables.Divisions.ListByOwner(ctx, owner.ID)
	if err != nil {
		return 0, stageError(StateSyncingBalances, KindStore, owner.AccountID, err)
	}
	if len(divisions) == 0 {
		return 0, stageError(StateSyncingBalances, KindMissingDivision, owner.AccountID, errNoDivisions)
	}

	byNumber := make(map[int]*sqlconfig.Division, len(divisions))
	for _, division := range divisions {
		byNumber[division.DivisionNumber] = division
	}

	records, err := s.api.ListBalances(ctx, owner.AccountID, token)
	if err != nil {
		return 0, remoteError(StateSyncingBalances, owner.AccountID, err)
	}

	seen := make(map[int]bool, len(records))
	for _, record := range records {
		if seen[record.Division] {
			return 0, stageError(StateSyncingBalances, KindRemoteAPI, owner.AccountID,
				fmt.Errorf("division %d listed more than once", record.Division))
		}
		seen[record.Division] = true
		if _, ok := byNumber[record.Division]; !ok {
			return 0, stageError(StateSyncingBalances, KindMissingDivision, owner.AccountID,
				fmt.Errorf("division %d not stored", record.Division))
		}
	}

	now := s.clock.Now()
	for _, record := range records {
		_, err := tables.Balances.Insert(ctx, &sqlconfig.BalanceRecordCreate{
			DivisionID: byNumber[record.Division].ID,
			Balance:    record.Balance,
			CapturedAt: now,
		})
		if err != nil {
			return 0, stageError(StateSyncingBalances, KindStore, owner.AccountID, err)
		}
	}

	if err := s.owners.In(tables).MarkBalancesSynced(ctx, owner.AccountID); err != nil {
		return 0, stageError(StateSyncingBalances, KindStore, owner.AccountID, err)
	}
	return len(records), nil
}
