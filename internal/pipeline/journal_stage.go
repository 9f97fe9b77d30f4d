package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/esi"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

var errDivisionsNotLoaded = errors.New("divisions not loaded, run the division sync first")

// JournalStage copies each division's journal into the store.
type JournalStage struct {
	api    esi.WalletAPI
	owners *service.OwnerService
	clock  clock.Clock
}

func NewJournalStage(api esi.WalletAPI, owners *service.OwnerService, c clock.Clock) *JournalStage {
	return &JournalStage{api: api, owners: owners, clock: c}
}

// Plan lists the divisions to fan out over. An owner without divisions is
// a soft EMPTY_PRECONDITION outcome.
func (s *JournalStage) Plan(ctx context.Context, tables storage.Tables, owner *service.Owner) ([]*sqlconfig.Division, error) {
	divisions, err := tables.Divisions.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, stageError(StateSyncingJournals, KindStore, owner.AccountID, err)
	}
	if len(divisions) == 0 {
		return nil, stageError(StateSyncingJournals, KindEmptyPrecondition, owner.AccountID, errDivisionsNotLoaded)
	}
	return divisions, nil
}

// RunDivision upserts every remote journal entry of one division and
// returns how many were written.
func (s *JournalStage) RunDivision(ctx context.Context, tables storage.Tables, owner *service.Owner, divisionID uuid.UUID, token string) (int, error) {
	division, err := tables.Divisions.FindByID(ctx, divisionID)
	if err != nil {
		return 0, stageError(StateSyncingJournals, KindStore, owner.AccountID, fmt.Errorf("division %s: %w", divisionID, err))
	}
	if division.OwnerID != owner.ID {
		return 0, stageError(StateSyncingJournals, KindMissingDivision, owner.AccountID,
			fmt.Errorf("division %s belongs to another owner", divisionID))
	}

	now := s.clock.Now()
	count := 0
	for record, err := range s.api.ListJournalEntries(ctx, owner.AccountID, division.DivisionNumber, token) {
		if err != nil {
			return 0, remoteError(StateSyncingJournals, owner.AccountID,
				fmt.Errorf("division %d: %w", division.DivisionNumber, err))
		}
		if err := tables.Journal.Upsert(ctx, journalEntry(division.ID, record, now)); err != nil {
			return 0, stageError(StateSyncingJournals, KindStore, owner.AccountID,
				fmt.Errorf("entry %d: %w", record.ID, err))
		}
		count++
	}

	if err := tables.Divisions.SetJournalLastSynced(ctx, division.ID, now); err != nil {
		return 0, stageError(StateSyncingJournals, KindStore, owner.AccountID, err)
	}
	if err := s.owners.In(tables).MarkJournalsSynced(ctx, owner.AccountID); err != nil {
		return 0, stageError(StateSyncingJournals, KindStore, owner.AccountID, err)
	}
	return count, nil
}

func journalEntry(divisionID uuid.UUID, record esi.JournalRecord, now time.Time) *sqlconfig.JournalEntry {
	return &sqlconfig.JournalEntry{
		DivisionID:    divisionID,
		EntryID:       record.ID,
		Amount:        record.Amount,
		Balance:       record.Balance,
		ContextID:     null.FromPtr(record.ContextID),
		ContextIDType: null.FromPtr(record.ContextIDType),
		Date:          record.Date,
		Description:   record.Description,
		FirstPartyID:  null.FromPtr(record.FirstPartyID),
		Reason:        null.FromPtr(record.Reason),
		RefType:       record.RefType,
		SecondPartyID: null.FromPtr(record.SecondPartyID),
		Tax:           record.Tax,
		TaxReceiverID: null.FromPtr(record.TaxReceiverID),
		UpdatedAt:     now,
	}
}
