package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

const (
	DefaultJournalLimit = 50
	MaxJournalLimit     = 500
)

var ErrDivisionNotFound = errors.New("service: division not found")

// WalletService reads the synced wallet data of an owner.
type WalletService struct {
	tables storage.Tables
}

func NewWalletService(store *storage.Storage) *WalletService {
	return &WalletService{tables: store.Tables}
}

func (s *WalletService) In(tables storage.Tables) *WalletService {
	return &WalletService{tables: tables}
}

// Balances returns every division of the owner, ordered by division
// number, each with its latest snapshot.
func (s *WalletService) Balances(ctx context.Context, accountID int64) ([]DivisionBalance, error) {
	divisions, err := s.divisions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result := make([]DivisionBalance, len(divisions))
	for i, division := range divisions {
		result[i] = DivisionBalance{
			DivisionNumber:    division.DivisionNumber,
			Name:              division.Name,
			JournalLastSynced: division.JournalLastSynced.Ptr(),
		}

		latest, err := s.tables.Balances.List(ctx, &sqlconfig.BalanceFilter{DivisionID: division.ID, Limit: 1})
		if err != nil {
			return nil, fmt.Errorf("division %d balances: %w", division.DivisionNumber, err)
		}
		if len(latest) == 1 {
			balance := latest[0].Balance
			capturedAt := latest[0].CapturedAt
			result[i].Balance = &balance
			result[i].CapturedAt = &capturedAt
		}
	}
	return result, nil
}

// Journal pages through one division's journal, newest first. A limit
// outside 1..MaxJournalLimit falls back to DefaultJournalLimit.
func (s *WalletService) Journal(ctx context.Context, accountID int64, divisionNumber, limit, offset int) ([]JournalEntry, error) {
	divisions, err := s.divisions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var divisionRow *sqlconfig.Division
	for _, division := range divisions {
		if division.DivisionNumber == divisionNumber {
			divisionRow = division
			break
		}
	}
	if divisionRow == nil {
		return nil, ErrDivisionNotFound
	}

	if limit < 1 || limit > MaxJournalLimit {
		limit = DefaultJournalLimit
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := s.tables.Journal.List(ctx, &sqlconfig.JournalFilter{
		DivisionID: divisionRow.ID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}

	result := make([]JournalEntry, len(rows))
	for i, row := range rows {
		result[i] = journalEntryFromStorage(row)
	}
	return result, nil
}

func (s *WalletService) divisions(ctx context.Context, accountID int64) ([]*sqlconfig.Division, error) {
	owner, err := s.tables.Owners.FindByAccountID(ctx, accountID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.tables.Divisions.ListByOwner(ctx, owner.ID)
}
