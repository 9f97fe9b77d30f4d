package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

// OwnerService maps account ids to their Owner aggregate.
type OwnerService struct {
	tables storage.Tables
	clock  clock.Clock
}

// NewOwnerService creates a new OwnerService.
func NewOwnerService(store *storage.Storage, c clock.Clock) *OwnerService {
	return &OwnerService{tables: store.Tables, clock: c}
}

func (s *OwnerService) In(tables storage.Tables) *OwnerService {
	return &OwnerService{tables: tables, clock: s.clock}
}

// GetOrCreate returns the owner for accountID, creating it on first sight.
// Concurrent callers for the same account see exactly one wasCreated.
func (s *OwnerService) GetOrCreate(ctx context.Context, accountID int64) (*Owner, bool, error) {
	row, created, err := s.tables.Owners.GetOrCreate(ctx, accountID, s.clock.Now())
	if err != nil {
		return nil, false, fmt.Errorf("owner %d: %w", accountID, err)
	}
	return ownerFromStorage(row), created, nil
}

func (s *OwnerService) Get(ctx context.Context, accountID int64) (*Owner, error) {
	row, err := s.tables.Owners.FindByAccountID(ctx, accountID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return ownerFromStorage(row), nil
}

// List returns owners ordered by account id.
func (s *OwnerService) List(ctx context.Context, activeOnly bool) ([]*Owner, error) {
	rows, err := s.tables.Owners.List(ctx, &sqlconfig.OwnerFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	owners := make([]*Owner, len(rows))
	for i, row := range rows {
		owners[i] = ownerFromStorage(row)
	}
	return owners, nil
}

func (s *OwnerService) SetActive(ctx context.Context, accountID int64, active bool) error {
	err := s.tables.Owners.Update(ctx, accountID, &sqlconfig.OwnerUpdate{IsActive: omit.From(active)})
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrOwnerNotFound
	}
	return err
}

func (s *OwnerService) MarkBalancesSynced(ctx context.Context, accountID int64) error {
	return s.tables.Owners.Update(ctx, accountID, &sqlconfig.OwnerUpdate{
		BalancesLastSynced: omit.From(s.clock.Now()),
	})
}

func (s *OwnerService) MarkJournalsSynced(ctx context.Context, accountID int64) error {
	return s.tables.Owners.Update(ctx, accountID, &sqlconfig.OwnerUpdate{
		JournalsLastSynced: omit.From(s.clock.Now()),
	})
}
