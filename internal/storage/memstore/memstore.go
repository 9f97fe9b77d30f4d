// Package memstore is an in-process implementation of the storage tables.
// Transactions are serialized: a Writer holds the store exclusively until
// it commits or rolls back, and a rollback restores the snapshot taken at
// begin. Code running inside a transaction must only use the Writer's
// tables.
package memstore

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

type journalKey struct {
	divisionID uuid.UUID
	entryID    int64
}

type state struct {
	owners      map[int64]*sqlconfig.Owner
	credentials map[uuid.UUID]*sqlconfig.Credential
	divisions   map[uuid.UUID]*sqlconfig.Division
	balances    []*sqlconfig.BalanceRecord
	journal     map[journalKey]*sqlconfig.JournalEntry
	tokens      map[uuid.UUID]*sqlconfig.IdentityToken
}

func newState() *state {
	return &state{
		owners:      make(map[int64]*sqlconfig.Owner),
		credentials: make(map[uuid.UUID]*sqlconfig.Credential),
		divisions:   make(map[uuid.UUID]*sqlconfig.Division),
		journal:     make(map[journalKey]*sqlconfig.JournalEntry),
		tokens:      make(map[uuid.UUID]*sqlconfig.IdentityToken),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.owners {
		row := *v
		c.owners[k] = &row
	}
	for k, v := range s.credentials {
		row := *v
		c.credentials[k] = &row
	}
	for k, v := range s.divisions {
		row := *v
		c.divisions[k] = &row
	}
	c.balances = make([]*sqlconfig.BalanceRecord, len(s.balances))
	for i, v := range s.balances {
		row := *v
		c.balances[i] = &row
	}
	for k, v := range s.journal {
		row := *v
		c.journal[k] = &row
	}
	for k, v := range s.tokens {
		row := *v
		row.Scopes = append([]string(nil), v.Scopes...)
		c.tokens[k] = &row
	}
	return c
}

type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	data *state
}

func New() *Store {
	return &Store{data: newState()}
}

// Storage returns a storage.Storage backed by this store.
func (s *Store) Storage() *storage.Storage {
	return storage.New(s.tables(false), s.begin)
}

func (s *Store) begin(_ context.Context) (*storage.Writer, error) {
	s.txMu.Lock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	return storage.NewWriter(&memTx{store: s, snapshot: snapshot}, s.tables(true)), nil
}

func (s *Store) tables(inTx bool) storage.Tables {
	v := view{store: s, inTx: inTx}
	return storage.Tables{
		Owners:      &ownersTable{v},
		Credentials: &credentialsTable{v},
		Divisions:   &divisionsTable{v},
		Balances:    &balancesTable{v},
		Journal:     &journalTable{v},
		Tokens:      &tokensTable{v},
	}
}

type view struct {
	store *Store
	inTx  bool
}

// lock acquires the store for one statement. Outside a transaction it
// also waits for any open transaction to finish.
func (v view) lock() (*state, func()) {
	if !v.inTx {
		v.store.txMu.Lock()
	}
	v.store.mu.Lock()
	return v.store.data, func() {
		v.store.mu.Unlock()
		if !v.inTx {
			v.store.txMu.Unlock()
		}
	}
}

type memTx struct {
	store    *Store
	snapshot *state
	done     bool
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.txMu.Unlock()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Lock()
	t.store.data = t.snapshot
	t.store.mu.Unlock()
	t.store.txMu.Unlock()
	return nil
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
