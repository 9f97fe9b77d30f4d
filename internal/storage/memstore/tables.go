package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

// -- owners --

type ownersTable struct{ view }

func (t *ownersTable) GetOrCreate(_ context.Context, accountID int64, now time.Time) (*sqlconfig.Owner, bool, error) {
	data, unlock := t.lock()
	defer unlock()

	if existing, ok := data.owners[accountID]; ok {
		row := *existing
		return &row, false, nil
	}
	owner := &sqlconfig.Owner{
		ID:        newID(),
		AccountID: accountID,
		IsActive:  true,
		CreatedAt: now,
	}
	data.owners[accountID] = owner
	row := *owner
	return &row, true, nil
}

func (t *ownersTable) FindByAccountID(_ context.Context, accountID int64) (*sqlconfig.Owner, error) {
	data, unlock := t.lock()
	defer unlock()

	owner, ok := data.owners[accountID]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	row := *owner
	return &row, nil
}

func (t *ownersTable) List(_ context.Context, filter *sqlconfig.OwnerFilter) ([]*sqlconfig.Owner, error) {
	data, unlock := t.lock()
	defer unlock()

	var result []*sqlconfig.Owner
	for _, owner := range data.owners {
		if filter != nil && filter.ActiveOnly && !owner.IsActive {
			continue
		}
		row := *owner
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AccountID < result[j].AccountID })
	return result, nil
}

func (t *ownersTable) Update(_ context.Context, accountID int64, update *sqlconfig.OwnerUpdate) error {
	data, unlock := t.lock()
	defer unlock()

	owner, ok := data.owners[accountID]
	if !ok {
		return sqlconfig.ErrNotFound
	}
	if v, ok := update.IsActive.Get(); ok {
		owner.IsActive = v
	}
	if v, ok := update.BalancesLastSynced.Get(); ok {
		owner.BalancesLastSynced = null.From(v)
	}
	if v, ok := update.JournalsLastSynced.Get(); ok {
		owner.JournalsLastSynced = null.From(v)
	}
	return nil
}

// -- credentials --

type credentialsTable struct{ view }

func (t *credentialsTable) Insert(_ context.Context, create *sqlconfig.CredentialCreate) (*sqlconfig.Credential, bool, error) {
	data, unlock := t.lock()
	defer unlock()

	for _, c := range data.credentials {
		if c.OwnerID == create.OwnerID && c.IdentityID == create.IdentityID {
			row := *c
			return &row, false, nil
		}
	}
	credential := &sqlconfig.Credential{
		ID:         newID(),
		OwnerID:    create.OwnerID,
		IdentityID: create.IdentityID,
		IsValid:    true,
		CreatedAt:  create.CreatedAt,
	}
	data.credentials[credential.ID] = credential
	row := *credential
	return &row, true, nil
}

func (t *credentialsTable) FindByID(_ context.Context, id uuid.UUID) (*sqlconfig.Credential, error) {
	data, unlock := t.lock()
	defer unlock()

	credential, ok := data.credentials[id]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	row := *credential
	return &row, nil
}

func (t *credentialsTable) ListValidForAccount(_ context.Context, accountID int64) ([]*sqlconfig.Credential, error) {
	data, unlock := t.lock()
	defer unlock()

	owner, ok := data.owners[accountID]
	if !ok {
		return nil, nil
	}

	var result []*sqlconfig.Credential
	for _, c := range data.credentials {
		if c.OwnerID != owner.ID || !c.IsValid {
			continue
		}
		row := *c
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		a, aUsed := result[i].LastUsed.Get()
		b, bUsed := result[j].LastUsed.Get()
		switch {
		case aUsed != bUsed:
			return !aUsed
		case aUsed && !a.Equal(b):
			return a.Before(b)
		default:
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
	})
	return result, nil
}

func (t *credentialsTable) SetValid(_ context.Context, id uuid.UUID, valid bool) error {
	data, unlock := t.lock()
	defer unlock()

	credential, ok := data.credentials[id]
	if !ok {
		return sqlconfig.ErrNotFound
	}
	credential.IsValid = valid
	return nil
}

func (t *credentialsTable) SetValidByIdentity(_ context.Context, identityID int64, valid bool) (int64, error) {
	data, unlock := t.lock()
	defer unlock()

	var affected int64
	for _, c := range data.credentials {
		if c.IdentityID == identityID {
			c.IsValid = valid
			affected++
		}
	}
	return affected, nil
}

func (t *credentialsTable) MarkUsedByIdentity(_ context.Context, identityID int64, at time.Time) (int64, error) {
	data, unlock := t.lock()
	defer unlock()

	var affected int64
	for _, c := range data.credentials {
		if c.IdentityID != identityID {
			continue
		}
		if last, ok := c.LastUsed.Get(); !ok || at.After(last) {
			c.LastUsed = null.From(at)
		}
		affected++
	}
	return affected, nil
}

// -- divisions --

type divisionsTable struct{ view }

func (t *divisionsTable) Upsert(_ context.Context, upsert *sqlconfig.DivisionUpsert) (*sqlconfig.Division, error) {
	data, unlock := t.lock()
	defer unlock()

	for _, d := range data.divisions {
		if d.OwnerID == upsert.OwnerID && d.DivisionNumber == upsert.DivisionNumber {
			d.Name = upsert.Name
			row := *d
			return &row, nil
		}
	}
	division := &sqlconfig.Division{
		ID:             newID(),
		OwnerID:        upsert.OwnerID,
		DivisionNumber: upsert.DivisionNumber,
		Name:           upsert.Name,
	}
	data.divisions[division.ID] = division
	row := *division
	return &row, nil
}

func (t *divisionsTable) FindByID(_ context.Context, id uuid.UUID) (*sqlconfig.Division, error) {
	data, unlock := t.lock()
	defer unlock()

	division, ok := data.divisions[id]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	row := *division
	return &row, nil
}

func (t *divisionsTable) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*sqlconfig.Division, error) {
	data, unlock := t.lock()
	defer unlock()

	var result []*sqlconfig.Division
	for _, d := range data.divisions {
		if d.OwnerID == ownerID {
			row := *d
			result = append(result, &row)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DivisionNumber < result[j].DivisionNumber })
	return result, nil
}

func (t *divisionsTable) SetJournalLastSynced(_ context.Context, id uuid.UUID, at time.Time) error {
	data, unlock := t.lock()
	defer unlock()

	division, ok := data.divisions[id]
	if !ok {
		return sqlconfig.ErrNotFound
	}
	division.JournalLastSynced = null.From(at)
	return nil
}

// -- balances --

type balancesTable struct{ view }

func (t *balancesTable) Insert(_ context.Context, create *sqlconfig.BalanceRecordCreate) (*sqlconfig.BalanceRecord, error) {
	data, unlock := t.lock()
	defer unlock()

	if _, ok := data.divisions[create.DivisionID]; !ok {
		return nil, sqlconfig.ErrNotFound
	}
	record := &sqlconfig.BalanceRecord{
		ID:         newID(),
		DivisionID: create.DivisionID,
		Balance:    create.Balance,
		CapturedAt: create.CapturedAt,
	}
	data.balances = append(data.balances, record)
	row := *record
	return &row, nil
}

func (t *balancesTable) List(_ context.Context, filter *sqlconfig.BalanceFilter) ([]*sqlconfig.BalanceRecord, error) {
	data, unlock := t.lock()
	defer unlock()

	var result []*sqlconfig.BalanceRecord
	for i := len(data.balances) - 1; i >= 0; i-- {
		if data.balances[i].DivisionID != filter.DivisionID {
			continue
		}
		row := *data.balances[i]
		result = append(result, &row)
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result, nil
}

// -- journal --

type journalTable struct{ view }

func (t *journalTable) Upsert(_ context.Context, entry *sqlconfig.JournalEntry) error {
	data, unlock := t.lock()
	defer unlock()

	if _, ok := data.divisions[entry.DivisionID]; !ok {
		return sqlconfig.ErrNotFound
	}
	row := *entry
	data.journal[journalKey{divisionID: entry.DivisionID, entryID: entry.EntryID}] = &row
	return nil
}

func (t *journalTable) List(_ context.Context, filter *sqlconfig.JournalFilter) ([]*sqlconfig.JournalEntry, error) {
	data, unlock := t.lock()
	defer unlock()

	var all []*sqlconfig.JournalEntry
	for key, entry := range data.journal {
		if key.divisionID == filter.DivisionID {
			row := *entry
			all = append(all, &row)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].EntryID > all[j].EntryID
	})

	if filter.Offset >= len(all) {
		return nil, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return all, nil
}

// -- identity tokens --

type tokensTable struct{ view }

func (t *tokensTable) Upsert(_ context.Context, upsert *sqlconfig.IdentityTokenUpsert) (*sqlconfig.IdentityToken, error) {
	data, unlock := t.lock()
	defer unlock()

	var token *sqlconfig.IdentityToken
	for _, existing := range data.tokens {
		if existing.RefreshToken == upsert.RefreshToken {
			token = existing
			break
		}
	}
	if token == nil {
		token = &sqlconfig.IdentityToken{ID: newID(), RefreshToken: upsert.RefreshToken}
		data.tokens[token.ID] = token
	}
	token.IdentityID = upsert.IdentityID
	token.AccessToken = upsert.AccessToken
	token.Scopes = append([]string(nil), upsert.Scopes...)
	token.ExpiresAt = upsert.ExpiresAt
	token.IsValid = true
	token.UpdatedAt = upsert.UpdatedAt

	row := *token
	return &row, nil
}

func (t *tokensTable) ListValidByIdentity(_ context.Context, identityID int64) ([]*sqlconfig.IdentityToken, error) {
	data, unlock := t.lock()
	defer unlock()

	var result []*sqlconfig.IdentityToken
	for _, token := range data.tokens {
		if token.IdentityID == identityID && token.IsValid {
			row := *token
			result = append(result, &row)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ExpiresAt.After(result[j].ExpiresAt) })
	return result, nil
}

func (t *tokensTable) UpdateAccess(_ context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt, updatedAt time.Time) error {
	data, unlock := t.lock()
	defer unlock()

	token, ok := data.tokens[id]
	if !ok {
		return sqlconfig.ErrNotFound
	}
	token.AccessToken = accessToken
	token.RefreshToken = refreshToken
	token.ExpiresAt = expiresAt
	token.UpdatedAt = updatedAt
	return nil
}

func (t *tokensTable) Invalidate(_ context.Context, id uuid.UUID) error {
	data, unlock := t.lock()
	defer unlock()

	token, ok := data.tokens[id]
	if !ok {
		return sqlconfig.ErrNotFound
	}
	token.IsValid = false
	return nil
}
