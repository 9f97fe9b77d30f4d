package sqlconfig

import (
	"database/sql"
	"errors"
)

const (
	ownersTable         = "owners"
	credentialsTable    = "owner_credentials"
	divisionsTable      = "wallet_divisions"
	balanceRecordsTable = "wallet_balance_records"
	journalEntriesTable = "wallet_journal_entries"
	identityTokensTable = "identity_tokens"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("sqlconfig: not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
