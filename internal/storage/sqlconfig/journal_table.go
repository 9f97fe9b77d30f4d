package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// JournalTable provides access to the wallet_journal_entries table.
type JournalTable struct {
	exec bob.Executor
}

var _ IJournalTable = (*JournalTable)(nil)

func NewJournalTable(exec bob.Executor) *JournalTable {
	return &JournalTable{exec: exec}
}

func (t *JournalTable) Upsert(ctx context.Context, entry *JournalEntry) error {
	into := append(append([]string{}, journalKeyColumns...), journalValueColumns...)

	q := psql.Insert(
		im.Into(journalEntriesTable, into...),
		im.Values(psql.Arg(
			entry.DivisionID, entry.EntryID,
			entry.Amount, entry.Balance, entry.ContextID, entry.ContextIDType,
			entry.Date, entry.Description, entry.FirstPartyID, entry.Reason,
			entry.RefType, entry.SecondPartyID, entry.Tax, entry.TaxReceiverID,
			entry.UpdatedAt,
		)),
		im.OnConflict("division_id", "entry_id").DoUpdate(
			im.SetExcluded(journalValueColumns...),
		),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *JournalTable) List(ctx context.Context, filter *JournalFilter) ([]*JournalEntry, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(journalColumns()...),
		sm.From(journalEntriesTable),
		sm.Where(psql.Quote("division_id").EQ(psql.Arg(filter.DivisionID))),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("entry_id")).Desc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[JournalEntry]())
	if err != nil {
		return nil, err
	}
	result := make([]*JournalEntry, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
