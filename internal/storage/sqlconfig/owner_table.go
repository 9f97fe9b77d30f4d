package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// OwnersTable provides access to the owners table.
type OwnersTable struct {
	exec bob.Executor
}

var _ IOwnerTable = (*OwnersTable)(nil)

func NewOwnersTable(exec bob.Executor) *OwnersTable {
	return &OwnersTable{exec: exec}
}

// GetOrCreate inserts the owner if absent and reports whether this call
// created it. The insert and the conflict check are one statement, so
// concurrent callers cannot create two rows.
func (t *OwnersTable) GetOrCreate(ctx context.Context, accountID int64, now time.Time) (*Owner, bool, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, false, err
	}

	q := psql.Insert(
		im.Into(ownersTable, "id", "account_id", "is_active", "created_at"),
		im.Values(psql.Arg(id, accountID, true, now)),
		im.OnConflict("account_id").DoNothing(),
		im.Returning(ownerColumns...),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Owner]())
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 1 {
		return &rows[0], true, nil
	}

	owner, err := t.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, false, err
	}
	return owner, false, nil
}

func (t *OwnersTable) FindByAccountID(ctx context.Context, accountID int64) (*Owner, error) {
	q := psql.Select(
		sm.Columns(ownerColumns...),
		sm.From(ownersTable),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Owner]())
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// List returns owners ordered by account id. Nil filter returns all.
func (t *OwnersTable) List(ctx context.Context, filter *OwnerFilter) ([]*Owner, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(ownerColumns...),
		sm.From(ownersTable),
	}
	if filter != nil && filter.ActiveOnly {
		queryMods = append(queryMods, sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))))
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("account_id")).Asc())

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Owner]())
	if err != nil {
		return nil, err
	}
	result := make([]*Owner, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *OwnersTable) Update(ctx context.Context, accountID int64, update *OwnerUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(ownersTable)}
	if v, ok := update.IsActive.Get(); ok {
		queryMods = append(queryMods, um.SetCol("is_active").ToArg(v))
	}
	if v, ok := update.BalancesLastSynced.Get(); ok {
		queryMods = append(queryMods, um.SetCol("balances_last_synced").ToArg(v))
	}
	if v, ok := update.JournalsLastSynced.Get(); ok {
		queryMods = append(queryMods, um.SetCol("journals_last_synced").ToArg(v))
	}
	if len(queryMods) == 1 {
		return nil
	}
	queryMods = append(queryMods, um.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))))

	result, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
