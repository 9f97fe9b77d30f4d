package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// BalancesTable provides access to the wallet_balance_records table.
type BalancesTable struct {
	exec bob.Executor
}

var _ IBalanceTable = (*BalancesTable)(nil)

func NewBalancesTable(exec bob.Executor) *BalancesTable {
	return &BalancesTable{exec: exec}
}

func (t *BalancesTable) Insert(ctx context.Context, create *BalanceRecordCreate) (*BalanceRecord, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	q := psql.Insert(
		im.Into(balanceRecordsTable, "id", "division_id", "balance", "captured_at"),
		im.Values(psql.Arg(id, create.DivisionID, create.Balance, create.CapturedAt)),
		im.Returning(balanceColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[BalanceRecord]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *BalancesTable) List(ctx context.Context, filter *BalanceFilter) ([]*BalanceRecord, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(balanceColumns...),
		sm.From(balanceRecordsTable),
		sm.Where(psql.Quote("division_id").EQ(psql.Arg(filter.DivisionID))),
		sm.OrderBy(psql.Quote("captured_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[BalanceRecord]())
	if err != nil {
		return nil, err
	}
	result := make([]*BalanceRecord, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
