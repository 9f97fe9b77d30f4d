package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// DivisionsTable provides access to the wallet_divisions table.
type DivisionsTable struct {
	exec bob.Executor
}

var _ IDivisionTable = (*DivisionsTable)(nil)

func NewDivisionsTable(exec bob.Executor) *DivisionsTable {
	return &DivisionsTable{exec: exec}
}

func (t *DivisionsTable) Upsert(ctx context.Context, upsert *DivisionUpsert) (*Division, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	q := psql.Insert(
		im.Into(divisionsTable, "id", "owner_id", "division_number", "name"),
		im.Values(psql.Arg(id, upsert.OwnerID, upsert.DivisionNumber, upsert.Name)),
		im.OnConflict("owner_id", "division_number").DoUpdate(
			im.SetExcluded("name"),
		),
		im.Returning(divisionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Division]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *DivisionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Division, error) {
	q := psql.Select(
		sm.Columns(divisionColumns...),
		sm.From(divisionsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Division]())
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (t *DivisionsTable) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Division, error) {
	q := psql.Select(
		sm.Columns(divisionColumns...),
		sm.From(divisionsTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Quote("division_number")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Division]())
	if err != nil {
		return nil, err
	}
	result := make([]*Division, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *DivisionsTable) SetJournalLastSynced(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := psql.Update(
		um.Table(divisionsTable),
		um.SetCol("journal_last_synced").ToArg(at),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
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
