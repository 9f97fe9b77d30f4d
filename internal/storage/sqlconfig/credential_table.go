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

// CredentialsTable provides access to the owner_credentials table.
type CredentialsTable struct {
	exec bob.Executor
}

var _ ICredentialTable = (*CredentialsTable)(nil)

func NewCredentialsTable(exec bob.Executor) *CredentialsTable {
	return &CredentialsTable{exec: exec}
}

// Insert binds the identity to the owner. An existing binding is returned
// unchanged with created=false.
func (t *CredentialsTable) Insert(ctx context.Context, create *CredentialCreate) (*Credential, bool, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, false, err
	}

	q := psql.Insert(
		im.Into(credentialsTable, "id", "owner_id", "identity_id", "is_valid", "created_at"),
		im.Values(psql.Arg(id, create.OwnerID, create.IdentityID, true, create.CreatedAt)),
		im.OnConflict("owner_id", "identity_id").DoNothing(),
		im.Returning(credentialColumns...),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Credential]())
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 1 {
		return &rows[0], true, nil
	}

	existing := psql.Select(
		sm.Columns(credentialColumns...),
		sm.From(credentialsTable),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(create.OwnerID))),
		sm.Where(psql.Quote("identity_id").EQ(psql.Arg(create.IdentityID))),
	)
	row, err := bob.One(ctx, t.exec, existing, scan.StructMapper[Credential]())
	if err != nil {
		return nil, false, notFound(err)
	}
	return &row, false, nil
}

func (t *CredentialsTable) FindByID(ctx context.Context, id uuid.UUID) (*Credential, error) {
	q := psql.Select(
		sm.Columns(credentialColumns...),
		sm.From(credentialsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Credential]())
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (t *CredentialsTable) ListValidForAccount(ctx context.Context, accountID int64) ([]*Credential, error) {
	q := psql.Select(
		sm.Columns(credentialColumns...),
		sm.From(credentialsTable),
		sm.Where(psql.Raw("owner_id IN (SELECT id FROM "+ownersTable+" WHERE account_id = ?)", accountID)),
		sm.Where(psql.Quote("is_valid").EQ(psql.Arg(true))),
		sm.OrderBy(psql.Quote("last_used")).Asc().NullsFirst(),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Credential]())
	if err != nil {
		return nil, err
	}
	result := make([]*Credential, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *CredentialsTable) SetValid(ctx context.Context, id uuid.UUID, valid bool) error {
	q := psql.Update(
		um.Table(credentialsTable),
		um.SetCol("is_valid").ToArg(valid),
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

func (t *CredentialsTable) SetValidByIdentity(ctx context.Context, identityID int64, valid bool) (int64, error) {
	q := psql.Update(
		um.Table(credentialsTable),
		um.SetCol("is_valid").ToArg(valid),
		um.Where(psql.Quote("identity_id").EQ(psql.Arg(identityID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (t *CredentialsTable) MarkUsedByIdentity(ctx context.Context, identityID int64, at time.Time) (int64, error) {
	q := psql.Update(
		um.Table(credentialsTable),
		um.SetCol("last_used").To(psql.Raw("GREATEST(COALESCE(last_used, ?), ?)", at, at)),
		um.Where(psql.Quote("identity_id").EQ(psql.Arg(identityID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
