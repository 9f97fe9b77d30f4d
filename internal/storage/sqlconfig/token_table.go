package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// TokensTable provides access to the identity_tokens table.
type TokensTable struct {
	exec bob.Executor
}

var _ ITokenTable = (*TokensTable)(nil)

func NewTokensTable(exec bob.Executor) *TokensTable {
	return &TokensTable{exec: exec}
}

func (t *TokensTable) Upsert(ctx context.Context, upsert *IdentityTokenUpsert) (*IdentityToken, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	q := psql.Insert(
		im.Into(identityTokensTable,
			"id", "identity_id", "access_token", "refresh_token", "scopes", "expires_at", "is_valid", "updated_at"),
		im.Values(psql.Arg(
			id, upsert.IdentityID, upsert.AccessToken, upsert.RefreshToken,
			pq.StringArray(upsert.Scopes), upsert.ExpiresAt, true, upsert.UpdatedAt,
		)),
		im.OnConflict("refresh_token").DoUpdate(
			im.SetExcluded("identity_id", "access_token", "scopes", "expires_at", "is_valid", "updated_at"),
		),
		im.Returning(tokenColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[IdentityToken]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *TokensTable) ListValidByIdentity(ctx context.Context, identityID int64) ([]*IdentityToken, error) {
	q := psql.Select(
		sm.Columns(tokenColumns...),
		sm.From(identityTokensTable),
		sm.Where(psql.Quote("identity_id").EQ(psql.Arg(identityID))),
		sm.Where(psql.Quote("is_valid").EQ(psql.Arg(true))),
		sm.OrderBy(psql.Quote("expires_at")).Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[IdentityToken]())
	if err != nil {
		return nil, err
	}
	result := make([]*IdentityToken, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *TokensTable) UpdateAccess(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt, updatedAt time.Time) error {
	q := psql.Update(
		um.Table(identityTokensTable),
		um.SetCol("access_token").ToArg(accessToken),
		um.SetCol("refresh_token").ToArg(refreshToken),
		um.SetCol("expires_at").ToArg(expiresAt),
		um.SetCol("updated_at").ToArg(updatedAt),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *TokensTable) Invalidate(ctx context.Context, id uuid.UUID) error {
	q := psql.Update(
		um.Table(identityTokensTable),
		um.SetCol("is_valid").ToArg(false),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
