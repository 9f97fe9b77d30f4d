//go:build integration

package storage_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/walletsync/internal/config"
	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

var testNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

// newPostgresStorage starts a throwaway Postgres, applies the migrations and
// returns a connected Storage.
func newPostgresStorage(t *testing.T) *storage.Storage {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("walletsync"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("testpassword"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	env := &config.Config{
		PostgresAddress:  host,
		PostgresPort:     port.Port(),
		PostgresDB:       "walletsync",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		MigrationsPath:   "file://../../migrations",
	}
	require.NoError(t, storage.Migrate(env, logging.SetupLogging("error")))

	store, err := storage.NewStorage(ctx, env)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPostgres_OwnerGetOrCreateConcurrent(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	created := make(chan bool, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, wasCreated, err := store.Owners.GetOrCreate(ctx, 98000001, testNow)
			assert.NoError(t, err)
			created <- wasCreated
		}()
	}
	wg.Wait()
	close(created)

	count := 0
	for c := range created {
		if c {
			count++
		}
	}
	assert.Equal(t, 1, count)

	owners, err := store.Owners.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, owners, 1)
}

func TestPostgres_OwnerUpdateUnknown(t *testing.T) {
	store := newPostgresStorage(t)

	err := store.Owners.Update(context.Background(), 1, &sqlconfig.OwnerUpdate{})
	assert.NoError(t, err, "empty update is a no-op")

	_, err = store.Owners.FindByAccountID(context.Background(), 1)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

func TestPostgres_CredentialOrderingAndMarkUsed(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	owner, _, err := store.Owners.GetOrCreate(ctx, 98000001, testNow)
	require.NoError(t, err)

	for i, identity := range []int64{11, 12, 13} {
		_, created, err := store.Credentials.Insert(ctx, &sqlconfig.CredentialCreate{
			OwnerID:    owner.ID,
			IdentityID: identity,
			CreatedAt:  testNow.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		assert.True(t, created)
	}
	_, created, err := store.Credentials.Insert(ctx, &sqlconfig.CredentialCreate{OwnerID: owner.ID, IdentityID: 12, CreatedAt: testNow})
	require.NoError(t, err)
	assert.False(t, created)

	_, err = store.Credentials.MarkUsedByIdentity(ctx, 11, testNow.Add(time.Hour))
	require.NoError(t, err)
	_, err = store.Credentials.MarkUsedByIdentity(ctx, 11, testNow)
	require.NoError(t, err)

	list, err := store.Credentials.ListValidForAccount(ctx, 98000001)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(12), list[0].IdentityID)
	assert.Equal(t, int64(13), list[1].IdentityID)
	assert.Equal(t, int64(11), list[2].IdentityID)
	assert.True(t, list[2].LastUsed.GetOrZero().Equal(testNow.Add(time.Hour)))

	count, err := store.Credentials.SetValidByIdentity(ctx, 12, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	list, err = store.Credentials.ListValidForAccount(ctx, 98000001)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPostgres_JournalUpsertOverwritesInTransaction(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	owner, _, err := store.Owners.GetOrCreate(ctx, 98000001, testNow)
	require.NoError(t, err)
	division, err := store.Divisions.Upsert(ctx, &sqlconfig.DivisionUpsert{OwnerID: owner.ID, DivisionNumber: 1, Name: "Master Wallet"})
	require.NoError(t, err)

	entry := &sqlconfig.JournalEntry{
		DivisionID:  division.ID,
		EntryID:     5001,
		Amount:      decimal.NewNullDecimal(decimal.RequireFromString("-12.50")),
		Date:        testNow,
		Description: "first",
		RefType:     "player_donation",
		Reason:      null.From("gift"),
		UpdatedAt:   testNow,
	}
	require.NoError(t, store.Journal.Upsert(ctx, entry))

	writer, err := store.Write(ctx)
	require.NoError(t, err)
	changed := *entry
	changed.Description = "second"
	changed.Reason = null.Val[string]{}
	require.NoError(t, writer.Journal.Upsert(ctx, &changed))
	require.NoError(t, writer.Rollback())

	rows, err := store.Journal.List(ctx, &sqlconfig.JournalFilter{DivisionID: division.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "first", rows[0].Description)

	require.NoError(t, store.Journal.Upsert(ctx, &changed))
	rows, err = store.Journal.List(ctx, &sqlconfig.JournalFilter{DivisionID: division.ID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "second", rows[0].Description)
	assert.False(t, rows[0].Reason.IsValue())
	assert.True(t, rows[0].Amount.Decimal.Equal(decimal.RequireFromString("-12.50")))
}
