package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/walletsync/internal/esi"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

func storedDivisions(t *testing.T, f *fixture) map[int]*sqlconfig.Division {
	t.Helper()
	owner := f.owner(t)
	rows, err := f.store.Divisions.ListByOwner(context.Background(), owner.ID)
	require.NoError(t, err)
	result := make(map[int]*sqlconfig.Division, len(rows))
	for _, row := range rows {
		result[row.DivisionNumber] = row
	}
	return result
}

func seedDivisions(t *testing.T, f *fixture, numbers ...int) {
	t.Helper()
	owner := f.owner(t)
	for _, number := range numbers {
		_, err := f.store.Divisions.Upsert(context.Background(), &sqlconfig.DivisionUpsert{
			OwnerID:        owner.ID,
			DivisionNumber: number,
			Name:           DivisionName(esi.DivisionRecord{Division: number}),
		})
		require.NoError(t, err)
	}
}

// -- DivisionStage --

func TestDivisionStage_NamesDivisions(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t)

	f.api.EXPECT().ListDivisions(mock.Anything, testAccount, "token-1").Return([]esi.DivisionRecord{
		{Division: 1, Name: named("Corp Main")},
		{Division: 2},
		{Division: 3, Name: named("Ops")},
		{Division: 4, Name: named(" ")},
	}, nil)

	fetched, err := f.orchestrator.divisions.Run(context.Background(), f.store.Tables, owner, "token-1")
	require.NoError(t, err)
	assert.True(t, fetched)

	divisions := storedDivisions(t, f)
	require.Len(t, divisions, 4, spew.Sdump(divisions))
	assert.Equal(t, "Master Wallet", divisions[1].Name)
	assert.Equal(t, "Division 2", divisions[2].Name)
	assert.Equal(t, "Ops", divisions[3].Name)
	assert.Equal(t, "Division 4", divisions[4].Name)
}

func TestDivisionStage_RenameKeepsOneRow(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t)

	f.api.EXPECT().ListDivisions(mock.Anything, testAccount, mock.Anything).
		Return([]esi.DivisionRecord{{Division: 2, Name: named("Old")}}, nil).Once()
	f.api.EXPECT().ListDivisions(mock.Anything, testAccount, mock.Anything).
		Return([]esi.DivisionRecord{{Division: 2, Name: named("New")}}, nil).Once()

	_, err := f.orchestrator.divisions.Run(context.Background(), f.store.Tables, owner, "t")
	require.NoError(t, err)
	_, err = f.orchestrator.divisions.Run(context.Background(), f.store.Tables, owner, "t")
	require.NoError(t, err)

	divisions := storedDivisions(t, f)
	require.Len(t, divisions, 1)
	assert.Equal(t, "New", divisions[2].Name)
}

func TestDivisionStage_FreshBalancesSkipFetch(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t)
	synced := testNow.Add(-30 * time.Minute)
	owner.BalancesLastSynced = &synced

	fetched, err := f.orchestrator.divisions.Run(context.Background(), f.store.Tables, owner, "t")

	require.NoError(t, err)
	assert.False(t, fetched)
	f.api.AssertNotCalled(t, "ListDivisions", mock.Anything, mock.Anything, mock.Anything)
}

func TestDivisionStage_StaleBalancesFetch(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t)
	synced := testNow.Add(-time.Hour)
	owner.BalancesLastSynced = &synced

	f.api.EXPECT().ListDivisions(mock.Anything, testAccount, "t").Return(nil, nil)

	fetched, err := f.orchestrator.divisions.Run(context.Background(), f.store.Tables, owner, "t")

	require.NoError(t, err)
	assert.True(t, fetched)
}

func TestDivisionStage_RemoteError(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t)

	f.api.EXPECT().ListDivisions(mock.Anything, testAccount, "t").
		Return(nil, &esi.APIError{StatusCode: 502, Path: "/corporations/98000001/divisions/"})

	_, err := f.orchestrator.divisions.Run(context.Background(), f.store.Tables, owner, "t")

	assert.True(t, IsKind(err, KindRemoteAPI))
	var apiErr *esi.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestDivisionStage_RejectedTokenIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t)

	f.api.EXPECT().ListDivisions(mock.Anything, testAccount, "t").
		Return(nil, &esi.APIError{StatusCode: 403, Path: "/corporations/98000001/divisions/"})

	_, err := f.orchestrator.divisions.Run(context.Background(), f.store.Tables, owner, "t")

	assert.True(t, IsKind(err, KindUnauthorized))
	assert.False(t, IsKind(err, KindRemoteAPI))
	assert.False(t, KindUnauthorized.Soft())
}

// -- BalanceStage --

func TestBalanceStage_AppendsEveryRun(t *testing.T) {
	f := newFixture(t)
	seedDivisions(t, f, 1, 2)
	owner := f.owner(t)

	f.api.EXPECT().ListBalances(mock.Anything, testAccount, "t").Return([]esi.BalanceRecord{
		{Division: 1, Balance: decimal.RequireFromString("100.00")},
		{Division: 2, Balance: decimal.RequireFromString("5.25")},
	}, nil).Times(3)

	const runs = 3
	for i := 0; i < runs; i++ {
		count, err := f.orchestrator.balances.Run(context.Background(), f.store.Tables, owner, "t")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		f.clock.Advance(time.Minute)
	}

	for _, division := range storedDivisions(t, f) {
		records, err := f.store.Balances.List(context.Background(), &sqlconfig.BalanceFilter{DivisionID: division.ID})
		require.NoError(t, err)
		assert.Len(t, records, runs)
	}

	reloaded, err := f.services.Owner.Get(context.Background(), testAccount)
	require.NoError(t, err)
	require.NotNil(t, reloaded.BalancesLastSynced)
	assert.Equal(t, testNow.Add(2*time.Minute), *reloaded.BalancesLastSynced)
}

func TestBalanceStage_MapsByDivisionNumber(t *testing.T) {
	f := newFixture(t)
	seedDivisions(t, f, 1, 2, 3)
	owner := f.owner(t)

	f.api.EXPECT().ListBalances(mock.Anything, testAccount, "t").Return([]esi.BalanceRecord{
		{Division: 3, Balance: decimal.RequireFromString("3.00")},
		{Division: 1, Balance: decimal.RequireFromString("1.00")},
		{Division: 2, Balance: decimal.RequireFromString("2.00")},
	}, nil)

	_, err := f.orchestrator.balances.Run(context.Background(), f.store.Tables, owner, "t")
	require.NoError(t, err)

	for number, division := range storedDivisions(t, f) {
		records, err := f.store.Balances.List(context.Background(), &sqlconfig.BalanceFilter{DivisionID: division.ID})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Balance.Equal(decimal.NewFromInt(int64(number))), "division %d got %s", number, records[0].Balance)
	}
}

func TestBalanceStage_NoDivisionsIsMissingDivision(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t)

	count, err := f.orchestrator.balances.Run(context.Background(), f.store.Tables, owner, "t")

	assert.Zero(t, count)
	assert.True(t, IsKind(err, KindMissingDivision))
	f.api.AssertNotCalled(t, "ListBalances", mock.Anything, mock.Anything, mock.Anything)
	reloaded, err := f.services.Owner.Get(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Nil(t, reloaded.BalancesLastSynced)
}

func TestBalanceStage_UnknownNumberWritesNothing(t *testing.T) {
	f := newFixture(t)
	seedDivisions(t, f, 1)
	owner := f.owner(t)

	f.api.EXPECT().ListBalances(mock.Anything, testAccount, "t").Return([]esi.BalanceRecord{
		{Division: 1, Balance: decimal.RequireFromString("1.00")},
		{Division: 7, Balance: decimal.RequireFromString("7.00")},
	}, nil)

	_, err := f.orchestrator.balances.Run(context.Background(), f.store.Tables, owner, "t")

	assert.True(t, IsKind(err, KindMissingDivision))
	records, err := f.store.Balances.List(context.Background(), &sqlconfig.BalanceFilter{DivisionID: storedDivisions(t, f)[1].ID})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBalanceStage_RepeatedNumberWritesNothing(t *testing.T) {
	f := newFixture(t)
	seedDivisions(t, f, 1, 2)
	owner := f.owner(t)

	f.api.EXPECT().ListBalances(mock.Anything, testAccount, "t").Return([]esi.BalanceRecord{
		{Division: 1, Balance: decimal.RequireFromString("1.00")},
		{Division: 2, Balance: decimal.RequireFromString("2.00")},
		{Division: 1, Balance: decimal.RequireFromString("3.00")},
	}, nil)

	count, err := f.orchestrator.balances.Run(context.Background(), f.store.Tables, owner, "t")

	assert.True(t, IsKind(err, KindRemoteAPI))
	assert.Zero(t, count)
	for _, division := range storedDivisions(t, f) {
		records, err := f.store.Balances.List(context.Background(), &sqlconfig.BalanceFilter{DivisionID: division.ID})
		require.NoError(t, err)
		assert.Empty(t, records)
	}
}

func TestBalanceStage_RejectedTokenIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	seedDivisions(t, f, 1)
	owner := f.owner(t)

	f.api.EXPECT().ListBalances(mock.Anything, testAccount, "t").
		Return(nil, &esi.APIError{StatusCode: 401, Path: "/corporations/98000001/wallets/"})

	_, err := f.orchestrator.balances.Run(context.Background(), f.store.Tables, owner, "t")

	assert.True(t, IsKind(err, KindUnauthorized))
}

// -- JournalStage --

func TestJournalStage_PlanWithoutDivisions(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t)

	divisions, err := f.orchestrator.journals.Plan(context.Background(), f.store.Tables, owner)

	assert.Empty(t, divisions)
	assert.True(t, IsKind(err, KindEmptyPrecondition))
	assert.True(t, KindEmptyPrecondition.Soft())
}

func TestJournalStage_UpsertOverwrites(t *testing.T) {
	f := newFixture(t)
	seedDivisions(t, f, 1)
	owner := f.owner(t)
	division := storedDivisions(t, f)[1]

	entryDate := time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC)
	first := esi.JournalRecord{
		ID: 555, Date: entryDate, RefType: "player_donation", Description: "first",
		Amount: decimal.NewNullDecimal(decimal.RequireFromString("10.00")),
	}
	second := first
	second.Description = "second"
	second.Amount = decimal.NewNullDecimal(decimal.RequireFromString("12.50"))
	second.Reason = named("corrected")

	f.api.EXPECT().ListJournalEntries(mock.Anything, testAccount, 1, "t").Return(journalSeq(first)).Once()
	f.api.EXPECT().ListJournalEntries(mock.Anything, testAccount, 1, "t").Return(journalSeq(second)).Once()

	_, err := f.orchestrator.journals.RunDivision(context.Background(), f.store.Tables, owner, division.ID, "t")
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	count, err := f.orchestrator.journals.RunDivision(context.Background(), f.store.Tables, owner, division.ID, "t")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entries, err := f.store.Journal.List(context.Background(), &sqlconfig.JournalFilter{DivisionID: division.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1, spew.Sdump(entries))
	assert.Equal(t, "second", entries[0].Description)
	assert.True(t, entries[0].Amount.Decimal.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "corrected", entries[0].Reason.GetOrZero())
	assert.Equal(t, testNow.Add(time.Minute), entries[0].UpdatedAt)

	reloaded := storedDivisions(t, f)[1]
	assert.Equal(t, testNow.Add(time.Minute), reloaded.JournalLastSynced.GetOrZero())
}

func TestJournalStage_RemoteErrorStopsDivision(t *testing.T) {
	f := newFixture(t)
	seedDivisions(t, f, 2)
	owner := f.owner(t)
	division := storedDivisions(t, f)[2]

	f.api.EXPECT().ListJournalEntries(mock.Anything, testAccount, 2, "t").
		Return(failingSeq(&esi.APIError{StatusCode: 500}, esi.JournalRecord{ID: 1, RefType: "bounty_prizes"}))

	_, err := f.orchestrator.journals.RunDivision(context.Background(), f.store.Tables, owner, division.ID, "t")

	assert.True(t, IsKind(err, KindRemoteAPI))
	assert.False(t, storedDivisions(t, f)[2].JournalLastSynced.IsValue())
}

func TestJournalStage_RejectedTokenIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	seedDivisions(t, f, 3)
	owner := f.owner(t)
	division := storedDivisions(t, f)[3]

	f.api.EXPECT().ListJournalEntries(mock.Anything, testAccount, 3, "t").
		Return(failingSeq(&esi.APIError{StatusCode: 403}))

	_, err := f.orchestrator.journals.RunDivision(context.Background(), f.store.Tables, owner, division.ID, "t")

	assert.True(t, IsKind(err, KindUnauthorized))
}
