package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/memstore"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

var testNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newOwnerTestService(t *testing.T) (*OwnerService, *sqlconfig.MockIOwnerTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockIOwnerTable(t)
	store := &storage.Storage{Tables: storage.Tables{Owners: mockTable}}
	svc := NewOwnerService(store, clock.Fake(testNow))
	return svc, mockTable
}

// -- GetOrCreate tests --

func TestGetOrCreate_PassesClockTime(t *testing.T) {
	svc, mockTable := newOwnerTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().GetOrCreate(mock.Anything, int64(98000001), testNow).
		Return(&sqlconfig.Owner{ID: id, AccountID: 98000001, IsActive: true, CreatedAt: testNow}, true, nil)

	owner, created, err := svc.GetOrCreate(context.Background(), 98000001)

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, id, owner.ID)
	assert.Nil(t, owner.BalancesLastSynced)
}

func TestGetOrCreate_StorageError(t *testing.T) {
	svc, mockTable := newOwnerTestService(t)

	mockTable.EXPECT().GetOrCreate(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, false, errors.New("insert failed"))

	owner, created, err := svc.GetOrCreate(context.Background(), 98000001)

	assert.Error(t, err)
	assert.False(t, created)
	assert.Nil(t, owner)
}

func TestGetOrCreate_ConcurrentCallersCreateOnce(t *testing.T) {
	store := memstore.New().Storage()
	svc := NewOwnerService(store, clock.Fake(testNow))

	const callers = 16
	var wg sync.WaitGroup
	results := make([]bool, callers)
	ids := make([]uuid.UUID, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			owner, created, err := svc.GetOrCreate(context.Background(), 98000001)
			assert.NoError(t, err)
			results[i] = created
			ids[i] = owner.ID
		}(i)
	}
	wg.Wait()

	createdCount := 0
	for i := range results {
		if results[i] {
			createdCount++
		}
		assert.Equal(t, ids[0], ids[i])
	}
	assert.Equal(t, 1, createdCount)

	owners, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, owners, 1)
}

// -- Get tests --

func TestGet_MapsNotFound(t *testing.T) {
	svc, mockTable := newOwnerTestService(t)

	mockTable.EXPECT().FindByAccountID(mock.Anything, int64(7)).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Get(context.Background(), 7)

	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestGet_ConvertsTimestamps(t *testing.T) {
	svc, mockTable := newOwnerTestService(t)

	synced := testNow.Add(-time.Hour)
	mockTable.EXPECT().FindByAccountID(mock.Anything, int64(7)).Return(&sqlconfig.Owner{
		AccountID:          7,
		BalancesLastSynced: null.From(synced),
	}, nil)

	owner, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, owner.BalancesLastSynced)
	assert.Equal(t, synced, *owner.BalancesLastSynced)
	assert.Nil(t, owner.JournalsLastSynced)
}

// -- SetActive tests --

func TestSetActive_OnlyWritesActiveFlag(t *testing.T) {
	svc, mockTable := newOwnerTestService(t)

	mockTable.EXPECT().Update(mock.Anything, int64(7), mock.MatchedBy(func(u *sqlconfig.OwnerUpdate) bool {
		active, ok := u.IsActive.Get()
		return ok && !active && u.BalancesLastSynced.IsUnset() && u.JournalsLastSynced.IsUnset()
	})).Return(nil)

	assert.NoError(t, svc.SetActive(context.Background(), 7, false))
}

func TestSetActive_UnknownOwner(t *testing.T) {
	svc, mockTable := newOwnerTestService(t)

	mockTable.EXPECT().Update(mock.Anything, int64(7), mock.Anything).Return(sqlconfig.ErrNotFound)

	assert.ErrorIs(t, svc.SetActive(context.Background(), 7, true), ErrOwnerNotFound)
}

// -- List tests --

func TestList_ActiveOnlyFilter(t *testing.T) {
	svc, mockTable := newOwnerTestService(t)

	mockTable.EXPECT().List(mock.Anything, &sqlconfig.OwnerFilter{ActiveOnly: true}).
		Return([]*sqlconfig.Owner{{AccountID: 1, IsActive: true}, {AccountID: 2, IsActive: true}}, nil)

	owners, err := svc.List(context.Background(), true)

	assert.NoError(t, err)
	assert.Len(t, owners, 2)
	assert.Equal(t, int64(2), owners[1].AccountID)
}
