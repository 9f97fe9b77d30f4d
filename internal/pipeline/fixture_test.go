package pipeline

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/esi"
	"github.com/carson-networks/walletsync/internal/identity"
	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/operator"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/memstore"
)

const testAccount int64 = 98000001

var testNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	store        *storage.Storage
	api          *esi.MockWalletAPI
	tokens       *identity.MockTokenProvider
	clock        *clock.FakeClock
	services     *service.Service
	delegator    *operator.OperatorDelegator
	orchestrator *Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens := identity.NewMockTokenProvider(t)
	f := buildFixture(t, memstore.New().Storage(), tokens)
	f.tokens = tokens
	return f
}

// buildFixture wires the chain the way the process does, around any
// token provider.
func buildFixture(t *testing.T, store *storage.Storage, tokens identity.TokenProvider) *fixture {
	t.Helper()
	logger := logging.SetupLogging("error")
	api := esi.NewMockWalletAPI(t)
	fake := clock.Fake(testNow)
	services := service.NewService(store, tokens, fake, logger)

	delegator := operator.NewOperatorDelegator(store, 2, logger)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	return &fixture{
		store:        store,
		api:          api,
		clock:        fake,
		services:     services,
		delegator:    delegator,
		orchestrator: NewOrchestrator(delegator, services, api, fake, time.Hour, logger),
	}
}

func (f *fixture) waitIdle(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.delegator.WaitIdle(ctx))
}

func (f *fixture) owner(t *testing.T) *service.Owner {
	t.Helper()
	owner, _, err := f.services.Owner.GetOrCreate(context.Background(), testAccount)
	require.NoError(t, err)
	return owner
}

// register stores a credential for identityID whose token is always handed out.
func (f *fixture) register(t *testing.T, identityID int64, token string) *service.Credential {
	t.Helper()
	credential, _, err := f.services.Credential.Register(context.Background(), testAccount, identityID)
	require.NoError(t, err)
	f.tokens.EXPECT().AccessToken(mock.Anything, identityID, service.RequiredScopes).Return(token, nil).Maybe()
	return credential
}

func named(name string) *string {
	return &name
}

func journalSeq(records ...esi.JournalRecord) iter.Seq2[esi.JournalRecord, error] {
	return func(yield func(esi.JournalRecord, error) bool) {
		for _, record := range records {
			if !yield(record, nil) {
				return
			}
		}
	}
}

func failingSeq(err error, records ...esi.JournalRecord) iter.Seq2[esi.JournalRecord, error] {
	return func(yield func(esi.JournalRecord, error) bool) {
		for _, record := range records {
			if !yield(record, nil) {
				return
			}
		}
		yield(esi.JournalRecord{}, err)
	}
}
