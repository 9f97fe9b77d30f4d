package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/identity"
	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage/memstore"
)

// newOAuthFixture runs chains through the real OAuth provider on the
// in-memory store, with handler standing in for the SSO token endpoint.
func newOAuthFixture(t *testing.T, handler http.HandlerFunc) (*fixture, *atomic.Int32) {
	t.Helper()
	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	store := memstore.New().Storage()
	provider := identity.NewOAuthProvider(store.Tokens, server.URL, "client", "secret", clock.Fake(testNow), logging.SetupLogging("error"))
	f := buildFixture(t, store, provider)

	require.NoError(t, provider.SaveGrant(context.Background(), 1, "refresh-1", service.RequiredScopes))
	_, _, err := f.services.Credential.Register(context.Background(), testAccount, 1)
	require.NoError(t, err)
	return f, calls
}

func TestOAuthChain_RefreshInsideChainReachesDone(t *testing.T) {
	f, calls := newOAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh-token","token_type":"Bearer","expires_in":1200,"refresh_token":"refresh-2"}`))
	})
	expectHappyRemote(f, "fresh-token")

	f.orchestrator.ScheduleSync(context.Background(), testAccount)
	f.waitIdle(t)

	status, ok := f.orchestrator.Status(testAccount)
	require.True(t, ok)
	assert.Equal(t, StateDone, status.State)
	assert.Equal(t, int32(1), calls.Load(), "later stages reuse the stored access token")

	grants, err := f.store.Tokens.ListValidByIdentity(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, "fresh-token", grants[0].AccessToken)
	assert.Equal(t, "refresh-2", grants[0].RefreshToken)
}

func TestOAuthChain_InvalidGrantInvalidatesTokenAndCredential(t *testing.T) {
	f, calls := newOAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"refresh token revoked"}`))
	})

	f.orchestrator.ScheduleSync(context.Background(), testAccount)
	f.waitIdle(t)

	status, _ := f.orchestrator.Status(testAccount)
	assert.Equal(t, StateFailed, status.State)
	assert.Equal(t, StateSelectingCredential, status.FailedStage)
	assert.Equal(t, KindNoCredential, status.ErrorKind)

	grants, err := f.store.Tokens.ListValidByIdentity(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, grants)
	credentials, err := f.store.Credentials.ListValidForAccount(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Empty(t, credentials)

	f.orchestrator.ScheduleSync(context.Background(), testAccount)
	f.waitIdle(t)
	assert.Equal(t, int32(1), calls.Load())
	f.api.AssertNotCalled(t, "ListDivisions", mock.Anything, mock.Anything, mock.Anything)
}

func TestOAuthChain_TransientRefreshFailureKeepsCredential(t *testing.T) {
	f, _ := newOAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	f.orchestrator.ScheduleSync(context.Background(), testAccount)
	f.waitIdle(t)

	status, _ := f.orchestrator.Status(testAccount)
	assert.Equal(t, KindNoCredential, status.ErrorKind)

	credentials, err := f.store.Credentials.ListValidForAccount(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Len(t, credentials, 1)
	grants, err := f.store.Tokens.ListValidByIdentity(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, grants, 1)
}
