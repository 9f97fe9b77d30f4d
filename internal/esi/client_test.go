package esi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "walletsync-test", 5*time.Second)
}

// -- ListDivisions --

func TestListDivisions_DecodesWalletList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/corporations/98000001/divisions/", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, "walletsync-test", r.Header.Get("User-Agent"))
		fmt.Fprint(w, `{"hangar":[{"division":1,"name":"Loot"}],"wallet":[{"division":1},{"division":2,"name":"Ops"}]}`)
	})

	divisions, err := client.ListDivisions(context.Background(), 98000001, "access-1")
	require.NoError(t, err)
	require.Len(t, divisions, 2)
	assert.Equal(t, 1, divisions[0].Division)
	assert.Nil(t, divisions[0].Name)
	require.NotNil(t, divisions[1].Name)
	assert.Equal(t, "Ops", *divisions[1].Name)
}

func TestListDivisions_NonSuccessIsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":"token is not valid for scope"}`)
	})

	_, err := client.ListDivisions(context.Background(), 98000001, "access-1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.True(t, apiErr.Unauthorized())
	assert.Contains(t, apiErr.Body, "token is not valid")
}

// -- ListBalances --

func TestListBalances_KeepsDecimalPrecision(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/corporations/98000001/wallets/", r.URL.Path)
		fmt.Fprint(w, `[{"division":1,"balance":123456789.12},{"division":2,"balance":0}]`)
	})

	balances, err := client.ListBalances(context.Background(), 98000001, "access-1")
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.True(t, balances[0].Balance.Equal(decimal.RequireFromString("123456789.12")))
	assert.True(t, balances[1].Balance.IsZero())
}

// -- ListJournalEntries --

func TestListJournalEntries_WalksAllPages(t *testing.T) {
	var requested []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/corporations/98000001/wallets/3/journal/", r.URL.Path)
		page := r.URL.Query().Get("page")
		requested = append(requested, page)
		w.Header().Set("X-Pages", "2")
		switch page {
		case "1":
			fmt.Fprint(w, `[{"id":11,"amount":-10.5,"balance":90,"date":"2024-01-02T03:04:05Z","description":"fee","ref_type":"brokers_fee","first_party_id":5}]`)
		case "2":
			fmt.Fprint(w, `[{"id":12,"date":"2024-01-01T00:00:00Z","description":"tax","ref_type":"corporate_reward_tax","reason":"monthly"}]`)
		}
	})

	var ids []int64
	var last JournalRecord
	for record, err := range client.ListJournalEntries(context.Background(), 98000001, 3, "access-1") {
		require.NoError(t, err)
		ids = append(ids, record.ID)
		last = record
	}

	assert.Equal(t, []string{"1", "2"}, requested)
	assert.Equal(t, []int64{11, 12}, ids)
	assert.False(t, last.Amount.Valid)
	require.NotNil(t, last.Reason)
	assert.Equal(t, "monthly", *last.Reason)
}

func TestListJournalEntries_StopsWhenConsumerBreaks(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("X-Pages", "5")
		fmt.Fprint(w, `[{"id":1,"date":"2024-01-01T00:00:00Z","ref_type":"bounty_prizes"},{"id":2,"date":"2024-01-01T00:00:00Z","ref_type":"bounty_prizes"}]`)
	})

	for record, err := range client.ListJournalEntries(context.Background(), 98000001, 1, "access-1") {
		require.NoError(t, err)
		if record.ID == 1 {
			break
		}
	}

	assert.Equal(t, 1, calls)
}

func TestListJournalEntries_YieldsErrorOnceAndEnds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("X-Pages", "3")
		fmt.Fprint(w, `[{"id":1,"date":"2024-01-01T00:00:00Z","ref_type":"bounty_prizes"}]`)
	})

	var records, errs int
	for _, err := range client.ListJournalEntries(context.Background(), 98000001, 1, "access-1") {
		if err != nil {
			errs++
			var apiErr *APIError
			assert.True(t, errors.As(err, &apiErr))
			continue
		}
		records++
	}

	assert.Equal(t, 1, records)
	assert.Equal(t, 1, errs)
}

func TestListJournalEntries_InvalidPagesHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pages", "many")
		fmt.Fprint(w, `[]`)
	})

	var gotErr error
	for _, err := range client.ListJournalEntries(context.Background(), 98000001, 1, "access-1") {
		gotErr = err
	}

	assert.ErrorContains(t, gotErr, "invalid X-Pages header")
}
