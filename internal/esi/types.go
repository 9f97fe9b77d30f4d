package esi

import (
	"context"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// DivisionRecord is one entry of the "wallet" list returned by
// /corporations/{id}/divisions/. Name is absent for the master wallet.
type DivisionRecord struct {
	Division int     `json:"division"`
	Name     *string `json:"name,omitempty"`
}

type divisionsResponse struct {
	Wallet []DivisionRecord `json:"wallet"`
}

// BalanceRecord is one entry of /corporations/{id}/wallets/.
type BalanceRecord struct {
	Division int             `json:"division"`
	Balance  decimal.Decimal `json:"balance"`
}

// JournalRecord is one entry of /corporations/{id}/wallets/{division}/journal/.
type JournalRecord struct {
	ID            int64               `json:"id"`
	Amount        decimal.NullDecimal `json:"amount"`
	Balance       decimal.NullDecimal `json:"balance"`
	ContextID     *int64              `json:"context_id,omitempty"`
	ContextIDType *string             `json:"context_id_type,omitempty"`
	Date          time.Time           `json:"date"`
	Description   string              `json:"description"`
	FirstPartyID  *int64              `json:"first_party_id,omitempty"`
	Reason        *string             `json:"reason,omitempty"`
	RefType       string              `json:"ref_type"`
	SecondPartyID *int64              `json:"second_party_id,omitempty"`
	Tax           decimal.NullDecimal `json:"tax"`
	TaxReceiverID *int64              `json:"tax_receiver_id,omitempty"`
}

// WalletAPI is the remote corporation wallet API.
//
//go:generate mockery --name WalletAPI --inpackage --output . --filename mock_WalletAPI.go
type WalletAPI interface {
	ListDivisions(ctx context.Context, accountID int64, token string) ([]DivisionRecord, error)
	ListBalances(ctx context.Context, accountID int64, token string) ([]BalanceRecord, error)
	// ListJournalEntries walks every page lazily. The sequence ends after
	// the first error it yields and cannot be restarted.
	ListJournalEntries(ctx context.Context, accountID int64, division int, token string) iter.Seq2[JournalRecord, error]
}
