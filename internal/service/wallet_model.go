package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

// DivisionBalance is a division with its most recent balance snapshot.
// Balance and CapturedAt are nil until the first balance sync.
type DivisionBalance struct {
	DivisionNumber    int
	Name              string
	Balance           *decimal.Decimal
	CapturedAt        *time.Time
	JournalLastSynced *time.Time
}

// JournalEntry is one stored wallet journal line.
type JournalEntry struct {
	EntryID       int64
	Amount        *decimal.Decimal
	Balance       *decimal.Decimal
	ContextID     *int64
	ContextIDType *string
	Date          time.Time
	Description   string
	FirstPartyID  *int64
	Reason        *string
	RefType       string
	SecondPartyID *int64
	Tax           *decimal.Decimal
	TaxReceiverID *int64
}

func nullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}

func journalEntryFromStorage(row *sqlconfig.JournalEntry) JournalEntry {
	return JournalEntry{
		EntryID:       row.EntryID,
		Amount:        nullDecimal(row.Amount),
		Balance:       nullDecimal(row.Balance),
		ContextID:     row.ContextID.Ptr(),
		ContextIDType: row.ContextIDType.Ptr(),
		Date:          row.Date,
		Description:   row.Description,
		FirstPartyID:  row.FirstPartyID.Ptr(),
		Reason:        row.Reason.Ptr(),
		RefType:       row.RefType,
		SecondPartyID: row.SecondPartyID.Ptr(),
		Tax:           nullDecimal(row.Tax),
		TaxReceiverID: row.TaxReceiverID.Ptr(),
	}
}
