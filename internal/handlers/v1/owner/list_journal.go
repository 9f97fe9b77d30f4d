package owner

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/walletsync/internal/service"
)

// ListJournalInput is the Huma input for paging a division journal.
type ListJournalInput struct {
	AccountID int64 `path:"accountID" minimum:"1" doc:"Remote account id"`
	Division  int   `path:"division" minimum:"1" maximum:"7" doc:"Division number"`
	Limit     int   `query:"limit" minimum:"1" maximum:"500" default:"50" doc:"Page size"`
	Offset    int   `query:"offset" minimum:"0" doc:"Entries to skip"`
}

// ListJournalOutput is the Huma output for paging a division journal.
type ListJournalOutput struct {
	Body struct {
		Entries []JournalEntry `json:"entries" doc:"Journal entries, newest first"`
	}
}

// JournalEntry is the API response model for a wallet journal line.
type JournalEntry struct {
	EntryID       int64   `json:"entryID" doc:"Remote journal entry id"`
	Amount        string  `json:"amount,omitempty" doc:"Signed amount"`
	Balance       string  `json:"balance,omitempty" doc:"Division balance after the entry"`
	ContextID     *int64  `json:"contextID,omitempty" doc:"Id of the related object"`
	ContextIDType *string `json:"contextIDType,omitempty" doc:"Type of the related object"`
	Date          string  `json:"date" doc:"Entry date (RFC3339)"`
	Description   string  `json:"description" doc:"Remote description"`
	FirstPartyID  *int64  `json:"firstPartyID,omitempty" doc:"First party"`
	Reason        *string `json:"reason,omitempty" doc:"Free-form reason"`
	RefType       string  `json:"refType" doc:"Transaction type"`
	SecondPartyID *int64  `json:"secondPartyID,omitempty" doc:"Second party"`
	Tax           string  `json:"tax,omitempty" doc:"Tax withheld"`
	TaxReceiverID *int64  `json:"taxReceiverID,omitempty" doc:"Tax receiver"`
}

type journalReader interface {
	Journal(ctx context.Context, accountID int64, division, limit, offset int) ([]service.JournalEntry, error)
}

// ListJournalHandler handles GET /v1/owners/{accountID}/divisions/{division}/journal.
type ListJournalHandler struct {
	Wallets journalReader
}

func NewListJournalHandler(wallets journalReader) *ListJournalHandler {
	return &ListJournalHandler{Wallets: wallets}
}

func (h *ListJournalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-division-journal",
		Method:      http.MethodGet,
		Path:        "/v1/owners/{accountID}/divisions/{division}/journal",
		Summary:     "List division journal",
		Description: "Pages through the stored journal of one division, newest first.",
		Tags:        []string{"Owners"},
	}, h.handle)
}

func (h *ListJournalHandler) handle(ctx context.Context, input *ListJournalInput) (*ListJournalOutput, error) {
	entries, err := h.Wallets.Journal(ctx, input.AccountID, input.Division, input.Limit, input.Offset)
	if errors.Is(err, service.ErrOwnerNotFound) {
		return nil, huma.Error404NotFound("unknown owner")
	}
	if errors.Is(err, service.ErrDivisionNotFound) {
		return nil, huma.Error404NotFound("unknown division")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load journal", err)
	}

	out := &ListJournalOutput{}
	out.Body.Entries = make([]JournalEntry, len(entries))
	for i, entry := range entries {
		out.Body.Entries[i] = journalEntryFromService(entry)
	}
	return out, nil
}

func journalEntryFromService(e service.JournalEntry) JournalEntry {
	return JournalEntry{
		EntryID:       e.EntryID,
		Amount:        decimalString(e.Amount),
		Balance:       decimalString(e.Balance),
		ContextID:     e.ContextID,
		ContextIDType: e.ContextIDType,
		Date:          e.Date.Format(time.RFC3339),
		Description:   e.Description,
		FirstPartyID:  e.FirstPartyID,
		Reason:        e.Reason,
		RefType:       e.RefType,
		SecondPartyID: e.SecondPartyID,
		Tax:           decimalString(e.Tax),
		TaxReceiverID: e.TaxReceiverID,
	}
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
