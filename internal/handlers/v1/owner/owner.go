package owner

import (
	"time"

	"github.com/carson-networks/walletsync/internal/pipeline"
	"github.com/carson-networks/walletsync/internal/service"
)

// Owner is the API response model for a synced account.
type Owner struct {
	ID                 string                `json:"id" doc:"Owner UUID"`
	AccountID          int64                 `json:"accountID" doc:"Remote account id"`
	IsActive           bool                  `json:"isActive" doc:"Whether sweeps include this owner"`
	BalancesLastSynced *time.Time            `json:"balancesLastSynced,omitempty" doc:"Last balance snapshot"`
	JournalsLastSynced *time.Time            `json:"journalsLastSynced,omitempty" doc:"Last journal sync of any division"`
	Chain              *pipeline.ChainStatus `json:"chain,omitempty" doc:"Last known sync chain state"`
	Divisions          []Division            `json:"divisions,omitempty" doc:"Wallet divisions with their latest balance"`
}

// Division is the API response model for a wallet division.
type Division struct {
	DivisionNumber    int        `json:"divisionNumber" doc:"Division number, 1 through 7"`
	Name              string     `json:"name" doc:"Division name"`
	Balance           string     `json:"balance,omitempty" doc:"Latest balance, empty before the first balance sync"`
	CapturedAt        *time.Time `json:"capturedAt,omitempty" doc:"When the latest balance was captured"`
	JournalLastSynced *time.Time `json:"journalLastSynced,omitempty" doc:"Last journal sync of this division"`
}

func ownerFromService(o *service.Owner) Owner {
	return Owner{
		ID:                 o.ID.String(),
		AccountID:          o.AccountID,
		IsActive:           o.IsActive,
		BalancesLastSynced: o.BalancesLastSynced,
		JournalsLastSynced: o.JournalsLastSynced,
	}
}

func divisionFromService(d service.DivisionBalance) Division {
	division := Division{
		DivisionNumber:    d.DivisionNumber,
		Name:              d.Name,
		CapturedAt:        d.CapturedAt,
		JournalLastSynced: d.JournalLastSynced,
	}
	if d.Balance != nil {
		division.Balance = d.Balance.String()
	}
	return division
}
