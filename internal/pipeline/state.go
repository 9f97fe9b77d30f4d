package pipeline

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// State is a step of one account's sync chain.
type State string

const (
	StateIdle                State = "Idle"
	StateSelectingCredential State = "SelectingCredential"
	StateSyncingDivisions    State = "SyncingDivisions"
	StateSyncingBalances     State = "SyncingBalances"
	StateSyncingJournals     State = "SyncingJournals"
	StateDone                State = "Done"
	StateInactive            State = "Inactive"
	StateFailed              State = "Failed"
)

// Terminal states end a chain.
func (s State) Terminal() bool {
	return s == StateDone || s == StateInactive || s == StateFailed
}

// ChainStatus is the last known position of an account's sync chain.
type ChainStatus struct {
	AccountID    int64     `json:"accountID"`
	State        State     `json:"state"`
	CredentialID uuid.UUID `json:"credentialID"`
	FailedStage  State     `json:"failedStage,omitempty"`
	ErrorKind    ErrorKind `json:"errorKind,omitempty"`
	Error        string    `json:"error,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
