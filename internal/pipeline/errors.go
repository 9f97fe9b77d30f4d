package pipeline

import (
	"errors"
	"fmt"

	"github.com/carson-networks/walletsync/internal/esi"
)

// ErrorKind classifies why a stage stopped.
type ErrorKind string

const (
	KindNoCredential      ErrorKind = "NO_CREDENTIAL"
	KindMissingDivision   ErrorKind = "MISSING_DIVISION"
	KindRemoteAPI         ErrorKind = "REMOTE_API_ERROR"
	KindEmptyPrecondition ErrorKind = "EMPTY_PRECONDITION"
	KindStore             ErrorKind = "STORE_ERROR"
	KindUnknownOwner      ErrorKind = "UNKNOWN_OWNER"
	// KindUnauthorized is a remote failure where the API rejected the
	// credential's token, usually a revoked grant or a missing role.
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
)

// Soft kinds are expected outcomes that resolve on a later sweep.
func (k ErrorKind) Soft() bool {
	return k == KindNoCredential || k == KindEmptyPrecondition
}

// StageError is returned by every stage. Err is the underlying cause.
type StageError struct {
	Stage     State
	Kind      ErrorKind
	AccountID int64
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: account %d: %s: %v", e.Stage, e.AccountID, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err carries a StageError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var stageErr *StageError
	return errors.As(err, &stageErr) && stageErr.Kind == kind
}

func stageError(stage State, kind ErrorKind, accountID int64, err error) *StageError {
	return &StageError{Stage: stage, Kind: kind, AccountID: accountID, Err: err}
}

// asStageError keeps an existing StageError and wraps anything else as a
// store failure of stage.
func asStageError(err error, stage State, accountID int64) *StageError {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr
	}
	return stageError(stage, KindStore, accountID, err)
}

// remoteError classifies a wallet API failure of stage. A rejected token is
// kept apart from other remote failures.
func remoteError(stage State, accountID int64, err error) *StageError {
	var apiErr *esi.APIError
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		return stageError(stage, KindUnauthorized, accountID, err)
	}
	return stageError(stage, KindRemoteAPI, accountID, err)
}
