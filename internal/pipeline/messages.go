package pipeline

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/operator/actions"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
)

var errInactive = errors.New("owner is not active")

// chainStep carries the account and the credential chosen for the whole
// chain. Every message after credential selection embeds it.
type chainStep struct {
	o            *Orchestrator
	accountID    int64
	credentialID uuid.UUID
}

func (c chainStep) describe(logData *logging.LogData) {
	logData.AddData("accountID", c.accountID)
	if c.credentialID != uuid.Nil {
		logData.AddData("credentialID", c.credentialID.String())
	}
}

// resume loads the owner and a fresh token for the chain's credential.
func (c chainStep) resume(ctx context.Context, svc *service.Service, stage State) (*service.Owner, *service.Selection, error) {
	owner, err := svc.Owner.Get(ctx, c.accountID)
	if errors.Is(err, service.ErrOwnerNotFound) {
		return nil, nil, c.o.fail(c.accountID, c.credentialID, stageError(stage, KindUnknownOwner, c.accountID, err))
	}
	if err != nil {
		return nil, nil, c.o.fail(c.accountID, c.credentialID, stageError(stage, KindStore, c.accountID, err))
	}

	selection, err := svc.Credential.Resume(ctx, c.credentialID)
	if errors.Is(err, service.ErrNoCredential) || errors.Is(err, service.ErrCredentialNotFound) {
		return nil, nil, c.o.fail(c.accountID, c.credentialID, stageError(stage, KindNoCredential, c.accountID, err))
	}
	if err != nil {
		return nil, nil, c.o.fail(c.accountID, c.credentialID, stageError(stage, KindRemoteAPI, c.accountID, err))
	}
	return owner, selection, nil
}

// -- Idle / SelectingCredential --

type syncOwner struct {
	o         *Orchestrator
	accountID int64
}

func (a *syncOwner) Name() string { return "SyncOwner" }

func (a *syncOwner) Perform(ctx context.Context, w *storage.Writer, logData *logging.LogData) ([]actions.IAction, error) {
	logData.AddData("accountID", a.accountID)
	svc := a.o.services.In(w.Tables)

	owner, err := svc.Owner.Get(ctx, a.accountID)
	if errors.Is(err, service.ErrOwnerNotFound) {
		return nil, a.o.fail(a.accountID, uuid.Nil, stageError(StateIdle, KindUnknownOwner, a.accountID, err))
	}
	if err != nil {
		return nil, a.o.fail(a.accountID, uuid.Nil, stageError(StateIdle, KindStore, a.accountID, err))
	}
	if !owner.IsActive {
		a.o.record(a.accountID, uuid.Nil, StateInactive, nil)
		return nil, actions.Warning(errInactive)
	}

	a.o.record(a.accountID, uuid.Nil, StateSelectingCredential, nil)
	endTimer := logData.AddTiming("selectMs")
	selection, err := svc.Credential.SelectCredential(ctx, a.accountID)
	endTimer()
	if errors.Is(err, service.ErrNoCredential) {
		return nil, a.o.fail(a.accountID, uuid.Nil, stageError(StateSelectingCredential, KindNoCredential, a.accountID, err))
	}
	if err != nil {
		return nil, a.o.fail(a.accountID, uuid.Nil, stageError(StateSelectingCredential, KindStore, a.accountID, err))
	}

	step := chainStep{o: a.o, accountID: a.accountID, credentialID: selection.Credential.ID}
	step.describe(logData)
	a.o.record(a.accountID, step.credentialID, StateSyncingDivisions, nil)
	return []actions.IAction{&syncDivisions{chainStep: step}}, nil
}

// -- SyncingDivisions --

type syncDivisions struct {
	chainStep
}

func (a *syncDivisions) Name() string { return "SyncDivisions" }

func (a *syncDivisions) Perform(ctx context.Context, w *storage.Writer, logData *logging.LogData) ([]actions.IAction, error) {
	a.describe(logData)
	owner, selection, err := a.resume(ctx, a.o.services.In(w.Tables), StateSyncingDivisions)
	if err != nil {
		return nil, err
	}

	endTimer := logData.AddTiming("remoteMs")
	fetched, err := a.o.divisions.Run(ctx, w.Tables, owner, selection.AccessToken)
	endTimer()
	logData.AddData("fetched", fetched)
	if err != nil {
		return nil, a.o.fail(a.accountID, a.credentialID, asStageError(err, StateSyncingDivisions, a.accountID))
	}

	a.o.record(a.accountID, a.credentialID, StateSyncingBalances, nil)
	return []actions.IAction{&syncBalances{chainStep: a.chainStep}}, nil
}

// -- SyncingBalances --

type syncBalances struct {
	chainStep
}

func (a *syncBalances) Name() string { return "SyncBalances" }

func (a *syncBalances) Perform(ctx context.Context, w *storage.Writer, logData *logging.LogData) ([]actions.IAction, error) {
	a.describe(logData)
	owner, selection, err := a.resume(ctx, a.o.services.In(w.Tables), StateSyncingBalances)
	if err != nil {
		return nil, err
	}

	endTimer := logData.AddTiming("remoteMs")
	count, err := a.o.balances.Run(ctx, w.Tables, owner, selection.AccessToken)
	endTimer()
	if err != nil {
		return nil, a.o.fail(a.accountID, a.credentialID, asStageError(err, StateSyncingBalances, a.accountID))
	}
	logData.AddData("balances", count)

	a.o.record(a.accountID, a.credentialID, StateSyncingJournals, nil)
	return []actions.IAction{
		&markCredentialUsed{o: a.o, identityID: selection.Credential.IdentityID},
		&syncJournals{chainStep: a.chainStep},
	}, nil
}

// -- SyncingJournals (fan-out) --

type syncJournals struct {
	chainStep
}

func (a *syncJournals) Name() string { return "SyncJournals" }

func (a *syncJournals) Perform(ctx context.Context, w *storage.Writer, logData *logging.LogData) ([]actions.IAction, error) {
	a.describe(logData)
	owner, err := a.o.services.In(w.Tables).Owner.Get(ctx, a.accountID)
	if err != nil {
		return nil, a.o.fail(a.accountID, a.credentialID, stageError(StateSyncingJournals, KindUnknownOwner, a.accountID, err))
	}

	divisions, err := a.o.journals.Plan(ctx, w.Tables, owner)
	if IsKind(err, KindEmptyPrecondition) {
		a.o.record(a.accountID, a.credentialID, StateDone, nil)
		return nil, actions.Warning(err)
	}
	if err != nil {
		return nil, a.o.fail(a.accountID, a.credentialID, asStageError(err, StateSyncingJournals, a.accountID))
	}

	next := make([]actions.IAction, len(divisions))
	for i, division := range divisions {
		next[i] = &syncDivisionJournal{chainStep: a.chainStep, divisionID: division.ID, divisionNumber: division.DivisionNumber}
	}
	logData.AddData("divisions", len(divisions))
	a.o.record(a.accountID, a.credentialID, StateDone, nil)
	return next, nil
}

type syncDivisionJournal struct {
	chainStep
	divisionID     uuid.UUID
	divisionNumber int
}

func (a *syncDivisionJournal) Name() string { return "SyncDivisionJournal" }

// Perform failures stay local to this division and do not change the
// chain status.
func (a *syncDivisionJournal) Perform(ctx context.Context, w *storage.Writer, logData *logging.LogData) ([]actions.IAction, error) {
	a.describe(logData)
	logData.AddData("division", a.divisionNumber)

	svc := a.o.services.In(w.Tables)
	owner, err := svc.Owner.Get(ctx, a.accountID)
	if err != nil {
		return nil, stageError(StateSyncingJournals, KindUnknownOwner, a.accountID, err)
	}
	selection, err := svc.Credential.Resume(ctx, a.credentialID)
	if errors.Is(err, service.ErrNoCredential) || errors.Is(err, service.ErrCredentialNotFound) {
		return nil, actions.Warning(stageError(StateSyncingJournals, KindNoCredential, a.accountID, err))
	}
	if err != nil {
		return nil, stageError(StateSyncingJournals, KindRemoteAPI, a.accountID, err)
	}

	endTimer := logData.AddTiming("remoteMs")
	count, err := a.o.journals.RunDivision(ctx, w.Tables, owner, a.divisionID, selection.AccessToken)
	endTimer()
	if err != nil {
		return nil, err
	}
	logData.AddData("entries", count)

	return []actions.IAction{&markCredentialUsed{o: a.o, identityID: selection.Credential.IdentityID}}, nil
}

// -- Credential bookkeeping --

type markCredentialUsed struct {
	o          *Orchestrator
	identityID int64
}

func (a *markCredentialUsed) Name() string { return "MarkCredentialUsed" }

func (a *markCredentialUsed) Perform(ctx context.Context, w *storage.Writer, logData *logging.LogData) ([]actions.IAction, error) {
	logData.AddData("identityID", a.identityID)
	a.o.services.In(w.Tables).Credential.MarkUsed(ctx, a.identityID)
	return nil, nil
}

type registerCredential struct {
	o          *Orchestrator
	accountID  int64
	identityID int64

	credential   *service.Credential
	ownerCreated bool
}

func (a *registerCredential) Name() string { return "RegisterCredential" }

func (a *registerCredential) Perform(ctx context.Context, w *storage.Writer, logData *logging.LogData) ([]actions.IAction, error) {
	logData.AddData("accountID", a.accountID)
	logData.AddData("identityID", a.identityID)

	credential, ownerCreated, err := a.o.services.In(w.Tables).Credential.Register(ctx, a.accountID, a.identityID)
	if err != nil {
		return nil, err
	}
	a.credential = credential
	a.ownerCreated = ownerCreated
	logData.AddData("ownerCreated", ownerCreated)

	if !ownerCreated {
		return nil, nil
	}
	a.o.record(a.accountID, uuid.Nil, StateIdle, nil)
	return []actions.IAction{&syncOwner{o: a.o, accountID: a.accountID}}, nil
}
