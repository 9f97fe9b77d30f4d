package pipeline

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/esi"
	"github.com/carson-networks/walletsync/internal/operator/actions"
	"github.com/carson-networks/walletsync/internal/service"
)

// Queue runs actions. operator.OperatorDelegator satisfies it.
type Queue interface {
	Enqueue(ctx context.Context, acts ...actions.IAction)
	Process(ctx context.Context, action actions.IAction) error
}

// Orchestrator drives the per-account sync chain:
//
//	Idle -> SelectingCredential -> SyncingDivisions -> SyncingBalances -> SyncingJournals -> Done
//
// Each step is a queued action that emits the next one after its
// transaction commits.
type Orchestrator struct {
	queue     Queue
	services  *service.Service
	divisions *DivisionStage
	balances  *BalanceStage
	journals  *JournalStage
	clock     clock.Clock
	logger    *logrus.Logger

	mutex    sync.Mutex
	statuses map[int64]ChainStatus
}

func NewOrchestrator(queue Queue, services *service.Service, api esi.WalletAPI, c clock.Clock, freshness time.Duration, logger *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		queue:     queue,
		services:  services,
		divisions: NewDivisionStage(api, c, freshness),
		balances:  NewBalanceStage(api, services.Owner, c),
		journals:  NewJournalStage(api, services.Owner, c),
		clock:     c,
		logger:    logger,
		statuses:  make(map[int64]ChainStatus),
	}
}

// ScheduleSync starts a chain for one account.
func (o *Orchestrator) ScheduleSync(ctx context.Context, accountID int64) {
	o.record(accountID, uuid.Nil, StateIdle, nil)
	o.queue.Enqueue(ctx, &syncOwner{o: o, accountID: accountID})
}

// ScheduleSyncAll starts one chain per known owner and returns how many
// were scheduled. Inactive owners are filtered at chain start.
func (o *Orchestrator) ScheduleSyncAll(ctx context.Context) (int, error) {
	owners, err := o.services.Owner.List(ctx, false)
	if err != nil {
		return 0, err
	}
	for _, owner := range owners {
		o.ScheduleSync(ctx, owner.AccountID)
	}
	o.logger.WithField("owners", len(owners)).Info("Orchestrator.SyncAll.Scheduled")
	return len(owners), nil
}

// RegisterCredential binds an identity to an account. The first
// registration of an account creates its owner and starts a sync; later
// ones leave syncing to the sweep or an explicit ScheduleSync.
func (o *Orchestrator) RegisterCredential(ctx context.Context, accountID, identityID int64) (*service.Credential, bool, error) {
	action := &registerCredential{o: o, accountID: accountID, identityID: identityID}
	if err := o.queue.Process(ctx, action); err != nil {
		return nil, false, err
	}
	return action.credential, action.ownerCreated, nil
}

// Status returns the last recorded state of the account's chain.
func (o *Orchestrator) Status(accountID int64) (ChainStatus, bool) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	status, ok := o.statuses[accountID]
	return status, ok
}

// Statuses returns every recorded chain ordered by account id.
func (o *Orchestrator) Statuses() []ChainStatus {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	result := make([]ChainStatus, 0, len(o.statuses))
	for _, status := range o.statuses {
		result = append(result, status)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AccountID < result[j].AccountID })
	return result
}

func (o *Orchestrator) record(accountID int64, credentialID uuid.UUID, state State, err error) {
	status := ChainStatus{
		AccountID:    accountID,
		State:        state,
		CredentialID: credentialID,
		UpdatedAt:    o.clock.Now(),
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		status.FailedStage = stageErr.Stage
		status.ErrorKind = stageErr.Kind
		status.Error = stageErr.Err.Error()
	} else if err != nil {
		status.Error = err.Error()
	}

	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.statuses[accountID] = status
}

// fail records a Failed chain and returns err for the operator. Soft kinds
// are passed as operator warnings so the transaction still commits.
func (o *Orchestrator) fail(accountID int64, credentialID uuid.UUID, err *StageError) error {
	o.record(accountID, credentialID, StateFailed, err)
	if err.Kind.Soft() {
		return actions.Warning(err)
	}
	return err
}
