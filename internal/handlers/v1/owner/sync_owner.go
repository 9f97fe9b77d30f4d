package owner

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/walletsync/internal/pipeline"
	"github.com/carson-networks/walletsync/internal/service"
)

// SyncOwnerInput is the Huma input for starting a sync.
type SyncOwnerInput struct {
	AccountID int64 `path:"accountID" minimum:"1" doc:"Remote account id"`
}

// SyncOwnerOutput is the Huma output for starting a sync.
type SyncOwnerOutput struct {
	Status int
	Body   Owner
}

type ownerReader interface {
	Get(ctx context.Context, accountID int64) (*service.Owner, error)
}

type syncScheduler interface {
	ScheduleSync(ctx context.Context, accountID int64)
	Status(accountID int64) (pipeline.ChainStatus, bool)
}

// SyncOwnerHandler handles POST /v1/owners/{accountID}/sync.
type SyncOwnerHandler struct {
	Owners    ownerReader
	Scheduler syncScheduler
}

// NewSyncOwnerHandler creates a new SyncOwnerHandler.
func NewSyncOwnerHandler(owners ownerReader, scheduler syncScheduler) *SyncOwnerHandler {
	return &SyncOwnerHandler{Owners: owners, Scheduler: scheduler}
}

// Register registers the sync endpoint with the Huma API.
func (h *SyncOwnerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "sync-owner",
		Method:        http.MethodPost,
		Path:          "/v1/owners/{accountID}/sync",
		Summary:       "Sync owner",
		Description:   "Queues a wallet sync for one owner. The chain runs asynchronously.",
		Tags:          []string{"Owners"},
		DefaultStatus: http.StatusAccepted,
	}, h.handle)
}

func (h *SyncOwnerHandler) handle(ctx context.Context, input *SyncOwnerInput) (*SyncOwnerOutput, error) {
	owner, err := h.Owners.Get(ctx, input.AccountID)
	if errors.Is(err, service.ErrOwnerNotFound) {
		return nil, huma.Error404NotFound("unknown owner")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load owner", err)
	}

	h.Scheduler.ScheduleSync(ctx, input.AccountID)

	body := ownerFromService(owner)
	if status, ok := h.Scheduler.Status(input.AccountID); ok {
		body.Chain = &status
	}
	return &SyncOwnerOutput{Status: http.StatusAccepted, Body: body}, nil
}
