package owner

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/walletsync/internal/operator/actions"
	"github.com/carson-networks/walletsync/internal/service"
)

// SetOwnerActiveInput is the Huma input for toggling an owner.
type SetOwnerActiveInput struct {
	AccountID int64 `path:"accountID" minimum:"1" doc:"Remote account id"`
	Body      struct {
		Active bool `json:"active" doc:"Whether sweeps include this owner"`
	}
}

// SetOwnerActiveOutput is the Huma output for toggling an owner.
type SetOwnerActiveOutput struct {
	Status int
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// SetOwnerActiveHandler handles PUT /v1/owners/{accountID}/active.
type SetOwnerActiveHandler struct {
	Operator actionProcessor
	Owners   *service.OwnerService
}

func NewSetOwnerActiveHandler(op actionProcessor, owners *service.OwnerService) *SetOwnerActiveHandler {
	return &SetOwnerActiveHandler{Operator: op, Owners: owners}
}

func (h *SetOwnerActiveHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "set-owner-active",
		Method:        http.MethodPut,
		Path:          "/v1/owners/{accountID}/active",
		Summary:       "Activate or deactivate owner",
		Tags:          []string{"Owners"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *SetOwnerActiveHandler) handle(ctx context.Context, input *SetOwnerActiveInput) (*SetOwnerActiveOutput, error) {
	err := h.Operator.Process(ctx, &actions.SetOwnerActive{
		Owners:    h.Owners,
		AccountID: input.AccountID,
		Active:    input.Body.Active,
	})
	if errors.Is(err, service.ErrOwnerNotFound) {
		return nil, huma.Error404NotFound("unknown owner")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update owner", err)
	}
	return &SetOwnerActiveOutput{Status: http.StatusNoContent}, nil
}
