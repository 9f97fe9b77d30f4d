package owner

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/walletsync/internal/pipeline"
	"github.com/carson-networks/walletsync/internal/service"
)

// GetOwnerInput is the Huma input for reading an owner.
type GetOwnerInput struct {
	AccountID int64 `path:"accountID" minimum:"1" doc:"Remote account id"`
}

// GetOwnerOutput is the Huma output for reading an owner.
type GetOwnerOutput struct {
	Body Owner
}

type chainStatusReader interface {
	Status(accountID int64) (pipeline.ChainStatus, bool)
}

type balanceReader interface {
	Balances(ctx context.Context, accountID int64) ([]service.DivisionBalance, error)
}

// GetOwnerHandler handles GET /v1/owners/{accountID}.
type GetOwnerHandler struct {
	Owners  ownerReader
	Chains  chainStatusReader
	Wallets balanceReader
}

func NewGetOwnerHandler(owners ownerReader, chains chainStatusReader, wallets balanceReader) *GetOwnerHandler {
	return &GetOwnerHandler{Owners: owners, Chains: chains, Wallets: wallets}
}

func (h *GetOwnerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-owner",
		Method:      http.MethodGet,
		Path:        "/v1/owners/{accountID}",
		Summary:     "Get owner",
		Description: "Returns an owner with its sync timestamps, last chain state and the latest balance of each division.",
		Tags:        []string{"Owners"},
	}, h.handle)
}

func (h *GetOwnerHandler) handle(ctx context.Context, input *GetOwnerInput) (*GetOwnerOutput, error) {
	owner, err := h.Owners.Get(ctx, input.AccountID)
	if errors.Is(err, service.ErrOwnerNotFound) {
		return nil, huma.Error404NotFound("unknown owner")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load owner", err)
	}

	balances, err := h.Wallets.Balances(ctx, input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load balances", err)
	}

	body := ownerFromService(owner)
	for _, balance := range balances {
		body.Divisions = append(body.Divisions, divisionFromService(balance))
	}
	if status, ok := h.Chains.Status(input.AccountID); ok {
		body.Chain = &status
	}
	return &GetOwnerOutput{Body: body}, nil
}
