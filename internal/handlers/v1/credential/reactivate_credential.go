package credential

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/walletsync/internal/operator/actions"
	"github.com/carson-networks/walletsync/internal/service"
)

// ReactivateCredentialInput is the Huma input for reactivating an identity.
type ReactivateCredentialInput struct {
	IdentityID int64 `path:"identityID" minimum:"1" doc:"SSO identity id"`
}

// ReactivateCredentialResponse reports how many credentials became valid.
type ReactivateCredentialResponse struct {
	Reactivated int64 `json:"reactivated" doc:"Number of credentials marked valid"`
}

// ReactivateCredentialOutput is the Huma output for reactivating an identity.
type ReactivateCredentialOutput struct {
	Body ReactivateCredentialResponse
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ReactivateCredentialHandler handles POST /v1/credentials/{identityID}/reactivate.
type ReactivateCredentialHandler struct {
	Operator    actionProcessor
	Credentials *service.CredentialService
}

func NewReactivateCredentialHandler(op actionProcessor, credentials *service.CredentialService) *ReactivateCredentialHandler {
	return &ReactivateCredentialHandler{Operator: op, Credentials: credentials}
}

func (h *ReactivateCredentialHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reactivate-credential",
		Method:      http.MethodPost,
		Path:        "/v1/credentials/{identityID}/reactivate",
		Summary:     "Reactivate credential",
		Description: "Marks every credential of an identity valid again, typically after the identity re-authorized.",
		Tags:        []string{"Credentials"},
	}, h.handle)
}

func (h *ReactivateCredentialHandler) handle(ctx context.Context, input *ReactivateCredentialInput) (*ReactivateCredentialOutput, error) {
	action := &actions.ReactivateCredential{
		Credentials: h.Credentials,
		IdentityID:  input.IdentityID,
	}
	err := h.Operator.Process(ctx, action)
	if errors.Is(err, service.ErrCredentialNotFound) {
		return nil, huma.Error404NotFound("no credentials for identity")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to reactivate credential", err)
	}
	return &ReactivateCredentialOutput{Body: ReactivateCredentialResponse{Reactivated: action.Reactivated}}, nil
}
