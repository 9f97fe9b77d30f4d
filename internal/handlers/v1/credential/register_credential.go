package credential

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/walletsync/internal/service"
)

// RegisterCredentialBody is the request body for binding an identity to an
// account.
type RegisterCredentialBody struct {
	AccountID    int64    `json:"accountID" required:"true" minimum:"1" doc:"Remote account id"`
	IdentityID   int64    `json:"identityID" required:"true" minimum:"1" doc:"SSO identity id"`
	RefreshToken string   `json:"refreshToken,omitempty" doc:"Refresh token to store for the identity"`
	Scopes       []string `json:"scopes,omitempty" doc:"Scopes granted with the refresh token, defaults to the wallet scopes"`
}

// RegisterCredentialInput is the Huma input for registering a credential.
type RegisterCredentialInput struct {
	Body RegisterCredentialBody
}

// RegisterCredentialResponse is the response body for a registered credential.
type RegisterCredentialResponse struct {
	ID           string `json:"id" doc:"Credential UUID"`
	OwnerID      string `json:"ownerID" doc:"Owner UUID"`
	OwnerCreated bool   `json:"ownerCreated" doc:"Whether this registration created the owner"`
}

// RegisterCredentialOutput is the Huma output for registering a credential.
type RegisterCredentialOutput struct {
	Status int
	Body   RegisterCredentialResponse
}

type grantSaver interface {
	SaveGrant(ctx context.Context, identityID int64, refreshToken string, scopes []string) error
}

type credentialRegistrar interface {
	RegisterCredential(ctx context.Context, accountID, identityID int64) (*service.Credential, bool, error)
}

// RegisterCredentialHandler handles POST /v1/credentials.
type RegisterCredentialHandler struct {
	Grants    grantSaver
	Registrar credentialRegistrar
}

// NewRegisterCredentialHandler creates a new RegisterCredentialHandler.
func NewRegisterCredentialHandler(grants grantSaver, registrar credentialRegistrar) *RegisterCredentialHandler {
	return &RegisterCredentialHandler{Grants: grants, Registrar: registrar}
}

// Register registers the credential endpoint with the Huma API.
func (h *RegisterCredentialHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-credential",
		Method:        http.MethodPost,
		Path:          "/v1/credentials",
		Summary:       "Register credential",
		Description:   "Binds an identity to an account. Registering a new account creates its owner and queues a sync.",
		Tags:          []string{"Credentials"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterCredentialHandler) handle(ctx context.Context, input *RegisterCredentialInput) (*RegisterCredentialOutput, error) {
	if input.Body.RefreshToken != "" {
		scopes := input.Body.Scopes
		if len(scopes) == 0 {
			scopes = service.RequiredScopes
		}
		if err := h.Grants.SaveGrant(ctx, input.Body.IdentityID, input.Body.RefreshToken, scopes); err != nil {
			return nil, huma.NewError(http.StatusInternalServerError, "failed to store grant", err)
		}
	}

	credential, ownerCreated, err := h.Registrar.RegisterCredential(ctx, input.Body.AccountID, input.Body.IdentityID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register credential", err)
	}

	return &RegisterCredentialOutput{
		Status: http.StatusCreated,
		Body: RegisterCredentialResponse{
			ID:           credential.ID.String(),
			OwnerID:      credential.OwnerID.String(),
			OwnerCreated: ownerCreated,
		},
	}, nil
}
