package actions

import (
	"context"

	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
)

// ReactivateCredential marks every credential of an identity valid again.
// Reactivated is set once the action has committed.
type ReactivateCredential struct {
	Credentials *service.CredentialService
	IdentityID  int64

	Reactivated int64
}

func (r *ReactivateCredential) Name() string { return "ReactivateCredential" }

func (r *ReactivateCredential) Perform(ctx context.Context, writer *storage.Writer, logData *logging.LogData) ([]IAction, error) {
	logData.AddData("identityID", r.IdentityID)

	count, err := r.Credentials.In(writer.Tables).Reactivate(ctx, r.IdentityID)
	if err != nil {
		return nil, err
	}
	r.Reactivated = count
	logData.AddData("reactivated", count)
	return nil, nil
}
