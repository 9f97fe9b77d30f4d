package actions

import (
	"context"

	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
)

// SetOwnerActive soft-activates or deactivates an owner. Running chains
// are not interrupted.
type SetOwnerActive struct {
	Owners    *service.OwnerService
	AccountID int64
	Active    bool
}

func (s *SetOwnerActive) Name() string { return "SetOwnerActive" }

func (s *SetOwnerActive) Perform(ctx context.Context, writer *storage.Writer, logData *logging.LogData) ([]IAction, error) {
	logData.AddData("accountID", s.AccountID)
	logData.AddData("active", s.Active)

	return nil, s.Owners.In(writer.Tables).SetActive(ctx, s.AccountID, s.Active)
}
