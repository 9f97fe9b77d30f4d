package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/storage"
)

// IAction is one unit of queued work. Perform runs inside a single
// transaction; the actions it returns are enqueued only once that
// transaction has committed.
type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer, logData *logging.LogData) ([]IAction, error)
}

type warning struct {
	err error
}

func (w *warning) Error() string { return w.err.Error() }
func (w *warning) Unwrap() error { return w.err }

// Warning marks err as a soft outcome. The operator still commits the
// transaction, logs at warn level and enqueues nothing further.
func Warning(err error) error {
	if err == nil {
		return nil
	}
	return &warning{err: err}
}

func IsWarning(err error) bool {
	var w *warning
	return errors.As(err, &w)
}
