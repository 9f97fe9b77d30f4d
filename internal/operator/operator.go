package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	id        int
	delegator *OperatorDelegator
}

func NewOperator(id int, d *OperatorDelegator) *Operator {
	return &Operator{
		id:        id,
		delegator: d,
	}
}

// Run processes items until the queue is closed.
func (o *Operator) Run() {
	for {
		item, ok := o.delegator.queue.pop()
		if !ok {
			return
		}
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	defer o.delegator.done()

	name := item.action.Name()
	logData := logging.NewLogData(o.delegator.logger)
	logData.AddData("worker", o.id)

	endTimer := logData.AddTiming("duration")
	next, err := o.perform(item, logData)
	endTimer()

	if item.response != nil {
		item.response <- ActionItemResponse{err: err}
	}

	switch {
	case err == nil:
		logData.Log().Infof("Operator.%s.Complete", name)
	case actions.IsWarning(err):
		logData.Log().WithError(err).Warnf("Operator.%s.Warning", name)
	default:
		logData.Log().WithError(err).Errorf("Operator.%s.Error", name)
	}

	if len(next) > 0 {
		o.delegator.enqueue(context.WithoutCancel(item.ctx), nil, next...)
	}
}

// perform runs the action in its own transaction. Follow-up actions are
// only returned after a successful commit.
func (o *Operator) perform(item ActionItem, logData *logging.LogData) ([]actions.IAction, error) {
	writer, err := o.delegator.storage.Write(item.ctx)
	if err != nil {
		return nil, err
	}

	next, err := item.action.Perform(item.ctx, writer, logData)
	if err != nil && !actions.IsWarning(err) {
		if rbErr := writer.Rollback(); rbErr != nil {
			logData.AddData("rollbackError", rbErr.Error())
		}
		return nil, err
	}

	if commitErr := writer.Commit(); commitErr != nil {
		return nil, commitErr
	}
	if err != nil {
		return nil, err
	}
	return next, nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}

func actionFields(item ActionItem) logrus.Fields {
	return logrus.Fields{"action": item.action.Name()}
}
