package operator

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/walletsync/internal/operator/actions"
	"github.com/carson-networks/walletsync/internal/storage"
)

// OperatorDelegator owns the queue, starts/stops Operators (workers), and
// tracks outstanding work so callers can wait for the pipeline to drain.
type OperatorDelegator struct {
	storage    *storage.Storage
	logger     *logrus.Logger
	queue      *queue
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	idleMutex sync.Mutex
	pending   int
	idle      chan struct{}
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int, logger *logrus.Logger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		logger:     logger,
		queue:      newQueue(),
		numWorkers: numWorkers,
		idle:       make(chan struct{}),
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(i, d)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop lets in-flight actions finish, then stops the workers. Actions still
// queued are dropped.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		dropped := d.queue.close()
		for _, item := range dropped {
			d.logger.WithFields(actionFields(item)).Warn("Operator.Dropped")
			if item.response != nil {
				item.response <- ActionItemResponse{err: context.Canceled}
			}
			d.done()
		}
		d.wg.Wait()
	})
}

// Enqueue schedules actions without waiting for them.
func (d *OperatorDelegator) Enqueue(ctx context.Context, acts ...actions.IAction) {
	d.enqueue(context.WithoutCancel(ctx), nil, acts...)
}

// Process runs one action and waits for its own outcome. Follow-up actions
// it emits are not waited for.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	d.enqueue(ctx, respCh, action)

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitIdle blocks until the queue is empty and no action is running.
func (d *OperatorDelegator) WaitIdle(ctx context.Context) error {
	for {
		d.idleMutex.Lock()
		if d.pending == 0 {
			d.idleMutex.Unlock()
			return nil
		}
		idle := d.idle
		d.idleMutex.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, response chan ActionItemResponse, acts ...actions.IAction) {
	items := make([]ActionItem, len(acts))
	for i, action := range acts {
		items[i] = ActionItem{ctx: ctx, action: action, response: response}
	}

	d.addPending(len(items))
	if !d.queue.push(items...) {
		for _, item := range items {
			d.logger.WithFields(actionFields(item)).Warn("Operator.Dropped")
			if item.response != nil {
				item.response <- ActionItemResponse{err: context.Canceled}
			}
		}
		d.addPending(-len(items))
	}
}

func (d *OperatorDelegator) done() {
	d.addPending(-1)
}

func (d *OperatorDelegator) addPending(n int) {
	d.idleMutex.Lock()
	defer d.idleMutex.Unlock()
	d.pending += n
	if d.pending == 0 {
		close(d.idle)
		d.idle = make(chan struct{})
	}
}
