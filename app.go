package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/walletsync/api"
	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/config"
	"github.com/carson-networks/walletsync/internal/esi"
	"github.com/carson-networks/walletsync/internal/identity"
	"github.com/carson-networks/walletsync/internal/operator"
	"github.com/carson-networks/walletsync/internal/pipeline"
	"github.com/carson-networks/walletsync/internal/scheduler"
	"github.com/carson-networks/walletsync/internal/secrets"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/memstore"
)

// app is every long-lived component, wired once per process.
type app struct {
	env    *config.Config
	logger *logrus.Logger
	clock  clock.Clock

	storage      *storage.Storage
	tokens       *identity.OAuthProvider
	service      *service.Service
	operator     *operator.OperatorDelegator
	orchestrator *pipeline.Orchestrator
}

func newApp(ctx context.Context, env *config.Config, logger *logrus.Logger) (*app, error) {
	c := clock.Real()

	var store *storage.Storage
	switch env.StorageDriver {
	case config.StorageDriverMemory:
		logger.Warn("App.Storage.memory: state is lost on exit")
		store = memstore.New().Storage()
	default:
		var err error
		store, err = storage.NewStorage(ctx, env)
		if err != nil {
			return nil, err
		}
	}

	var manager secrets.ManagerAPI
	if env.SSOClientSecretARN != "" {
		var err error
		manager, err = secrets.NewManager(ctx, env.AWSRegion)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
	}
	clientSecret, err := secrets.ClientSecret(ctx, env, manager)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("client secret: %w", err)
	}

	tokens := identity.NewOAuthProvider(store.Tokens, env.SSOTokenURL, env.SSOClientID, clientSecret, c, logger)
	svc := service.NewService(store, tokens, c, logger)
	op := operator.NewOperatorDelegator(store, env.Workers, logger)
	client := esi.NewClient(env.ESIBaseURL, env.UserAgent, env.ESITimeout)
	orchestrator := pipeline.NewOrchestrator(op, svc, client, c, env.DivisionFreshness, logger)

	op.Start()
	return &app{
		env:          env,
		logger:       logger,
		clock:        c,
		storage:      store,
		tokens:       tokens,
		service:      svc,
		operator:     op,
		orchestrator: orchestrator,
	}, nil
}

func (a *app) rest() *api.Rest {
	return &api.Rest{
		Logger:       a.logger,
		Port:         a.env.HTTPPort,
		Service:      a.service,
		Operator:     a.operator,
		Orchestrator: a.orchestrator,
		Grants:       a.tokens,
	}
}

func (a *app) scheduler() *scheduler.Scheduler {
	return scheduler.New(a.orchestrator, a.clock, a.env.SweepInterval, a.logger)
}

// drain waits for every queued action, including follow-ups.
func (a *app) drain(ctx context.Context) error {
	return a.operator.WaitIdle(ctx)
}

func (a *app) Close() {
	a.operator.Stop()
	if err := a.storage.Close(); err != nil {
		a.logger.WithError(err).Error("App.Close.storage")
	}
}
