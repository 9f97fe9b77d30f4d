package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/walletsync/internal/config"
	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/operator/actions"
	"github.com/carson-networks/walletsync/internal/service"
	"github.com/carson-networks/walletsync/internal/storage"
)

func main() {
	cliApp := &cli.App{
		Name:  "walletsync",
		Usage: "sync account wallets from the remote API",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and the periodic sweep",
				Action: withApp(serve),
			},
			{
				Name:  "migrate",
				Usage: "apply pending database migrations",
				Action: func(cCtx *cli.Context) error {
					env, logger, err := setup()
					if err != nil {
						return err
					}
					return storage.Migrate(env, logger)
				},
			},
			{
				Name:  "sync",
				Usage: "sync one account and wait for the chain to finish",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "account", Required: true, Usage: "remote account id"},
				},
				Action: withApp(syncOne),
			},
			{
				Name:   "sync-all",
				Usage:  "sync every known account once",
				Action: withApp(syncAll),
			},
			{
				Name:  "credential",
				Usage: "manage credentials",
				Subcommands: []*cli.Command{
					{
						Name:  "add",
						Usage: "bind an identity to an account",
						Flags: []cli.Flag{
							&cli.Int64Flag{Name: "account", Required: true, Usage: "remote account id"},
							&cli.Int64Flag{Name: "identity", Required: true, Usage: "SSO identity id"},
							&cli.StringFlag{Name: "refresh-token", Usage: "refresh token to store for the identity"},
							&cli.StringSliceFlag{Name: "scope", Usage: "granted scope, repeatable"},
						},
						Action: withApp(addCredential),
					},
					{
						Name:  "reactivate",
						Usage: "mark every credential of an identity valid again",
						Flags: []cli.Flag{
							&cli.Int64Flag{Name: "identity", Required: true, Usage: "SSO identity id"},
						},
						Action: withApp(reactivateCredential),
					},
				},
			},
			{
				Name:  "owner",
				Usage: "manage owners",
				Subcommands: []*cli.Command{
					{
						Name:   "activate",
						Flags:  []cli.Flag{&cli.Int64Flag{Name: "account", Required: true}},
						Action: withApp(setOwnerActive(true)),
					},
					{
						Name:   "deactivate",
						Flags:  []cli.Flag{&cli.Int64Flag{Name: "account", Required: true}},
						Action: withApp(setOwnerActive(false)),
					},
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("walletsync")
	}
}

func setup() (*config.Config, *logrus.Logger, error) {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, fmt.Errorf("config.ProcessEnvironmentVariables: %w", err)
	}
	return env, logging.SetupLogging(env.LogLevel), nil
}

func withApp(run func(ctx context.Context, cCtx *cli.Context, a *app) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		env, logger, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, env, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		return run(ctx, cCtx, a)
	}
}

func serve(ctx context.Context, _ *cli.Context, a *app) error {
	a.logger.Info("walletsync starting")

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return a.rest().Serve(ctx)
	})
	group.Go(func() error {
		return a.scheduler().Run(ctx)
	})
	return group.Wait()
}

func syncOne(ctx context.Context, cCtx *cli.Context, a *app) error {
	accountID := cCtx.Int64("account")
	if _, err := a.service.Owner.Get(ctx, accountID); err != nil {
		return fmt.Errorf("owner %d: %w", accountID, err)
	}

	a.orchestrator.ScheduleSync(ctx, accountID)
	if err := a.drain(ctx); err != nil {
		return err
	}

	status, _ := a.orchestrator.Status(accountID)
	return printJSON(status)
}

func syncAll(ctx context.Context, _ *cli.Context, a *app) error {
	count, err := a.orchestrator.ScheduleSyncAll(ctx)
	if err != nil {
		return err
	}
	a.logger.WithField("owners", count).Info("SyncAll.Scheduled")

	if err := a.drain(ctx); err != nil {
		return err
	}
	return printJSON(a.orchestrator.Statuses())
}

func addCredential(ctx context.Context, cCtx *cli.Context, a *app) error {
	accountID := cCtx.Int64("account")
	identityID := cCtx.Int64("identity")

	if refreshToken := cCtx.String("refresh-token"); refreshToken != "" {
		scopes := cCtx.StringSlice("scope")
		if len(scopes) == 0 {
			scopes = service.RequiredScopes
		}
		if err := a.tokens.SaveGrant(ctx, identityID, refreshToken, scopes); err != nil {
			return fmt.Errorf("save grant: %w", err)
		}
	}

	credential, ownerCreated, err := a.orchestrator.RegisterCredential(ctx, accountID, identityID)
	if err != nil {
		return err
	}
	a.logger.WithFields(logrus.Fields{
		"credentialID": credential.ID.String(),
		"ownerCreated": ownerCreated,
	}).Info("Credential.Registered")

	if !ownerCreated {
		return nil
	}
	if err := a.drain(ctx); err != nil {
		return err
	}
	status, _ := a.orchestrator.Status(accountID)
	return printJSON(status)
}

func reactivateCredential(ctx context.Context, cCtx *cli.Context, a *app) error {
	action := &actions.ReactivateCredential{
		Credentials: a.service.Credential,
		IdentityID:  cCtx.Int64("identity"),
	}
	if err := a.operator.Process(ctx, action); err != nil {
		return err
	}
	a.logger.WithField("reactivated", action.Reactivated).Info("Credential.Reactivated")
	return nil
}

func setOwnerActive(active bool) func(ctx context.Context, cCtx *cli.Context, a *app) error {
	return func(ctx context.Context, cCtx *cli.Context, a *app) error {
		return a.operator.Process(ctx, &actions.SetOwnerActive{
			Owners:    a.service.Owner,
			AccountID: cCtx.Int64("account"),
			Active:    active,
		})
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
