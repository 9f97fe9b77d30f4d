package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carson-networks/walletsync/internal/handlers/v1/credential"
	"github.com/carson-networks/walletsync/internal/handlers/v1/owner"
	"github.com/carson-networks/walletsync/internal/handlers/v1/status"
	"github.com/carson-networks/walletsync/internal/identity"
	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/operator"
	"github.com/carson-networks/walletsync/internal/pipeline"
	"github.com/carson-networks/walletsync/internal/service"
)

type Rest struct {
	Logger       *logrus.Logger
	Port         string
	Service      *service.Service
	Operator     *operator.OperatorDelegator
	Orchestrator *pipeline.Orchestrator
	Grants       *identity.OAuthProvider
}

func (r *Rest) routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Orchestrator)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("walletsync", "1.0.0"))
	owner.NewGetOwnerHandler(r.Service.Owner, r.Orchestrator, r.Service.Wallet).Register(api)
	owner.NewListJournalHandler(r.Service.Wallet).Register(api)
	owner.NewSyncOwnerHandler(r.Service.Owner, r.Orchestrator).Register(api)
	owner.NewSetOwnerActiveHandler(r.Operator, r.Service.Owner).Register(api)
	credential.NewRegisterCredentialHandler(r.Grants, r.Orchestrator).Register(api)
	credential.NewReactivateCredentialHandler(r.Operator, r.Service.Credential).Register(api)

	return otelhttp.NewHandler(mux, "walletsync")
}

// Serve blocks until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
