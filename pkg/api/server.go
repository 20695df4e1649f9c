// Package api contains the REST API for workspace-secrets.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/devworkspace-io/workspace-secrets/pkg/api/v1"
	"github.com/devworkspace-io/workspace-secrets/pkg/events"
	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
	"github.com/devworkspace-io/workspace-secrets/pkg/namespaces"
	"github.com/devworkspace-io/workspace-secrets/pkg/secrets"
	"github.com/devworkspace-io/workspace-secrets/pkg/users"
)

// Not sure if these values need to be configurable.
const (
	middlewareTimeout = 60 * time.Second
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func headersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

// Serve starts the server on the given address and serves the API until the
// context is cancelled. It is assumed that the caller sets up appropriate
// signal handling.
func Serve(
	ctx context.Context,
	address string,
	manager *secrets.Manager,
	provisioner *namespaces.Provisioner,
	directory *users.Directory,
	bus *events.Bus,
) error {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Timeout(middlewareTimeout),
		headersMiddleware,
	)

	r.Mount("/api/v1alpha/credentials", v1.CredentialRouter(manager))
	r.Mount("/api/v1alpha/namespace", v1.NamespaceRouter(provisioner))
	r.Mount("/api/v1alpha/users", v1.UserRouter(directory, bus))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", promhttp.Handler())

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("starting API server on %s", address)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
