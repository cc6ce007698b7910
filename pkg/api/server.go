package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/cbodonnell/robocleaner/pkg/api/handlers"
	"github.com/cbodonnell/robocleaner/pkg/api/middleware"
	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port        int
	TLS         *TLSConfig
	Coordinator handlers.GoalCoordinator
	Goals       handlers.GoalRegistry
	Repository  repositories.Repository
	// Feedback serves the feedback stream upgrade.
	Feedback http.Handler
	Logger   *log.Logger
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	logger := opts.Logger
	if logger == nil {
		logger = log.With("api")
	}
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts, logger),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter builds the API routes.
func NewRouter(opts NewAPIServerOptions, logger *log.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Use(middleware.NewCORSMiddleware())

	v1.HandleFunc("/goals", handlers.HandleSubmitGoal(opts.Coordinator)).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/goals/{goalID}", handlers.HandleGetGoal(opts.Goals)).Methods(http.MethodGet)
	v1.HandleFunc("/goals/{goalID}", handlers.HandleCancelGoal(opts.Coordinator, opts.Goals)).Methods(http.MethodDelete, http.MethodOptions)
	v1.HandleFunc("/battery", handlers.HandleBatteryStatus(opts.Coordinator)).Methods(http.MethodGet)
	v1.HandleFunc("/initial-state", handlers.HandleInitialState(opts.Coordinator)).Methods(http.MethodGet)
	v1.HandleFunc("/field-map/revealed", handlers.HandleFieldMapRevealed(opts.Coordinator)).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/field-map/cleaned", handlers.HandleFieldMapCleaned(opts.Coordinator)).Methods(http.MethodPost, http.MethodOptions)
	if opts.Repository != nil {
		v1.HandleFunc("/sessions", handlers.HandleListSessions(opts.Repository)).Methods(http.MethodGet)
		v1.HandleFunc("/sessions/{sessionID}", handlers.HandleGetSession(opts.Repository)).Methods(http.MethodGet)
	}
	if opts.Feedback != nil {
		// outside the CORS middleware, the upgrade writes its own headers
		r.Handle("/v1/feedback", opts.Feedback).Methods(http.MethodGet)
	}

	return r
}

// Start starts the APIServer and blocks until it is stopped.
func (s *APIServer) Start() error {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("API server error: %w", err)
	}
	return nil
}

// Serve serves on an existing listener, which lets callers pick a free port.
func (s *APIServer) Serve(listener net.Listener) error {
	log.Info("API server listening on %s", listener.Addr())
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("API server error: %w", err)
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
