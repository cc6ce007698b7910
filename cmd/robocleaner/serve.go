package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/api"
	"github.com/cbodonnell/robocleaner/pkg/config"
	"github.com/cbodonnell/robocleaner/pkg/game"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/network"
	"github.com/cbodonnell/robocleaner/pkg/repositories"
	"github.com/cbodonnell/robocleaner/pkg/validator"
	"github.com/cbodonnell/robocleaner/pkg/version"
	"github.com/cbodonnell/robocleaner/pkg/workers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	saveSessionChannelSize = 16
	shutdownTimeout        = 5 * time.Second
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a cleaning session and serve the controller API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "Path to a config file (default: ./robocleaner.{toml,yaml,json} if present)")
	flags.Int("port", config.DefaultPort, "HTTP port to listen on")
	flags.String("log-level", config.DefaultLogLevel, "Log level")
	flags.String("database-url", config.DefaultDatabaseURL, "Session database (sqlite://<path> or postgres://...)")
	flags.String("field-map", "", "Path to a field map file (default: built-in map)")
	flags.Int("max-moves", config.DefaultMaxMoves, "Battery capacity in moves")
	flags.Int("penalty-turns", config.DefaultPenaltyTurns, "Penalty for requesting a move on an empty battery")
	flags.Duration("move-duration", config.DefaultMoveDuration, "Duration of a single move")
	flags.Duration("feedback-interval", config.DefaultFeedbackInterval, "Period between goal feedback messages")

	bindings := map[string]string{
		config.KeyPort:             "port",
		config.KeyLogLevel:         "log-level",
		config.KeyDatabaseURL:      "database-url",
		config.KeyFieldMap:         "field-map",
		config.KeyMaxMoves:         "max-moves",
		config.KeyPenaltyTurns:     "penalty-turns",
		config.KeyMoveDuration:     "move-duration",
		config.KeyFeedbackInterval: "feedback-interval",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	if err := setupLogger(cfg.LogLevel); err != nil {
		return err
	}
	log.Info("Starting robocleaner version %s", version.Get())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repository, err := repositories.NewRepository(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	defer func() {
		if err := repository.Close(context.Background()); err != nil {
			log.Error("Failed to close repository: %v", err)
		}
	}()

	saveSessionChan := make(chan workers.SaveSessionRequest, saveSessionChannelSize)
	saveSessionWorker := workers.NewSaveSessionWorker(workers.NewSaveSessionWorkerOptions{
		Repository:      repository,
		SaveSessionChan: saveSessionChan,
	})
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		saveSessionWorker.Start(workerCtx)
	}()
	defer func() {
		cancelWorker()
		<-workerDone
	}()

	fieldMap, err := validator.LoadFieldMap(cfg.FieldMap)
	if err != nil {
		return fmt.Errorf("failed to load field map: %w", err)
	}

	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{})
	gameManager, err := game.NewGameManager(game.NewGameManagerOptions{
		FieldMap:         fieldMap,
		InitialDirection: types.DirectionUp,
		MaxMoves:         cfg.MaxMoves,
		PenaltyTurns:     cfg.PenaltyTurns,
		MoveDuration:     cfg.MoveDuration,
		FeedbackInterval: cfg.FeedbackInterval,
		MessageSink:      networkManager,
		SaveSessionChan:  saveSessionChan,
	})
	if err != nil {
		return fmt.Errorf("failed to create game manager: %w", err)
	}

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:        cfg.Port,
		Coordinator: gameManager.Coordinator(),
		Goals:       gameManager.Goals(),
		Repository:  repository,
		Feedback:    networkManager,
	})
	apiErr := make(chan error, 1)
	go func() {
		apiErr <- apiServer.Start()
	}()

	gameErr := make(chan error, 1)
	go func() {
		gameErr <- gameManager.Start(ctx)
	}()

	var runErr error
	select {
	case runErr = <-gameErr:
		log.Info("Session %s is over", gameManager.SessionID())
	case <-ctx.Done():
		log.Info("Received shutdown signal")
		runErr = <-gameErr
	case runErr = <-apiErr:
		gameManager.Stop()
		<-gameErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop API server: %v", err)
	}

	return runErr
}
