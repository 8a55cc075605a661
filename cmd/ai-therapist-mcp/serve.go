package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/infrastructure/logging"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/infrastructure/server"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/usecases/support"
)

const serverName = "ai-therapist-mcp"

// logLevelEnv overrides --log-level when set.
const logLevelEnv = "AI_THERAPIST_LOG_LEVEL"

func newServeCmd() *cobra.Command {
	var (
		httpAddr string
		logLevel string
		dev      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel, dev)
			if err != nil {
				return errors.Wrap(err, "creating logger")
			}
			defer func() { _ = logger.Sync() }()

			return serve(httpAddr, logger)
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", "", "serve JSON-RPC over HTTP on this address instead of stdio (e.g. :8080)")
	cmd.Flags().StringVar(&logLevel, "log-level", string(logging.InfoLevel), "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&dev, "dev", false, "development logging (verbose, human-oriented)")

	return cmd
}

func newLogger(level string, dev bool) (*logging.Logger, error) {
	if dev {
		return logging.NewDevelopment()
	}
	if env := os.Getenv(logLevelEnv); env != "" {
		level = env
	}
	cfg := logging.DefaultConfig()
	cfg.Level = logging.LogLevel(level)
	cfg.InitialFields = logging.Fields{"server": serverName, "version": version}
	return logging.New(cfg)
}

func serve(httpAddr string, logger *logging.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := server.NewInMemorySessionStore()
	service := support.NewService(support.Config{
		Sessions: store,
		Logger:   logger,
	})

	srv := server.NewServer(serverName, version, service, logger)

	var stdio *server.StdioTransport
	if httpAddr != "" {
		if err := srv.Connect(server.NewHTTPTransport(httpAddr, logger)); err != nil {
			return errors.Wrap(err, "connecting transport")
		}
		logger.Info("serving over http", logging.Fields{"addr": httpAddr})
	} else {
		stdio = server.NewStdioTransport(logger)
		if err := srv.Connect(stdio); err != nil {
			return errors.Wrap(err, "connecting transport")
		}
		logger.Info("serving over stdio")
	}

	if err := srv.Start(ctx); err != nil {
		return errors.Wrap(err, "starting server")
	}

	if stdio != nil {
		// Exit when the client closes our stdin, not only on signals.
		select {
		case <-ctx.Done():
		case <-stdio.Done():
		}
	} else {
		<-ctx.Done()
	}

	count, _ := store.CountSessions(context.Background())
	logger.Info("server stopped", logging.Fields{"support_sessions": count})

	return srv.Stop()
}
