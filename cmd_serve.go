// cmd_serve.go
package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/ViniZap4/groupboard/filesystem"
	httphandlers "github.com/ViniZap4/groupboard/http"
	"github.com/ViniZap4/groupboard/render"
	"github.com/heptiolabs/healthcheck"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the group listing over HTTP",
	Long: `Serves the listing on GET / and GET /search?term=..., with
/metrics, /live and /ready for operators. Both the group data and the
template are read on every request.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (overrides GROUPBOARD_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer source.Close()

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(1000))
	health.AddReadinessCheck("groups", healthcheck.Timeout(func() error {
		return source.Ready(context.Background())
	}, 2*time.Second))
	health.AddReadinessCheck("template", func() error {
		return filesystem.Readable(cfg.TemplatePath)
	})

	renderer := render.NewRenderer(source, cfg.TemplatePath)
	server := httphandlers.NewServer(renderer, logger)
	app := httphandlers.NewApp(server, health)

	errc := make(chan error, 1)
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("data", cfg.DataPath).
			Str("template", cfg.TemplatePath).
			Msg("Server starting")
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
