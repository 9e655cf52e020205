// main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ViniZap4/groupboard/config"
	"github.com/ViniZap4/groupboard/database"
	"github.com/ViniZap4/groupboard/filesystem"
	"github.com/ViniZap4/groupboard/logging"
	"github.com/ViniZap4/groupboard/render"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "groupboard",
	Short: "Serve a searchable listing of community groups",
	Long: `groupboard renders the groups in groups.json (or Postgres) into
index.html, replacing the {{groups}} placeholder with one table row per
group. Descriptions support *bold*, _italic_ and !1colored! markup.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = logging.Setup(cfg.LogLevel, cfg.LogFormat)
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, renderCmd, checkCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// groupSource is a render.Source that may hold resources and knows how to
// check that it is reachable.
type groupSource interface {
	render.Source
	Ready(ctx context.Context) error
	Close()
}

type fileSource struct {
	filesystem.GroupFile
}

func (s fileSource) Ready(context.Context) error {
	return filesystem.Readable(s.Path)
}

func (s fileSource) Close() {}

type databaseSource struct {
	*database.Source
}

func (s databaseSource) Ready(ctx context.Context) error {
	return s.Ping(ctx)
}

// openSource picks Postgres when a database URL is configured and the JSON
// data file otherwise.
func openSource(ctx context.Context, cfg *config.Config) (groupSource, error) {
	if cfg.DatabaseURL == "" {
		logger.Debug().Str("path", cfg.DataPath).Msg("Reading groups from file")
		return fileSource{filesystem.GroupFile{Path: cfg.DataPath}}, nil
	}

	src, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open group database: %w", err)
	}
	logger.Debug().Msg("Reading groups from database")
	return databaseSource{src}, nil
}
