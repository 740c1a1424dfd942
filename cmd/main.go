// Package main wires the resource manager service and its maintenance commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"resource-manager/config"
	"resource-manager/internal/repository"
	"resource-manager/internal/repository/postgres"
	"resource-manager/internal/seed"
	"resource-manager/internal/usecase"
	"resource-manager/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg *config.Config
	log *zap.SugaredLogger

	seedFile string
	envFile  string
)

var rootCmd = &cobra.Command{
	Use:           "resource-manager",
	Short:         "Engineering resource manager: engineers, projects and capacity utilization",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.NewConfigFromFile(envFile)
		} else {
			cfg, err = config.NewConfig()
		}
		if err != nil {
			return err
		}
		log, err = logger.New(cfg.Logging.Level)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return postgres.New(cmd.Context(), log, cfg).Migrate(cmd.Context())
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a YAML fixture of engineers, projects and assignments",
	Long: `Loads engineers, projects and assignments from a YAML fixture.
Rows that already exist are skipped; assignments pass the capacity gate.

Example:
  resource-manager seed --file db/seed/demo.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file that must exist (defaults to an optional "+config.DefaultEnvFile+")")
	seedCmd.Flags().StringVar(&seedFile, "file", "", "fixture path (defaults to seed.file from config)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func runSeed(ctx context.Context) error {
	path := seedFile
	if path == "" {
		path = cfg.Seed.File
	}
	fixture, err := seed.Load(path)
	if err != nil {
		return err
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		return fmt.Errorf("repository start: %w", err)
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout)
	res, err := seed.New(log, uc).Apply(ctx, fixture)
	if err != nil {
		return err
	}
	log.Infow("seed done", "file", path, "created", res.Created, "skipped", res.Skipped)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if log != nil {
			log.Errorw("command failed", "error", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
