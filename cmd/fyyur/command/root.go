package command

// root.go defines the fyyur root command and the setup shared by
// subcommands: configuration, logging and the database handle.

import (
	"fmt"
	"log/slog"
	"os"

	"fyyur/database"
	"fyyur/internal/config"
	"fyyur/internal/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	envFile string // optional extra env file loaded before .env
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fyyur",
	Short: "fyyur - venue and artist booking service",
	Long: `fyyur lists venues and artists and books shows between them.

Use "fyyur serve" to run the HTTP API and "fyyur migrate" to create or
update the database schema.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file loaded before .env")
}

// bootstrap loads and validates config, then builds the logger.
func bootstrap() (*config.Config, *slog.Logger, error) {
	if envFile != "" {
		if err := config.LoadEnvFile(envFile); err != nil {
			return nil, nil, err
		}
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log := logger.New(cfg, os.Stderr)
	slog.SetDefault(log)
	return cfg, log, nil
}

func openDatabase(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := database.OpenGorm(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, log); err != nil {
		database.Close(db)
		return nil, err
	}
	return db, nil
}
