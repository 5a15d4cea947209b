package main

import (
	"fmt"

	"github.com/gartstein/techjobs/internal/techjobs/config"
	"github.com/gartstein/techjobs/internal/techjobs/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dbConnectRetries bounds the start-up retry loop while the database boots.
const dbConnectRetries = 5

var configPath string

var rootCmd = &cobra.Command{
	Use:          "techjobs",
	Short:        "Track tech jobs, the employers offering them and the skills they require",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		fmt.Sprintf("config file (default %s)", config.DefaultPath))
}

func Execute() error {
	return rootCmd.Execute()
}

// app carries the configuration and logger shared by the subcommands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &app{cfg: cfg, logger: logger}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// connectDB opens the configured database, migrating the schema.
func (a *app) connectDB() (*db.Repository, error) {
	repo, err := db.Connect(a.cfg.DB(), a.logger, dbConnectRetries)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return repo, nil
}
