package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"task-manager-cli/internal/api"
	"task-manager-cli/internal/config"
	"task-manager-cli/internal/storage"
	"task-manager-cli/internal/store"
	"task-manager-cli/pkg/logger"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "taskcli",
		Short:         "Command-line client for the task manager API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(doneCmd())
	rootCmd.AddCommand(editCmd())
	rootCmd.AddCommand(rmCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(examplesCmd())
	rootCmd.AddCommand(contextCmd())
	rootCmd.AddCommand(remindCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app bundles everything a command needs: config, logger, the local cache
// file, the API client and the two stores.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *storage.Store
	client *api.Client
	tasks  *store.TaskStore
	auth   *store.AuthStore
}

func newApp() (*app, error) {
	cfg := config.LoadConfig()

	log, err := logger.New(logger.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := storage.Open(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", cfg.Cache.Path, err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, db, log)

	return &app{
		cfg:    cfg,
		log:    log,
		db:     db,
		client: client,
		tasks:  store.NewTaskStore(client, log),
		auth:   store.NewAuthStore(client, db, log),
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close cache", zap.Error(err))
	}
	_ = a.log.Sync()
}

// snapshot writes the store's current tasks to the local cache so the list
// is still available offline.
func (a *app) snapshot() {
	if err := a.db.SaveTasks(a.tasks.Tasks()); err != nil {
		a.log.Warn("failed to cache tasks", zap.Error(err))
	}
}
