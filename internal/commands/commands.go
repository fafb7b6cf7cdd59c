// Package commands wires the CLI surface. The root command launches the
// interactive list; list and export work against the same store without a
// terminal UI.
package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"taskpad/internal/config"
	"taskpad/internal/storage"
	"taskpad/internal/task"
	"taskpad/internal/theme"
	"taskpad/internal/ui"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "taskpad",
		Short:        "A local task list with due dates",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, kv, err := setup()
			if err != nil {
				return err
			}
			defer kv.Close()

			logger := log.New(os.Stderr, "taskpad: ", log.LstdFlags)
			store := task.NewStore(kv, logger)
			store.Load()
			pref := theme.NewPreference(kv, logger)
			pref.Load()

			return ui.Run(store, pref, cfg)
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addExport(topLevel)
}

// setup loads the config and opens the configured storage backend.
func setup() (config.Config, storage.KV, error) {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	kv, err := openKV(cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("open storage: %w", err)
	}
	return cfg, kv, nil
}

func openKV(cfg config.Config) (storage.KV, error) {
	switch cfg.Storage {
	case config.StorageFiles:
		return storage.OpenDiskv(cfg.DataDir)
	case config.StorageSQLite, "":
		return storage.OpenSQLite(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func loadStore() (config.Config, storage.KV, *task.Store, error) {
	cfg, kv, err := setup()
	if err != nil {
		return cfg, nil, nil, err
	}
	store := task.NewStore(kv, log.New(os.Stderr, "taskpad: ", log.LstdFlags))
	store.Load()
	return cfg, kv, store, nil
}
