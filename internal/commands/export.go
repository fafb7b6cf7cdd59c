package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"taskpad/internal/export"
	"taskpad/internal/printer"
)

func addExport(topLevel *cobra.Command) {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list report to a file",
		Long:  "Writes a Markdown report of every task, active and completed, to todos-YYYY-MM-DD.txt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, kv, store, err := loadStore()
			if err != nil {
				return err
			}
			defer kv.Close()

			if dir == "" {
				dir = cfg.ExportDir
			}

			pp := printer.New()
			tasks := store.Tasks()
			path, err := export.WriteFile(dir, tasks, time.Now())
			if errors.Is(err, export.ErrNothingToExport) {
				pp.NothingToExport()
				return nil
			}
			if err != nil {
				return err
			}
			pp.Exported(path, len(tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "o", "", "directory to write the report into (default: configured export_dir)")
	topLevel.AddCommand(cmd)
}
