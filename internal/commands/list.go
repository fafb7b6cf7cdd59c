package commands

import (
	"time"

	"github.com/spf13/cobra"

	"taskpad/internal/printer"
	"taskpad/internal/task"
)

func addList(topLevel *cobra.Command) {
	var filterFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task list",
		Example: `
taskpad list
taskpad list --filter active
taskpad list --filter completed
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := task.ParseFilter(filterFlag)
			if err != nil {
				return err
			}

			_, kv, store, err := loadStore()
			if err != nil {
				return err
			}
			defer kv.Close()

			items := task.Project(store.Tasks(), filter, time.Now())
			total, active, completed := store.Counts()
			printer.New().List(items, filter, total, active, completed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterFlag, "filter", "f", "all", "filter mode: all, active, completed")
	topLevel.AddCommand(cmd)
}
