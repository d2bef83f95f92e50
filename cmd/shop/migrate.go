package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables of the selected adapter and the event journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repos, err := openRepositories(cmd.Context(), app.cfg, app.logger)
			if err != nil {
				return err
			}
			defer repos.close()

			if err = repos.migrate(cmd.Context()); err != nil {
				return err
			}

			app.logger.Info("schema ready", "adapter", app.cfg.Adapter)

			return nil
		},
	}
}
