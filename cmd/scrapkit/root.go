package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	seed       int64
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "scrapkit",
		Short:         "Scrapkit generates themed digital scrapbooks and exports them to HTML and PDF",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default ~/.scrapkit/config.yaml)")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "Seed for reproducible random choices")

	cmd.AddCommand(newTemplateCmd(app))
	cmd.AddCommand(newPageCmd(app))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newLayoutsCmd(app))
	cmd.AddCommand(newPromptsCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newPhotoCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newEffectsCmd(app))
	cmd.AddCommand(newCollageCmd(app))
	cmd.AddCommand(newBackgroundCmd(app))
	cmd.AddCommand(newBorderCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
