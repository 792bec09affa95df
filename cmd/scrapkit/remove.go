package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <scrapbook>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved scrapbook",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, name, err := app.libraryFor(args[0])
			if err != nil {
				return newCommandError("remove", "opening data directory", err, "Check data_dir in your configuration.")
			}
			if err := lib.Remove(name); err != nil {
				return newCommandError("remove", fmt.Sprintf("deleting scrapbook %q", args[0]), err, "Run 'scrapkit list' to view saved scrapbooks.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s\n", successMark(cmd.OutOrStdout()), args[0])
			return nil
		},
	}

	return cmd
}
