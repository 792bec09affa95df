package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(app *appContext) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:     "show <scrapbook>",
		Aliases: []string{"load"},
		Short:   "Load a saved scrapbook and describe it",
		Long:    "Load a saved scrapbook. Bare file names resolve inside the data directory; paths are used as-is.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the full scrapbook as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, app *appContext, ref string, opts *showOptions) error {
	if strings.TrimSpace(ref) == "" {
		return newCommandError("show", "validating scrapbook name", errors.New("scrapbook name cannot be empty"), "Provide the file name of a saved scrapbook.")
	}

	lib, name, err := app.libraryFor(ref)
	if err != nil {
		return newCommandError("show", "opening data directory", err, "Check data_dir in your configuration.")
	}

	sb, err := lib.Load(name)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("loading scrapbook %q", ref), err, "Run 'scrapkit list' to view saved scrapbooks.")
	}

	if opts.jsonOutput {
		return writeScrapbookJSON(cmd.OutOrStdout(), sb)
	}
	return renderScrapbookSummary(cmd.OutOrStdout(), sb)
}
