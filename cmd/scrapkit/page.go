package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/theme"
)

type pageOptions struct {
	strict bool
}

func newPageCmd(app *appContext) *cobra.Command {
	opts := &pageOptions{}

	cmd := &cobra.Command{
		Use:   "page <theme> [number]",
		Short: "Compose a single themed page and print it as JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := 1
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return newCommandError("compose page", fmt.Sprintf("parsing page number %q", args[1]), err, "Pass the page number as an integer.")
				}
				number = n
			}

			if opts.strict {
				if _, err := theme.Resolve(args[0]); err != nil {
					return newCommandError("compose page", fmt.Sprintf("resolving theme %q", args[0]), err, "Run 'scrapkit themes' to list available themes.")
				}
			}

			page := app.composer("").ComposePage(args[0], number)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetEscapeHTML(false)
			encoder.SetIndent("", "  ")
			return encoder.Encode(page)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject unknown themes instead of falling back to vintage")

	return cmd
}
