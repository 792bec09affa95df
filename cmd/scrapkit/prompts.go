package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/prompts"
)

type promptsOptions struct {
	random bool
}

func newPromptsCmd(app *appContext) *cobra.Command {
	opts := &promptsOptions{}

	cmd := &cobra.Command{
		Use:   "prompts [category]",
		Short: "Show memory prompts to help write captions",
		Long:  fmt.Sprintf("Show memory prompts for a category (%s).", strings.Join(prompts.Categories(), ", ")),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := prompts.General
			if len(args) == 1 {
				category = args[0]
			}
			if !slices.Contains(prompts.Categories(), category) {
				app.log.WithFields(map[string]any{"category": category}).Warn("unknown prompt category, showing general prompts")
			}

			list := prompts.For(category)
			out := cmd.OutOrStdout()
			if opts.random {
				fmt.Fprintln(out, list[app.rand.IntN(len(list))])
				return nil
			}

			for i, prompt := range list {
				fmt.Fprintf(out, "%2d. %s\n", i+1, prompt)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.random, "random", false, "Print a single random prompt")

	return cmd
}
