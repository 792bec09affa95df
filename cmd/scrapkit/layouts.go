package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/layout"
)

type layoutsOptions struct {
	jsonOutput bool
}

func newLayoutsCmd(app *appContext) *cobra.Command {
	opts := &layoutsOptions{}

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List the page layout templates",
		Long:  "List the page layout templates. Photo rotations are drawn fresh on every run; use --seed to reproduce them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := layout.Templates(app.rand)
			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(templates)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tPHOTOS\tTEXTS\tSTICKERS\tTILT\tDESCRIPTION")
			for _, tpl := range templates {
				fmt.Fprintf(writer, "%s\t%d\t%d\t%d\t±%d°\t%s\n",
					tpl.Name,
					len(tpl.Photos),
					len(tpl.Texts),
					len(tpl.Stickers),
					layout.MaxTilt(tpl.Name),
					tpl.Description,
				)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
