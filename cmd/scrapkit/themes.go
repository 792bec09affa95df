package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/theme"
)

type themesOptions struct {
	jsonOutput bool
}

func newThemesCmd() *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available scrapbook themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return renderThemesJSON(cmd)
			}
			return renderThemesTable(cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderThemesTable(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tDISPLAY NAME\tFONTS\tDECORATIONS")
	for _, th := range theme.All() {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			th.Name,
			th.DisplayName,
			strings.Join(th.Fonts, ", "),
			strings.Join(th.Decorations, " "),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, th := range theme.All() {
		swatches := make([]string, len(th.Backgrounds))
		for i, bg := range th.Backgrounds {
			swatches[i] = swatch(out, bg)
		}
		fmt.Fprintf(out, "%s %s\n", styled(out, sectionStyle, th.Name+":"), strings.Join(swatches, " "))
	}
	return nil
}

type themeJSON struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Backgrounds []string   `json:"backgrounds"`
	TextColors  []string   `json:"text_colors"`
	Fonts       []string   `json:"fonts"`
	Decorations []string   `json:"decorations"`
	StickerSets [][]string `json:"sticker_sets"`
	Captions    []string   `json:"captions"`
}

func renderThemesJSON(cmd *cobra.Command) error {
	all := theme.All()
	payload := make([]themeJSON, len(all))
	for i, th := range all {
		payload[i] = themeJSON(th)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
