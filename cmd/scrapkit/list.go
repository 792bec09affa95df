package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/store"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(app *appContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved scrapbooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *appContext, opts *listOptions) error {
	lib, err := app.library()
	if err != nil {
		return newCommandError("list", "opening data directory", err, "Check data_dir in your configuration.")
	}

	entries, err := lib.List()
	if err != nil {
		return newCommandError("list", "reading data directory", err, "Check data directory permissions and try again.")
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, lib.Dir(), entries)
	}
	if len(entries) == 0 {
		return renderEmptyList(cmd)
	}
	return renderListTable(cmd, entries)
}

func renderEmptyList(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "No scrapbooks saved yet.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'scrapkit template --save' to create your first scrapbook.")
	return nil
}

func renderListTable(cmd *cobra.Command, entries []store.Entry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tSIZE\tMODIFIED\tPATH")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			e.Name,
			formatSize(e.Size),
			formatRelativeTime(e.ModTime),
			e.Path,
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Directory  string        `json:"directory"`
	Count      int           `json:"count"`
	Scrapbooks []store.Entry `json:"scrapbooks"`
}

func renderListJSON(cmd *cobra.Command, dir string, entries []store.Entry) error {
	payload := listJSONPayload{
		Directory:  dir,
		Count:      len(entries),
		Scrapbooks: entries,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func formatRelativeTime(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}

	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
