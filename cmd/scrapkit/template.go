package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/scrapbook"
	"github.com/alexisbeaulieu97/scrapkit/internal/theme"
)

type templateOptions struct {
	pages      int
	title      string
	save       bool
	name       string
	jsonOutput bool
	strict     bool
}

func newTemplateCmd(app *appContext) *cobra.Command {
	opts := &templateOptions{}

	cmd := &cobra.Command{
		Use:   "template [theme]",
		Short: "Generate a themed scrapbook template",
		Long: "Generate a scrapbook whose pages draw backgrounds, colors, fonts, stickers and layouts from a theme.\n" +
			"Unknown themes fall back to vintage unless --strict is set.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themeName := app.cfg.DefaultTheme
			if len(args) == 1 {
				themeName = args[0]
			}
			if !cmd.Flags().Changed("pages") {
				opts.pages = app.cfg.DefaultPages
			}
			return runTemplate(cmd, app, themeName, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.pages, "pages", "n", 5, "Number of pages to generate (default from config)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Scrapbook title (default from config)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save the scrapbook into the data directory")
	cmd.Flags().StringVar(&opts.name, "name", "", "File name used with --save (default scrapbook_<timestamp>.json)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the scrapbook as JSON")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject unknown themes instead of falling back to vintage")

	return cmd
}

func runTemplate(cmd *cobra.Command, app *appContext, themeName string, opts *templateOptions) error {
	if opts.strict {
		if _, err := theme.Resolve(themeName); err != nil {
			return newCommandError("generate template", fmt.Sprintf("resolving theme %q", themeName), err, "Run 'scrapkit themes' to list available themes.")
		}
	}

	sb, err := app.composer(opts.title).BuildTemplate(themeName, opts.pages)
	if err != nil {
		return newCommandError("generate template", fmt.Sprintf("building %d pages", opts.pages), err, "Use a page count of zero or more.")
	}

	if opts.save {
		lib, err := app.library()
		if err != nil {
			return newCommandError("generate template", "opening data directory", err, "Check data_dir in your configuration.")
		}
		path, err := lib.Save(sb, opts.name)
		if err != nil {
			return newCommandError("generate template", "saving scrapbook", err, "Check data directory permissions and try again.")
		}
		if !opts.jsonOutput {
			fmt.Fprintf(cmd.OutOrStdout(), "%s Saved to %s\n\n", successMark(cmd.OutOrStdout()), path)
		}
	}

	if opts.jsonOutput {
		return writeScrapbookJSON(cmd.OutOrStdout(), sb)
	}
	return renderScrapbookSummary(cmd.OutOrStdout(), sb)
}

func writeScrapbookJSON(w io.Writer, sb *scrapbook.Scrapbook) error {
	data, err := scrapbook.Encode(sb)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func renderScrapbookSummary(w io.Writer, sb *scrapbook.Scrapbook) error {
	fmt.Fprintln(w, styled(w, titleStyle, sb.Title))
	fmt.Fprintf(w, "Theme:   %s\n", valueOrFallback(sb.ThemeName, valueOrFallback(sb.Theme, "(mixed)")))
	fmt.Fprintf(w, "Created: %s\n", sb.Created.Format("02 January 2006 15:04"))
	if sb.Metadata != nil {
		fmt.Fprintf(w, "Saved:   %s\n", sb.Metadata.SavedAt.Format("02 January 2006 15:04"))
	}
	fmt.Fprintf(w, "Pages:   %d\n", len(sb.Pages))

	if len(sb.Pages) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PAGE\tLAYOUT\tBACKGROUND\tPHOTOS\tTEXTS\tSTICKERS")
	for _, page := range sb.Pages {
		layoutName := "(none)"
		if page.Layout != nil {
			layoutName = page.Layout.Name
		}
		stickers := ""
		for i, s := range page.Stickers {
			if i > 0 {
				stickers += " "
			}
			stickers += s.Emoji
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%d\t%d\t%s\n",
			page.ID,
			layoutName,
			valueOrFallback(page.Background, "-"),
			len(page.Photos),
			len(page.Texts),
			valueOrFallback(stickers, "-"),
		)
	}
	return writer.Flush()
}
