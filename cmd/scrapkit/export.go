package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/export/pdfexport"
)

func newExportCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a saved scrapbook to HTML or PDF",
	}

	cmd.AddCommand(newExportHTMLCmd(app))
	cmd.AddCommand(newExportPDFCmd(app))

	return cmd
}

type exportHTMLOptions struct {
	name string
}

func newExportHTMLCmd(app *appContext) *cobra.Command {
	opts := &exportHTMLOptions{}

	cmd := &cobra.Command{
		Use:   "html <scrapbook>",
		Short: "Write a standalone HTML page next to the scrapbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, name, err := app.libraryFor(args[0])
			if err != nil {
				return newCommandError("export HTML", "opening data directory", err, "Check data_dir in your configuration.")
			}
			sb, err := lib.Load(name)
			if err != nil {
				return newCommandError("export HTML", fmt.Sprintf("loading scrapbook %q", args[0]), err, "Run 'scrapkit list' to view saved scrapbooks.")
			}
			path, err := lib.ExportHTML(sb, opts.name)
			if err != nil {
				return newCommandError("export HTML", "writing the export", err, "Check data directory permissions and try again.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s HTML export created: %s\n", successMark(cmd.OutOrStdout()), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "File name of the export (default scrapbook_export.html)")

	return cmd
}

type exportPDFOptions struct {
	output           string
	mode             string
	pageSize         string
	skipBrokenPhotos bool
}

func newExportPDFCmd(app *appContext) *cobra.Command {
	opts := &exportPDFOptions{}

	cmd := &cobra.Command{
		Use:   "pdf <scrapbook>",
		Short: "Render a scrapbook into a printable PDF",
		Long: "Render a scrapbook into a printable PDF. Stored photo positions are not reproduced: photos are drawn at a fixed size\n" +
			"and emoji stickers the PDF fonts cannot encode are replaced.\n" +
			"Photos that cannot be decoded (for example SVG data URIs) are left out with a warning;\n" +
			"pass --skip-broken-photos=false to fail instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfOpts := pdfexport.Options{
				Mode:             pdfexport.Mode(app.cfg.PDF.Mode),
				PageSize:         pdfexport.PageSize(app.cfg.PDF.PageSize),
				SkipBrokenPhotos: app.cfg.PDF.SkipBrokenPhotos,
				Logger:           app.log,
			}
			if cmd.Flags().Changed("mode") {
				pdfOpts.Mode = pdfexport.Mode(opts.mode)
			}
			if cmd.Flags().Changed("page-size") {
				pdfOpts.PageSize = pdfexport.PageSize(opts.pageSize)
			}
			if cmd.Flags().Changed("skip-broken-photos") {
				pdfOpts.SkipBrokenPhotos = opts.skipBrokenPhotos
			}

			dir, name := splitScrapbookRef(args[0], app.cfg.DataDir)
			path, err := pdfexport.RenderFile(filepath.Join(dir, name), opts.output, pdfOpts)
			if err != nil {
				return newCommandError("export PDF", fmt.Sprintf("rendering %q", args[0]), err, "Check the scrapbook's photos or set pdf.skip_broken_photos in your configuration.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s PDF created: %s\n", successMark(cmd.OutOrStdout()), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "PDF path (default <scrapbook>.pdf next to the JSON file)")
	cmd.Flags().StringVar(&opts.mode, "mode", "basic", "Layout: basic or advanced (default from config)")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "letter", "Paper: letter, a4 or a3; basic layout only (default from config)")
	cmd.Flags().BoolVar(&opts.skipBrokenPhotos, "skip-broken-photos", true, "Leave out photos that cannot be decoded (default from config)")

	return cmd
}
