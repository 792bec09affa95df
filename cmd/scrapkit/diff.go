package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/scrapbook"
	"github.com/alexisbeaulieu97/scrapkit/pkg/diff"
)

type diffOptions struct {
	stat bool
}

func newDiffCmd(app *appContext) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <scrapbook> <scrapbook>",
		Short: "Compare two saved scrapbooks",
		Long:  "Compare the JSON of two saved scrapbooks line by line. Embedded photo data is shortened to its size.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([][]byte, 0, len(args))
			for _, ref := range args {
				lib, name, err := app.libraryFor(ref)
				if err != nil {
					return newCommandError("compare scrapbooks", "opening data directory", err, "Check data_dir in your configuration.")
				}
				sb, err := lib.Load(name)
				if err != nil {
					return newCommandError("compare scrapbooks", fmt.Sprintf("loading scrapbook %q", ref), err, "Run 'scrapkit list' to view saved scrapbooks.")
				}
				data, err := scrapbook.Encode(shortenPhotos(sb))
				if err != nil {
					return newCommandError("compare scrapbooks", fmt.Sprintf("encoding scrapbook %q", ref), err, "Re-save the scrapbook and try again.")
				}
				docs = append(docs, data)
			}

			out := cmd.OutOrStdout()
			if opts.stat {
				added, removed := diff.Stats(docs[0], docs[1])
				fmt.Fprintf(out, "%d lines added, %d lines removed\n", added, removed)
				return nil
			}

			listing := diff.Lines(docs[0], docs[1], args[0], args[1])
			if listing == "" {
				fmt.Fprintf(out, "%s Scrapbooks are identical\n", successMark(out))
				return nil
			}
			fmt.Fprint(out, listing)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Only print the number of changed lines")

	return cmd
}

// shortenPhotos replaces data URIs with a short placeholder carrying the payload size.
func shortenPhotos(sb *scrapbook.Scrapbook) *scrapbook.Scrapbook {
	for i := range sb.Pages {
		for j := range sb.Pages[i].Photos {
			p := &sb.Pages[i].Photos[j]
			if head, body, ok := strings.Cut(p.Src, ","); ok && strings.HasPrefix(head, "data:") {
				p.Src = fmt.Sprintf("%s,<%d bytes>", head, len(body))
			}
		}
	}
	return sb
}
