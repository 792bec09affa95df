package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/photo"
)

type collageOptions struct {
	layout string
	width  int
	height int
}

func newCollageCmd(app *appContext) *cobra.Command {
	opts := &collageOptions{}

	cmd := &cobra.Command{
		Use:   "collage <output> <image>...",
		Short: "Combine several images into one collage",
		Long: "Combine images on a white canvas. Layouts: grid, horizontal, vertical, random.\n" +
			"Images that cannot be loaded are skipped; random placement skips images that do not fit.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, refs := args[0], args[1:]

			c, err := photo.LoadCollage(refs, photo.Layout(opts.layout), opts.width, opts.height, app.rand, app.log)
			if err != nil {
				return newCommandError("create collage", fmt.Sprintf("arranging %d images", len(refs)), err, "Check that the images are readable and the layout is grid, horizontal, vertical or random.")
			}
			if err := photo.Save(c.Image, output); err != nil {
				return newCommandError("create collage", fmt.Sprintf("writing %s", output), err, "Use a .jpg or .png output path in a writable directory.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Placed %d of %d images in %s\n", successMark(cmd.OutOrStdout()), len(c.Placements), len(refs), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.layout, "layout", string(photo.LayoutGrid), "Arrangement: grid, horizontal, vertical or random")
	cmd.Flags().IntVar(&opts.width, "width", 800, "Canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 600, "Canvas height in pixels")

	return cmd
}
