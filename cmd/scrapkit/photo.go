package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/layout"
	"github.com/alexisbeaulieu97/scrapkit/internal/photo"
)

type photoAddOptions struct {
	fx       effectsFlags
	x, y     int
	width    int
	height   int
	rotation int
}

func newPhotoCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo",
		Short: "Manage the photos of a saved scrapbook",
	}

	cmd.AddCommand(newPhotoAddCmd(app))

	return cmd
}

func newPhotoAddCmd(app *appContext) *cobra.Command {
	opts := &photoAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <scrapbook> <page-id> <image>",
		Short: "Embed an image into a scrapbook page",
		Long: "Embed an image into a scrapbook page as a JPEG data URI, optionally applying photo effects.\n" +
			"Without frame flags the photo takes the next free slot of the page layout.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhotoAdd(cmd, app, args, opts)
		},
	}

	opts.fx.bind(cmd.Flags())
	cmd.Flags().IntVar(&opts.x, "x", 0, "Left edge of the photo frame")
	cmd.Flags().IntVar(&opts.y, "y", 0, "Top edge of the photo frame")
	cmd.Flags().IntVar(&opts.width, "width", 300, "Width of the photo frame")
	cmd.Flags().IntVar(&opts.height, "height", 200, "Height of the photo frame")
	cmd.Flags().IntVar(&opts.rotation, "rotation", 0, "Rotation of the photo frame in degrees")

	return cmd
}

func runPhotoAdd(cmd *cobra.Command, app *appContext, args []string, opts *photoAddOptions) error {
	ref, image := args[0], args[2]

	pageID, err := strconv.Atoi(args[1])
	if err != nil {
		return newCommandError("add photo", fmt.Sprintf("parsing page id %q", args[1]), err, "Pass the page id as an integer.")
	}

	fx, err := opts.fx.resolve()
	if err != nil {
		return newCommandError("add photo", "reading effect settings", err, "Check the effect flags or the --effects file.")
	}

	lib, name, err := app.libraryFor(ref)
	if err != nil {
		return newCommandError("add photo", "opening data directory", err, "Check data_dir in your configuration.")
	}
	sb, err := lib.Load(name)
	if err != nil {
		return newCommandError("add photo", fmt.Sprintf("loading scrapbook %q", ref), err, "Run 'scrapkit list' to view saved scrapbooks.")
	}

	page, err := sb.PageByID(pageID)
	if err != nil {
		return newCommandError("add photo", fmt.Sprintf("finding page %d", pageID), err, fmt.Sprintf("Pick a page id between 1 and %d.", len(sb.Pages)))
	}

	src, err := photo.Process(image, fx, app.log)
	if err != nil {
		return newCommandError("add photo", fmt.Sprintf("processing %s", image), err, "Make sure the image is a readable JPEG, PNG, GIF, BMP or WebP file.")
	}

	var frame *layout.PhotoSlot
	if anyChanged(cmd, "x", "y", "width", "height", "rotation") {
		frame = &layout.PhotoSlot{X: opts.x, Y: opts.y, Width: opts.width, Height: opts.height, Rotation: opts.rotation}
	}

	added, err := page.AddPhoto(src, frame)
	if err != nil {
		return newCommandError("add photo", "placing the photo", err, "Use a positive frame width and height.")
	}

	path, err := lib.Save(sb, name)
	if err != nil {
		return newCommandError("add photo", "saving scrapbook", err, "Check data directory permissions and try again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s to page %d at (%d, %d) %dx%d\n",
		successMark(cmd.OutOrStdout()), added.ID, pageID, added.X, added.Y, added.Width, added.Height)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", path)
	return nil
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
