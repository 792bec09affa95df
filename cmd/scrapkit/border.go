package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/photo"
)

type borderOptions struct {
	style string
}

func newBorderCmd(app *appContext) *cobra.Command {
	opts := &borderOptions{}

	cmd := &cobra.Command{
		Use:   "border <image> <output>",
		Short: "Frame an image with a decorative border",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := photo.Load(args[0])
			if err != nil {
				return newCommandError("add border", fmt.Sprintf("loading %s", args[0]), err, "Make sure the input is a readable image.")
			}

			framed, err := photo.AddBorder(photo.Flatten(img), photo.BorderStyle(opts.style))
			if err != nil {
				return newCommandError("add border", fmt.Sprintf("drawing %s border", opts.style), err, "Use one of ornate, simple or floral.")
			}
			if err := photo.Save(framed, args[1]); err != nil {
				return newCommandError("add border", fmt.Sprintf("writing %s", args[1]), err, "Use a .jpg or .png output path in a writable directory.")
			}

			app.log.WithFields(map[string]any{"style": opts.style, "output": args[1]}).Debug("border added")
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", successMark(cmd.OutOrStdout()), args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", string(photo.BorderSimple), "Border style: ornate, simple or floral")

	return cmd
}
