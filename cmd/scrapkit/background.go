package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/scrapkit/internal/layout"
	"github.com/alexisbeaulieu97/scrapkit/internal/photo"
	"github.com/alexisbeaulieu97/scrapkit/internal/theme"
)

type backgroundOptions struct {
	width   int
	height  int
	color   string
	theme   string
	pattern string
}

func newBackgroundCmd(app *appContext) *cobra.Command {
	opts := &backgroundOptions{}

	cmd := &cobra.Command{
		Use:   "background <output>",
		Short: "Render a page background image",
		Long:  "Render a page background. Without --color one of the theme's backgrounds is drawn at random.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color := opts.color
			if color == "" {
				themeName := opts.theme
				if themeName == "" {
					themeName = app.cfg.DefaultTheme
				}
				th, err := theme.Resolve(themeName)
				if err != nil {
					return newCommandError("render background", fmt.Sprintf("resolving theme %q", themeName), err, "Run 'scrapkit themes' to list available themes.")
				}
				class := th.Backgrounds[app.rand.IntN(len(th.Backgrounds))]
				hex, ok := theme.BackgroundColor(class)
				if !ok {
					return newCommandError("render background", fmt.Sprintf("resolving background %q", class), errors.New("no color known for class"), "Pass an explicit --color.")
				}
				color = hex
			}

			img, err := photo.Background(opts.width, opts.height, color, photo.Pattern(opts.pattern))
			if err != nil {
				return newCommandError("render background", fmt.Sprintf("drawing %s %s", color, opts.pattern), err, "Use a #RRGGBB color and one of dots, lines, grid or plain.")
			}
			if err := photo.Save(img, args[0]); err != nil {
				return newCommandError("render background", fmt.Sprintf("writing %s", args[0]), err, "Use a .jpg or .png output path in a writable directory.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %dx%d %s background (%s) to %s\n",
				successMark(cmd.OutOrStdout()), opts.width, opts.height, opts.pattern, color, args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", layout.CanvasWidth, "Width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", layout.CanvasHeight, "Height in pixels")
	cmd.Flags().StringVar(&opts.color, "color", "", "Background color as #RRGGBB")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme to draw the color from (default from config)")
	cmd.Flags().StringVar(&opts.pattern, "pattern", string(photo.PatternPlain), "Pattern: dots, lines, grid or plain")

	return cmd
}
