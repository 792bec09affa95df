package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/scrapkit/internal/photo"
)

// effectsFlags binds the effect pipeline settings shared by several commands.
type effectsFlags struct {
	file       string
	vintage    bool
	blur       float64
	brightness float64
	contrast   float64
	polaroid   bool
	caption    string
}

func (f *effectsFlags) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.file, "effects", "", "JSON file with an effects configuration")
	flags.BoolVar(&f.vintage, "vintage", false, "Apply the vintage (sepia) effect")
	flags.Float64Var(&f.blur, "blur", 0, "Gaussian blur radius")
	flags.Float64Var(&f.brightness, "brightness", 1, "Brightness factor (1 leaves the image unchanged)")
	flags.Float64Var(&f.contrast, "contrast", 1, "Contrast factor (1 leaves the image unchanged)")
	flags.BoolVar(&f.polaroid, "polaroid", false, "Add a polaroid frame")
	flags.StringVar(&f.caption, "caption", "", "Caption written under a polaroid frame")
}

// resolve reads --effects when given, otherwise builds the settings from the flags.
func (f *effectsFlags) resolve() (photo.Effects, error) {
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return photo.Effects{}, err
		}
		return photo.ParseEffects(data)
	}

	fx := photo.Effects{
		Vintage:       f.vintage,
		Blur:          f.blur,
		Brightness:    photo.Factor(f.brightness),
		Contrast:      photo.Factor(f.contrast),
		PolaroidFrame: f.polaroid,
		Caption:       f.caption,
	}
	return fx, fx.Validate()
}

type effectsOptions struct {
	fx      effectsFlags
	dataURI bool
}

func newEffectsCmd(app *appContext) *cobra.Command {
	opts := &effectsOptions{}

	cmd := &cobra.Command{
		Use:   "effects <image> [output]",
		Short: "Apply photo effects to an image",
		Long: "Apply vintage, blur, brightness, contrast and polaroid effects, in that order.\n" +
			"The image may be a file path or a data:image URI. The result is written to output, or printed as a JPEG data URI with --data-uri.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEffects(cmd, app, args, opts)
		},
	}

	opts.fx.bind(cmd.Flags())
	cmd.Flags().BoolVar(&opts.dataURI, "data-uri", false, "Print the result as a JPEG data URI")

	return cmd
}

func runEffects(cmd *cobra.Command, app *appContext, args []string, opts *effectsOptions) error {
	if len(args) < 2 && !opts.dataURI {
		return newCommandError("apply effects", "choosing an output", errors.New("no output path given"), "Pass an output path or use --data-uri.")
	}

	fx, err := opts.fx.resolve()
	if err != nil {
		return newCommandError("apply effects", "reading effect settings", err, "Check the effect flags or the --effects file.")
	}

	if opts.dataURI {
		uri, err := photo.Process(args[0], fx, app.log)
		if err != nil {
			return newCommandError("apply effects", fmt.Sprintf("processing %s", args[0]), err, "Make sure the input is a readable image.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), uri)
		return nil
	}

	img, err := photo.Load(args[0])
	if err != nil {
		return newCommandError("apply effects", fmt.Sprintf("loading %s", args[0]), err, "Make sure the input is a readable image.")
	}
	out, err := photo.ApplyEffects(photo.Flatten(img), fx, app.log)
	if err != nil {
		return newCommandError("apply effects", fmt.Sprintf("processing %s", args[0]), err, "Check the effect settings.")
	}
	if err := photo.Save(out, args[1]); err != nil {
		return newCommandError("apply effects", fmt.Sprintf("writing %s", args[1]), err, "Use a .jpg or .png output path in a writable directory.")
	}

	app.log.WithFields(map[string]any{"output": args[1]}).Success("image processing completed")
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", successMark(cmd.OutOrStdout()), args[1])
	return nil
}
