package photo

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/alexisbeaulieu97/scrapkit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

const (
	vintageColor = 0.7 // share of the input color kept, the rest is luma

	polaroidSide   = 40
	polaroidTop    = 40
	polaroidBottom = 80
)

// Effects selects the steps of the effect pipeline. Zero values leave a step
// out. Brightness and Contrast are factors where 1 is neutral and 0 is a real
// setting (black, flat gray); nil leaves them out.
type Effects struct {
	Vintage       bool     `json:"vintage"`
	Blur          float64  `json:"blur"`
	Brightness    *float64 `json:"brightness,omitempty"`
	Contrast      *float64 `json:"contrast,omitempty"`
	PolaroidFrame bool     `json:"polaroid_frame"`
	Caption       string   `json:"caption,omitempty"`
}

// Factor returns a pointer to v for the Brightness and Contrast fields.
func Factor(v float64) *float64 {
	return &v
}

// ParseEffects decodes an effects configuration from JSON.
func ParseEffects(data []byte) (Effects, error) {
	var fx Effects
	if err := json.Unmarshal(data, &fx); err != nil {
		return Effects{}, apperrors.NewDecodeError("effects", err)
	}
	return fx, fx.Validate()
}

// Validate rejects negative factors and radii.
func (fx Effects) Validate() error {
	switch {
	case fx.Blur < 0:
		return apperrors.NewValidationError("blur", fmt.Sprintf("blur radius must not be negative, got %g", fx.Blur), nil)
	case fx.Brightness != nil && *fx.Brightness < 0:
		return apperrors.NewValidationError("brightness", fmt.Sprintf("brightness must not be negative, got %g", *fx.Brightness), nil)
	case fx.Contrast != nil && *fx.Contrast < 0:
		return apperrors.NewValidationError("contrast", fmt.Sprintf("contrast must not be negative, got %g", *fx.Contrast), nil)
	}
	return nil
}

func (fx Effects) adjustsBrightness() bool { return fx.Brightness != nil && *fx.Brightness != 1 }
func (fx Effects) adjustsContrast() bool   { return fx.Contrast != nil && *fx.Contrast != 1 }

// ApplyEffects runs vintage, blur, brightness, contrast and polaroid framing,
// in that order. Each step reads the previous step's output.
//
// Pixels are processed as non-premultiplied NRGBA. Neutral settings return
// identical pixels for opaque or *image.NRGBA input; other semi-transparent
// images go through an alpha conversion first. Flatten them beforehand when
// exact pixels matter, as Process does.
func ApplyEffects(img image.Image, fx Effects, log *logger.Logger) (*image.NRGBA, error) {
	if err := fx.Validate(); err != nil {
		return nil, err
	}

	out := imaging.Clone(img)
	log.WithFields(map[string]any{"width": out.Bounds().Dx(), "height": out.Bounds().Dy()}).Debug("processing image")

	if fx.Vintage {
		log.Debug("applying vintage effect")
		out = imaging.AdjustFunc(out, desaturate)
		out = imaging.AdjustFunc(out, sepia)
	}

	if fx.Blur > 0 {
		log.WithFields(map[string]any{"radius": fx.Blur}).Debug("applying blur")
		out = imaging.Blur(out, fx.Blur)
	}

	if fx.adjustsBrightness() {
		log.WithFields(map[string]any{"factor": *fx.Brightness}).Debug("adjusting brightness")
		out = brightness(out, *fx.Brightness)
	}

	if fx.adjustsContrast() {
		log.WithFields(map[string]any{"factor": *fx.Contrast}).Debug("adjusting contrast")
		out = contrast(out, *fx.Contrast)
	}

	if fx.PolaroidFrame {
		log.Debug("adding polaroid frame")
		out = polaroid(out, fx.Caption)
	}

	return out, nil
}

// Process loads ref, applies fx and returns the result as a JPEG data URI.
func Process(ref string, fx Effects, log *logger.Logger) (string, error) {
	img, err := Load(ref)
	if err != nil {
		log.Failure(err, "error processing image")
		return "", err
	}

	out, err := ApplyEffects(Flatten(img), fx, log)
	if err != nil {
		log.Failure(err, "error processing image")
		return "", err
	}

	uri, err := EncodeDataURI(out, JPEG)
	if err != nil {
		log.Failure(err, "error processing image")
		return "", err
	}

	log.Success("image processing completed")
	return uri, nil
}

// desaturate blends a pixel toward its rounded Rec. 601 luma, keeping
// vintageColor of the input color.
func desaturate(c color.NRGBA) color.NRGBA {
	luma := math.Floor(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B) + 0.5)
	mix := func(v uint8) uint8 { return clampChannel(luma + vintageColor*(float64(v)-luma)) }
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

func sepia(c color.NRGBA) color.NRGBA {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return color.NRGBA{
		R: clampChannel(0.393*r + 0.769*g + 0.189*b),
		G: clampChannel(0.349*r + 0.686*g + 0.168*b),
		B: clampChannel(0.272*r + 0.534*g + 0.131*b),
		A: c.A,
	}
}

// brightness scales every channel toward black (factor < 1) or white (factor > 1).
func brightness(img *image.NRGBA, factor float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clampChannel(float64(c.R) * factor),
			G: clampChannel(float64(c.G) * factor),
			B: clampChannel(float64(c.B) * factor),
			A: c.A,
		}
	})
}

// contrast moves channels away from (or toward) the image's mean luminance.
func contrast(img *image.NRGBA, factor float64) *image.NRGBA {
	mean := meanLuminance(img)
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clampChannel(mean + factor*(float64(c.R)-mean)),
			G: clampChannel(mean + factor*(float64(c.G)-mean)),
			B: clampChannel(mean + factor*(float64(c.B)-mean)),
			A: c.A,
		}
	})
}

func meanLuminance(img *image.NRGBA) float64 {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}

	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			sum += 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
		}
	}
	return math.Floor(sum/float64(n) + 0.5)
}

func polaroid(img *image.NRGBA, caption string) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	framed := imaging.New(w+2*polaroidSide, h+polaroidTop+polaroidBottom, color.White)
	framed = imaging.Paste(framed, img, image.Pt(polaroidSide, polaroidTop))

	if caption != "" {
		drawer := &font.Drawer{
			Dst:  framed,
			Src:  image.NewUniform(color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}),
			Face: basicfont.Face7x13,
		}
		width := drawer.MeasureString(caption).Ceil()
		x := max((framed.Bounds().Dx()-width)/2, polaroidSide)
		baseline := polaroidTop + h + polaroidBottom/2 + basicfont.Face7x13.Ascent/2
		drawer.Dot = fixed.P(x, baseline)
		drawer.DrawString(caption)
	}

	return framed
}

func clampChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
