package photo

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

// Pattern is a page background texture.
type Pattern string

const (
	PatternDots  Pattern = "dots"
	PatternLines Pattern = "lines"
	PatternGrid  Pattern = "grid"
	PatternPlain Pattern = "plain"
)

// BorderStyle is a decorative frame drawn around a photo.
type BorderStyle string

const (
	BorderOrnate BorderStyle = "ornate"
	BorderSimple BorderStyle = "simple"
	BorderFloral BorderStyle = "floral"
)

const borderSize = 20

var (
	patternInk = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	gold       = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	black      = color.NRGBA{A: 255}
)

// Background renders a solid page background in hex color with an optional pattern.
func Background(width, height int, hex string, pattern Pattern) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, apperrors.NewValidationError("size", fmt.Sprintf("background size must be positive, got %dx%d", width, height), nil)
	}
	fill, err := ParseHexColor(hex)
	if err != nil {
		return nil, err
	}

	img := imaging.New(width, height, fill)

	switch pattern {
	case PatternDots:
		for x := 0; x < width; x += 30 {
			for y := 0; y < height; y += 30 {
				if (x+y)%60 == 0 {
					dot(img, x, y, 2)
				}
			}
		}
	case PatternLines:
		for y := 0; y < height; y += 25 {
			fillRect(img, 0, y, width-1, y, patternInk)
		}
	case PatternGrid:
		for x := 0; x < width; x += 20 {
			fillRect(img, x, 0, x, height-1, patternInk)
		}
		for y := 0; y < height; y += 20 {
			fillRect(img, 0, y, width-1, y, patternInk)
		}
	case PatternPlain, "":
	default:
		return nil, apperrors.NewValidationError("pattern", fmt.Sprintf("unknown background pattern %q", pattern), nil)
	}

	return img, nil
}

// AddBorder mats img on a 20px white border and decorates it.
func AddBorder(img image.Image, style BorderStyle) (*image.NRGBA, error) {
	b := img.Bounds()
	w, h := b.Dx()+2*borderSize, b.Dy()+2*borderSize

	framed := imaging.New(w, h, color.White)
	framed = imaging.Paste(framed, img, image.Pt(borderSize, borderSize))

	switch style {
	case BorderOrnate:
		for i := 0; i < w; i += 10 {
			fillRect(framed, i, 0, i+5, 5, gold)
			fillRect(framed, i, h-5, i+5, h, gold)
		}
		for i := 0; i < h; i += 10 {
			fillRect(framed, 0, i, 5, i+5, gold)
			fillRect(framed, w-5, i, w, i+5, gold)
		}
	case BorderSimple:
		fillRect(framed, 0, 0, w, 5, black)
		fillRect(framed, 0, h-5, w, h, black)
		fillRect(framed, 0, 0, 5, h, black)
		fillRect(framed, w-5, 0, w, h, black)
	case BorderFloral:
	default:
		return nil, apperrors.NewValidationError("style", fmt.Sprintf("unknown border style %q", style), nil)
	}

	return framed, nil
}

// ParseHexColor parses #RRGGBB.
func ParseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.NRGBA{}, apperrors.NewValidationError("color", fmt.Sprintf("expected #RRGGBB, got %q", hex), nil)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, apperrors.NewValidationError("color", fmt.Sprintf("expected #RRGGBB, got %q", hex), err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// fillRect paints the inclusive rectangle (x0,y0)-(x1,y1), clipped to img.
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	rect := image.Rect(x0, y0, x1+1, y1+1).Intersect(img.Bounds())
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func dot(img *image.NRGBA, cx, cy, radius int) {
	bounds := img.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(bounds) {
				img.SetNRGBA(p.X, p.Y, patternInk)
			}
		}
	}
}
