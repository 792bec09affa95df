package photo

import (
	"image"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scrapkit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 11), B: uint8((x + y) * 3), A: 255})
		}
	}
	return img
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDataURIRoundTrip(t *testing.T) {
	t.Parallel()

	src := checker(16, 8)
	uri, err := EncodeDataURI(src, PNG)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	img, err := Load(uri)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), img.Bounds())

	for _, p := range []image.Point{{0, 0}, {5, 3}, {15, 7}} {
		got := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
		require.Equal(t, src.NRGBAAt(p.X, p.Y), got, "pixel %v", p)
	}
}

func TestLoadFromPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, Save(checker(4, 4), path))

	img, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dx())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	textPath := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("just some notes"), 0o644))

	tests := []struct {
		name    string
		ref     string
		wantIO  bool
		wantDec bool
	}{
		{name: "missing file", ref: filepath.Join(t.TempDir(), "nope.png"), wantIO: true},
		{name: "text file", ref: textPath, wantDec: true},
		{name: "no payload", ref: "data:image/png;base64", wantDec: true},
		{name: "not base64", ref: "data:image/png,rawbytes", wantDec: true},
		{name: "not an image type", ref: "data:text/plain;base64,aGVsbG8=", wantDec: true},
		{name: "image header with text body", ref: "data:image/png;base64,aGVsbG8gd29ybGQ=", wantDec: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(tt.ref)
			require.Error(t, err)
			if tt.wantIO {
				var ioErr *apperrors.IOError
				require.ErrorAs(t, err, &ioErr)
			}
			if tt.wantDec {
				var decErr *apperrors.DecodeError
				require.ErrorAs(t, err, &decErr)
			}
		})
	}
}

func TestFlattenDropsTransparency(t *testing.T) {
	t.Parallel()

	out := Flatten(solid(2, 2, color.NRGBA{}))
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(1, 1))
}

func TestNeutralEffectsLeavePixelsUnchanged(t *testing.T) {
	t.Parallel()

	src := checker(20, 10)
	for _, fx := range []Effects{{}, {Brightness: Factor(1), Contrast: Factor(1)}} {
		out, err := ApplyEffects(src, fx, logger.Nop())
		require.NoError(t, err)
		require.Equal(t, src.Pix, out.Pix)
	}
}

func TestVintageTurnsWhiteSepia(t *testing.T) {
	t.Parallel()

	out, err := ApplyEffects(solid(4, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 255}), Effects{Vintage: true}, nil)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 238, A: 255}, out.NRGBAAt(2, 2))
}

func TestBrightnessAndContrast(t *testing.T) {
	t.Parallel()

	gray := solid(3, 3, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	brighter, err := ApplyEffects(gray, Effects{Brightness: Factor(1.5)}, nil)
	require.NoError(t, err)
	require.Equal(t, uint8(150), brighter.NRGBAAt(0, 0).R)

	// a flat image sits on its own mean, so contrast cannot move it
	flat, err := ApplyEffects(gray, Effects{Contrast: Factor(2)}, nil)
	require.NoError(t, err)
	require.Equal(t, gray.Pix, flat.Pix)
}

func TestPolaroidFrameSize(t *testing.T) {
	t.Parallel()

	out, err := ApplyEffects(checker(100, 50), Effects{PolaroidFrame: true, Caption: "Liburan"}, nil)
	require.NoError(t, err)
	require.Equal(t, 180, out.Bounds().Dx())
	require.Equal(t, 170, out.Bounds().Dy())
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, out.NRGBAAt(0, 0))

	var inked bool
	for x := 0; x < out.Bounds().Dx() && !inked; x++ {
		for y := 40 + 50; y < out.Bounds().Dy(); y++ {
			if out.NRGBAAt(x, y).R != 255 {
				inked = true
				break
			}
		}
	}
	require.True(t, inked, "caption should be drawn in the bottom band")
}

func TestZeroFactorsAreApplied(t *testing.T) {
	t.Parallel()

	px := solid(2, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	black, err := ApplyEffects(px, Effects{Brightness: Factor(0)}, nil)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{A: 255}, black.NRGBAAt(1, 1))

	src := checker(8, 8)
	flat, err := ApplyEffects(src, Effects{Contrast: Factor(0)}, nil)
	require.NoError(t, err)
	first := flat.NRGBAAt(0, 0)
	require.Equal(t, first.R, first.G)
	require.Equal(t, first, flat.NRGBAAt(7, 7))

	fx, err := ParseEffects([]byte(`{"brightness": 0}`))
	require.NoError(t, err)
	require.NotNil(t, fx.Brightness)
	require.Zero(t, *fx.Brightness)
	require.Nil(t, fx.Contrast)
}

func TestDesaturateBlendsTowardLuma(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   color.NRGBA
		want color.NRGBA
	}{
		{in: color.NRGBA{R: 200, G: 100, B: 50, A: 255}, want: color.NRGBA{R: 177, G: 107, B: 72, A: 255}},
		{in: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: color.NRGBA{R: 90, G: 90, B: 90, A: 128}, want: color.NRGBA{R: 90, G: 90, B: 90, A: 128}},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, desaturate(tc.in))
	}
}

func TestNeutralEffectsKeepTranslucentNRGBA(t *testing.T) {
	t.Parallel()

	src := solid(3, 3, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	out, err := ApplyEffects(src, Effects{Brightness: Factor(1), Contrast: Factor(1)}, nil)
	require.NoError(t, err)
	require.Equal(t, src.Pix, out.Pix)
}

func TestParseEffects(t *testing.T) {
	t.Parallel()

	fx, err := ParseEffects([]byte(`{"vintage": true, "blur": 2, "polaroid_frame": true, "caption": "Hai"}`))
	require.NoError(t, err)
	require.Equal(t, Effects{Vintage: true, Blur: 2, PolaroidFrame: true, Caption: "Hai"}, fx)

	_, err = ParseEffects([]byte(`{"blur": -1}`))
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "blur", validationErr.Field)

	_, err = ParseEffects([]byte(`{`))
	var decErr *apperrors.DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestProcessReturnsJPEGDataURI(t *testing.T) {
	t.Parallel()

	uri, err := EncodeDataURI(checker(30, 20), PNG)
	require.NoError(t, err)

	out, err := Process(uri, Effects{Blur: 1}, logger.Nop())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))

	_, err = Process("data:image/png;base64,bm9wZQ==", Effects{}, logger.Nop())
	require.Error(t, err)
}

func TestGridCells(t *testing.T) {
	t.Parallel()

	cells, err := GridCells(4, 2, 800, 600)
	require.NoError(t, err)
	require.Len(t, cells, 4)
	require.Equal(t, image.Rect(5, 5, 395, 295), cells[0])
	require.Equal(t, image.Rect(405, 305, 795, 595), cells[3])
	for _, c := range cells {
		require.Equal(t, 390, c.Dx())
		require.Equal(t, 290, c.Dy())
	}

	_, err = GridCells(0, 1, 800, 600)
	require.Error(t, err)
	_, err = GridCells(100, 100, 50, 50)
	require.Error(t, err)
}

func TestBuildCollageLayouts(t *testing.T) {
	t.Parallel()

	images := []image.Image{checker(40, 30), checker(30, 40), checker(50, 50)}

	tests := []struct {
		layout   Layout
		wantCell image.Rectangle
	}{
		// ceil(sqrt(3)) = 2 columns, 2 rows
		{layout: LayoutGrid, wantCell: image.Rect(5, 5, 395, 295)},
		{layout: LayoutHorizontal, wantCell: image.Rect(5, 5, 261, 595)},
		{layout: LayoutVertical, wantCell: image.Rect(5, 5, 795, 195)},
	}

	for _, tt := range tests {
		t.Run(string(tt.layout), func(t *testing.T) {
			t.Parallel()

			c, err := BuildCollage(images, tt.layout, 800, 600, nil, logger.Nop())
			require.NoError(t, err)
			require.Equal(t, image.Rect(0, 0, 800, 600), c.Image.Bounds())
			require.Len(t, c.Placements, 3)
			require.Equal(t, tt.wantCell, c.Placements[0].Rect)
			require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c.Image.NRGBAAt(0, 0))
		})
	}
}

func TestBuildCollageRandomIsSeeded(t *testing.T) {
	t.Parallel()

	images := []image.Image{checker(60, 40), checker(40, 60), checker(50, 50), checker(80, 20)}

	build := func() *Collage {
		c, err := BuildCollage(images, LayoutRandom, 800, 600, rand.New(rand.NewPCG(7, 7)), nil)
		require.NoError(t, err)
		return c
	}

	first, second := build(), build()
	require.Equal(t, first.Placements, second.Placements)
	require.Equal(t, first.Image.Pix, second.Image.Pix)

	require.Len(t, first.Placements, len(images))
	for _, p := range first.Placements {
		require.GreaterOrEqual(t, p.Rotation, -15)
		require.LessOrEqual(t, p.Rotation, 15)
		require.True(t, p.Rect.Min.In(first.Image.Bounds()))
	}
}

func TestBuildCollageRandomSkipsImagesThatCannotFit(t *testing.T) {
	t.Parallel()

	c, err := BuildCollage([]image.Image{checker(10, 10)}, LayoutRandom, 50, 50, rand.New(rand.NewPCG(1, 1)), nil)
	require.NoError(t, err)
	require.Empty(t, c.Placements)
}

func TestBuildCollageErrors(t *testing.T) {
	t.Parallel()

	var validationErr *apperrors.ValidationError

	c, err := BuildCollage(nil, LayoutGrid, 800, 600, nil, nil)
	require.Nil(t, c)
	require.ErrorAs(t, err, &validationErr)

	_, err = BuildCollage([]image.Image{checker(2, 2)}, Layout("spiral"), 800, 600, nil, nil)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "layout", validationErr.Field)

	_, err = BuildCollage([]image.Image{checker(2, 2)}, LayoutRandom, 800, 600, nil, nil)
	require.Error(t, err)
}

func TestLoadCollageSkipsBrokenImages(t *testing.T) {
	t.Parallel()

	good, err := EncodeDataURI(checker(10, 10), PNG)
	require.NoError(t, err)

	c, err := LoadCollage([]string{"/does/not/exist.png", good}, LayoutGrid, 200, 100, nil, logger.Nop())
	require.NoError(t, err)
	require.Len(t, c.Placements, 1)

	_, err = LoadCollage([]string{"/does/not/exist.png"}, LayoutGrid, 200, 100, nil, logger.Nop())
	require.ErrorContains(t, err, "no valid images")
}

func TestBackground(t *testing.T) {
	t.Parallel()

	fill := color.NRGBA{R: 0xf5, G: 0xe6, B: 0xd3, A: 255}

	plain, err := Background(40, 40, "#F5E6D3", PatternPlain)
	require.NoError(t, err)
	require.Equal(t, fill, plain.NRGBAAt(0, 0))
	require.Equal(t, fill, plain.NRGBAAt(39, 39))

	lines, err := Background(40, 40, "#F5E6D3", PatternLines)
	require.NoError(t, err)
	require.Equal(t, patternInk, lines.NRGBAAt(5, 25))
	require.Equal(t, fill, lines.NRGBAAt(5, 26))

	grid, err := Background(40, 40, "#F5E6D3", PatternGrid)
	require.NoError(t, err)
	require.Equal(t, patternInk, grid.NRGBAAt(20, 7))
	require.Equal(t, fill, grid.NRGBAAt(7, 7))

	dots, err := Background(90, 90, "#F5E6D3", PatternDots)
	require.NoError(t, err)
	require.Equal(t, patternInk, dots.NRGBAAt(30, 30))
	require.Equal(t, fill, dots.NRGBAAt(30, 0))
}

func TestBackgroundErrors(t *testing.T) {
	t.Parallel()

	var validationErr *apperrors.ValidationError

	_, err := Background(10, 10, "brown", PatternPlain)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "color", validationErr.Field)

	_, err = Background(10, 10, "#GGGGGG", PatternPlain)
	require.ErrorAs(t, err, &validationErr)

	_, err = Background(10, 10, "#FFFFFF", Pattern("waves"))
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "pattern", validationErr.Field)

	_, err = Background(0, 10, "#FFFFFF", PatternPlain)
	require.Error(t, err)
}

func TestAddBorder(t *testing.T) {
	t.Parallel()

	red := color.NRGBA{R: 255, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	src := solid(10, 10, red)

	tests := []struct {
		style  BorderStyle
		corner color.NRGBA
		gap    color.NRGBA
	}{
		{style: BorderSimple, corner: black, gap: black},
		{style: BorderOrnate, corner: gold, gap: white},
		{style: BorderFloral, corner: white, gap: white},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			t.Parallel()

			out, err := AddBorder(src, tt.style)
			require.NoError(t, err)
			require.Equal(t, image.Rect(0, 0, 50, 50), out.Bounds())
			require.Equal(t, tt.corner, out.NRGBAAt(0, 0))
			require.Equal(t, tt.gap, out.NRGBAAt(7, 3))
			require.Equal(t, white, out.NRGBAAt(12, 12))
			require.Equal(t, red, out.NRGBAAt(25, 25))
		})
	}

	_, err := AddBorder(src, BorderStyle("lace"))
	require.Error(t, err)
}
