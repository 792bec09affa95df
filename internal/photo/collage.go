package photo

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"

	"github.com/alexisbeaulieu97/scrapkit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

// Layout selects how collage images are arranged.
type Layout string

const (
	LayoutGrid       Layout = "grid"
	LayoutHorizontal Layout = "horizontal"
	LayoutVertical   Layout = "vertical"
	LayoutRandom     Layout = "random"
)

const (
	cellPadding = 10

	randomMinSide = 100
	randomMaxSide = 300
	randomMaxTilt = 15
)

// Placement records where one input image ended up on the canvas.
type Placement struct {
	Index    int
	Rect     image.Rectangle
	Rotation int
}

// Collage is a composed canvas plus the placement of every image that fit.
// Images missing from Placements were skipped.
type Collage struct {
	Image      *image.NRGBA
	Placements []Placement
}

// BuildCollage arranges images on a white width x height canvas. Random mode
// draws sizes, positions and rotations from r and does not avoid overlaps.
func BuildCollage(images []image.Image, mode Layout, width, height int, r *rand.Rand, log *logger.Logger) (*Collage, error) {
	if len(images) == 0 {
		return nil, apperrors.NewValidationError("images", "no images provided", nil)
	}
	if width <= 0 || height <= 0 {
		return nil, apperrors.NewValidationError("size", fmt.Sprintf("canvas size must be positive, got %dx%d", width, height), nil)
	}

	log.WithFields(map[string]any{"images": len(images), "layout": mode}).Info("creating collage")

	canvas := imaging.New(width, height, color.White)
	var placements []Placement

	switch mode {
	case LayoutGrid, LayoutHorizontal, LayoutVertical:
		cells, err := GridCells(len(images), columnsFor(mode, len(images)), width, height)
		if err != nil {
			return nil, err
		}
		for i, img := range images {
			cell := cells[i]
			resized := imaging.Resize(img, cell.Dx(), cell.Dy(), imaging.Lanczos)
			canvas = imaging.Paste(canvas, resized, cell.Min)
			placements = append(placements, Placement{Index: i, Rect: cell})
		}
	case LayoutRandom:
		if r == nil {
			return nil, apperrors.NewValidationError("rand", "random layout needs a random source", nil)
		}
		for i, img := range images {
			p, rotated, ok := placeRandomly(img, width, height, r)
			if !ok {
				log.WithFields(map[string]any{"image": i}).Debug("image does not fit canvas, skipped")
				continue
			}
			p.Index = i
			canvas = imaging.Paste(canvas, rotated, p.Rect.Min)
			placements = append(placements, p)
		}
	default:
		return nil, apperrors.NewValidationError("layout", fmt.Sprintf("unknown collage layout %q", mode), nil)
	}

	log.Success("collage created")
	return &Collage{Image: canvas, Placements: placements}, nil
}

// LoadCollage decodes every reference, skipping ones that fail, and builds a collage from the rest.
func LoadCollage(refs []string, mode Layout, width, height int, r *rand.Rand, log *logger.Logger) (*Collage, error) {
	if len(refs) == 0 {
		return nil, apperrors.NewValidationError("images", "no images provided", nil)
	}

	images := make([]image.Image, 0, len(refs))
	for _, ref := range refs {
		img, err := Load(ref)
		if err != nil {
			log.WithFields(map[string]any{"image": ref}).Warn(fmt.Sprintf("error loading image: %v", err))
			continue
		}
		images = append(images, Flatten(img))
	}
	if len(images) == 0 {
		return nil, apperrors.NewValidationError("images", "no valid images found", nil)
	}

	return BuildCollage(images, mode, width, height, r, log)
}

// GridCells returns the paste rectangle of each of n images tiled in cols
// columns: every cell is width/cols x height/rows, inset by 5px on each side.
func GridCells(n, cols, width, height int) ([]image.Rectangle, error) {
	if n <= 0 || cols <= 0 {
		return nil, apperrors.NewValidationError("images", "grid needs at least one image and one column", nil)
	}
	rows := (n + cols - 1) / cols
	cellW, cellH := width/cols, height/rows
	if cellW <= cellPadding || cellH <= cellPadding {
		return nil, apperrors.NewValidationError("size",
			fmt.Sprintf("canvas %dx%d is too small for %d images", width, height, n), nil)
	}

	cells := make([]image.Rectangle, n)
	for i := range cells {
		row, col := i/cols, i%cols
		x := col*cellW + cellPadding/2
		y := row*cellH + cellPadding/2
		cells[i] = image.Rect(x, y, x+cellW-cellPadding, y+cellH-cellPadding)
	}
	return cells, nil
}

func columnsFor(mode Layout, n int) int {
	switch mode {
	case LayoutHorizontal:
		return n
	case LayoutVertical:
		return 1
	default:
		return int(math.Ceil(math.Sqrt(float64(n))))
	}
}

func placeRandomly(img image.Image, width, height int, r *rand.Rand) (Placement, *image.NRGBA, bool) {
	side := randomMinSide + r.IntN(randomMaxSide-randomMinSide+1)
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return Placement{}, nil, false
	}
	aspect := float64(b.Dx()) / float64(b.Dy())

	w, h := side, side
	if aspect > 1 {
		h = max(int(float64(side)/aspect), 1)
	} else {
		w = max(int(float64(side)*aspect), 1)
	}

	maxX, maxY := width-w, height-h
	if maxX <= 0 || maxY <= 0 {
		return Placement{}, nil, false
	}

	x := r.IntN(maxX + 1)
	y := r.IntN(maxY + 1)
	angle := r.IntN(2*randomMaxTilt+1) - randomMaxTilt

	resized := imaging.Resize(img, w, h, imaging.Lanczos)
	rotated := imaging.Rotate(resized, float64(angle), color.White)

	rb := rotated.Bounds()
	return Placement{
		Rect:     image.Rect(x, y, x+rb.Dx(), y+rb.Dy()),
		Rotation: angle,
	}, rotated, true
}
