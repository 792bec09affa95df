// Package layout suggests photo, text and sticker arrangements for a page.
//
// Coordinates are in pixels on a CanvasWidth x CanvasHeight page. Photo
// rotations are redrawn every time a template is produced, so two calls never
// share rotation values even for the same template.
package layout

import "math/rand/v2"

const (
	CanvasWidth  = 600
	CanvasHeight = 400
)

// PhotoSlot is where a photo frame goes and how much it is tilted.
type PhotoSlot struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Width    int `json:"width"`
	Height   int `json:"height"`
	Rotation int `json:"rotation"`
}

// Point is an anchor for a text or sticker element.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Template is one drawn layout suggestion.
type Template struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Photos      []PhotoSlot `json:"photo_positions"`
	Texts       []Point     `json:"text_positions"`
	Stickers    []Point     `json:"sticker_positions"`
}

type frame struct {
	x, y, w, h int
}

type definition struct {
	name        string
	description string
	maxTilt     int
	photos      []frame
	texts       []Point
	stickers    []Point
}

var definitions = []definition{
	{
		name:        "Single Focus",
		description: "Satu foto besar di tengah dengan teks di bawah",
		maxTilt:     5,
		photos:      []frame{{150, 80, 300, 200}},
		texts:       []Point{{200, 320}},
		stickers:    []Point{{400, 100}, {100, 250}},
	},
	{
		name:        "Dual Photos",
		description: "Dua foto bersebelahan",
		maxTilt:     3,
		photos:      []frame{{50, 100, 200, 150}, {350, 100, 200, 150}},
		texts:       []Point{{250, 280}},
		stickers:    []Point{{300, 80}, {480, 200}},
	},
	{
		name:        "Collage Style",
		description: "Beberapa foto dengan ukuran berbeda",
		maxTilt:     8,
		photos: []frame{
			{50, 50, 180, 120},
			{280, 80, 150, 100},
			{480, 60, 100, 80},
			{150, 200, 200, 130},
		},
		texts:    []Point{{400, 250}},
		stickers: []Point{{250, 40}, {450, 150}, {100, 300}},
	},
	{
		name:        "Story Layout",
		description: "Layout bercerita dengan foto dan teks bergantian",
		maxTilt:     5,
		photos:      []frame{{80, 60, 150, 100}},
		texts:       []Point{{280, 80}, {100, 200}, {350, 250}},
		stickers:    []Point{{450, 100}, {50, 180}},
	},
	{
		name:        "Corner Focus",
		description: "Foto di sudut dengan dekorasi mengelilingi",
		maxTilt:     10,
		photos:      []frame{{400, 50, 180, 120}},
		texts:       []Point{{50, 100}, {100, 250}},
		stickers:    []Point{{200, 80}, {350, 200}, {500, 250}},
	},
}

// Suggest draws one template uniformly at random.
func Suggest(r *rand.Rand) Template {
	return definitions[r.IntN(len(definitions))].draw(r)
}

// Templates draws every template once, in definition order.
func Templates(r *rand.Rand) []Template {
	out := make([]Template, 0, len(definitions))
	for _, def := range definitions {
		out = append(out, def.draw(r))
	}
	return out
}

// MaxTilt returns the rotation bound in degrees for the named template, or 0
// if the name is unknown.
func MaxTilt(name string) int {
	for _, def := range definitions {
		if def.name == name {
			return def.maxTilt
		}
	}
	return 0
}

func (d definition) draw(r *rand.Rand) Template {
	photos := make([]PhotoSlot, len(d.photos))
	for i, f := range d.photos {
		photos[i] = PhotoSlot{
			X:        f.x,
			Y:        f.y,
			Width:    f.w,
			Height:   f.h,
			Rotation: r.IntN(2*d.maxTilt+1) - d.maxTilt,
		}
	}

	return Template{
		Name:        d.name,
		Description: d.description,
		Photos:      photos,
		Texts:       append([]Point(nil), d.texts...),
		Stickers:    append([]Point(nil), d.stickers...),
	}
}
