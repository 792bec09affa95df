package scrapbook

import "github.com/alexisbeaulieu97/scrapkit/internal/layout"

// DefaultTitle is used when a template is built without an explicit title.
const DefaultTitle = "My Digital Scrapbook"

// Scrapbook is an ordered collection of pages plus descriptive metadata.
type Scrapbook struct {
	Title     string    `json:"title"`
	Theme     string    `json:"theme,omitempty"`
	ThemeName string    `json:"theme_name,omitempty"`
	Created   Timestamp `json:"created"`
	Pages     []Page    `json:"pages"`
	Metadata  *Metadata `json:"metadata,omitempty"`
}

// Metadata is stamped onto a scrapbook when it is saved.
type Metadata struct {
	SavedAt Timestamp `json:"saved_at"`
	Version string    `json:"version"`
	AppType string    `json:"app_type"`
}

// Page is the data for one scrapbook page.
type Page struct {
	ID            int              `json:"id"`
	Background    string           `json:"background,omitempty"`
	Layout        *layout.Template `json:"layout,omitempty"`
	Decorations   []string         `json:"decorations,omitempty"`
	Caption       *Caption         `json:"caption,omitempty"`
	Theme         string           `json:"theme,omitempty"`
	ThemeElements *ThemeElements   `json:"theme_elements,omitempty"`
	Photos        []Photo          `json:"photos"`
	Texts         []Text           `json:"texts"`
	Stickers      []Sticker        `json:"stickers"`
}

// Caption is the suggested text drawn for a page.
type Caption struct {
	Content    string `json:"content"`
	Color      string `json:"color"`
	FontFamily string `json:"font_family"`
}

// ThemeElements summarises the styling a composed page picked.
type ThemeElements struct {
	PrimaryColor    string `json:"primary_color"`
	FontFamily      string `json:"font_family"`
	DecorationStyle string `json:"decoration_style"`
}

// Photo places an image reference on the page.
type Photo struct {
	ID       string `json:"id"`
	Src      string `json:"src"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Rotation int    `json:"rotation"`
}

// Text is a positioned text element.
type Text struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	FontSize   int    `json:"fontSize"`
	Color      string `json:"color"`
	FontFamily string `json:"fontFamily"`
}

// Sticker is a positioned decoration glyph.
type Sticker struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Size  int    `json:"size"`
}
