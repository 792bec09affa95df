// Package scrapbook composes themed pages and multi-page scrapbook templates.
package scrapbook

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/alexisbeaulieu97/scrapkit/internal/layout"
	"github.com/alexisbeaulieu97/scrapkit/internal/logger"
	"github.com/alexisbeaulieu97/scrapkit/internal/theme"
	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

const (
	captionFontSize = 20
	minStickerSize  = 25
	maxStickerSize  = 35
)

// Options configures a Composer. Zero values pick sensible defaults.
type Options struct {
	Rand   *rand.Rand
	Now    func() time.Time
	Logger *logger.Logger
	Title  string
}

// Composer draws page content from a theme and a layout suggestion.
type Composer struct {
	rand  *rand.Rand
	now   func() time.Time
	log   *logger.Logger
	title string
}

// NewComposer builds a Composer. Without an explicit source it seeds from the clock.
func NewComposer(opts Options) *Composer {
	r := opts.Rand
	if r == nil {
		seed := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(seed, seed>>1))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	return &Composer{rand: r, now: now, log: opts.Logger, title: title}
}

// ComposePage produces one fully populated page. Unknown themes fall back to
// vintage; pageNumber is used as given.
func (c *Composer) ComposePage(themeName string, pageNumber int) Page {
	th, ok := theme.Lookup(themeName)
	if !ok {
		c.log.WithFields(map[string]any{"theme": themeName, "fallback": theme.Fallback}).
			Warn("unknown theme, using fallback")
	}

	background := pick(c.rand, th.Backgrounds)
	color := pick(c.rand, th.TextColors)
	font := pick(c.rand, th.Fonts)
	decorations := append([]string(nil), pick(c.rand, th.StickerSets)...)
	caption := pick(c.rand, th.Captions)
	tpl := layout.Suggest(c.rand)

	page := Page{
		ID:          pageNumber,
		Background:  background,
		Layout:      &tpl,
		Decorations: decorations,
		Caption: &Caption{
			Content:    fmt.Sprintf("%s - Halaman %d", caption, pageNumber),
			Color:      color,
			FontFamily: font,
		},
		Theme: th.Name,
		ThemeElements: &ThemeElements{
			PrimaryColor:    color,
			FontFamily:      font,
			DecorationStyle: th.Name,
		},
		Photos:   []Photo{},
		Texts:    make([]Text, 0, len(tpl.Texts)),
		Stickers: []Sticker{},
	}

	for i, pos := range tpl.Texts {
		page.Texts = append(page.Texts, Text{
			ID:         fmt.Sprintf("text_%d", i+1),
			Content:    page.Caption.Content,
			X:          pos.X,
			Y:          pos.Y,
			FontSize:   captionFontSize,
			Color:      color,
			FontFamily: font,
		})
	}

	for i, pos := range tpl.Stickers {
		if i >= len(decorations) {
			break
		}
		page.Stickers = append(page.Stickers, Sticker{
			ID:    fmt.Sprintf("sticker_%d", i+1),
			Emoji: decorations[i],
			X:     pos.X,
			Y:     pos.Y,
			Size:  minStickerSize + c.rand.IntN(maxStickerSize-minStickerSize+1),
		})
	}

	if len(tpl.Stickers) != len(decorations) {
		c.log.WithFields(map[string]any{
			"page":     pageNumber,
			"layout":   tpl.Name,
			"slots":    len(tpl.Stickers),
			"glyphs":   len(decorations),
			"stickers": len(page.Stickers),
		}).Debug("sticker slots and decorations differ in length")
	}

	return page
}

// BuildTemplate composes pages 1..pageCount and stamps a single creation time.
func (c *Composer) BuildTemplate(themeName string, pageCount int) (*Scrapbook, error) {
	if pageCount < 0 {
		return nil, apperrors.NewValidationError("pages", fmt.Sprintf("page count must not be negative, got %d", pageCount), nil)
	}

	th, _ := theme.Lookup(themeName)
	c.log.WithFields(map[string]any{"theme": th.DisplayName, "pages": pageCount}).Info("generating template")

	sb := &Scrapbook{
		Title:     c.title,
		Theme:     themeName,
		ThemeName: th.DisplayName,
		Created:   Timestamp{Time: c.now()},
		Pages:     make([]Page, 0, pageCount),
	}
	for n := 1; n <= pageCount; n++ {
		sb.Pages = append(sb.Pages, c.ComposePage(themeName, n))
	}

	c.log.Success("template generated")
	return sb, nil
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}
