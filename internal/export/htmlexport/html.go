// Package htmlexport renders a scrapbook as a standalone HTML document.
//
// Every element is absolutely positioned from the stored x, y, size and
// rotation fields; the renderer makes no layout decisions of its own.
package htmlexport

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/scrapkit/internal/scrapbook"
	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

//go:embed scrapbook.html.tmpl
var pageTemplate string

var tmpl = template.Must(template.New("scrapbook").Parse(pageTemplate))

type document struct {
	Title       string
	CreatedDate string
	Pages       []pageView
}

type pageView struct {
	Number   int
	Photos   []photoView
	Texts    []elementView
	Stickers []elementView
}

type photoView struct {
	Style template.CSS
	Src   any
}

type elementView struct {
	Style   template.CSS
	Content string
}

// Render writes the HTML export of sb to w.
func Render(w io.Writer, sb *scrapbook.Scrapbook) error {
	if sb == nil {
		return apperrors.NewValidationError("scrapbook", "scrapbook is nil", nil)
	}
	if err := tmpl.Execute(w, buildDocument(sb)); err != nil {
		return apperrors.NewIOError("render html", "", err)
	}
	return nil
}

func buildDocument(sb *scrapbook.Scrapbook) document {
	title := sb.Title
	if strings.TrimSpace(title) == "" {
		title = scrapbook.DefaultTitle
	}
	created := sb.Created.Time
	if created.IsZero() {
		created = time.Now()
	}

	doc := document{
		Title:       title,
		CreatedDate: created.Format("02 January 2006"),
		Pages:       make([]pageView, 0, len(sb.Pages)),
	}

	for i, page := range sb.Pages {
		view := pageView{Number: i + 1}
		for _, photo := range page.Photos {
			view.Photos = append(view.Photos, photoView{
				Style: template.CSS(fmt.Sprintf("left: %dpx; top: %dpx; width: %dpx; height: %dpx; transform: rotate(%ddeg);",
					photo.X, photo.Y, photo.Width, photo.Height, photo.Rotation)),
				Src: imageSource(photo.Src),
			})
		}
		for _, text := range page.Texts {
			view.Texts = append(view.Texts, elementView{
				Style: template.CSS(fmt.Sprintf("left: %dpx; top: %dpx; font-size: %dpx; color: %s; font-family: %s;",
					text.X, text.Y, text.FontSize, cssValue(text.Color), cssValue(text.FontFamily))),
				Content: text.Content,
			})
		}
		for _, sticker := range page.Stickers {
			view.Stickers = append(view.Stickers, elementView{
				Style: template.CSS(fmt.Sprintf("left: %dpx; top: %dpx; font-size: %dpx;",
					sticker.X, sticker.Y, sticker.Size)),
				Content: sticker.Emoji,
			})
		}
		doc.Pages = append(doc.Pages, view)
	}

	return doc
}

// imageSource marks inline raster data URIs as trusted; anything else goes
// through the template's URL sanitizer.
func imageSource(src string) any {
	if strings.HasPrefix(src, "data:image/") && !strings.ContainsAny(src, `"'<> `) {
		return template.URL(src)
	}
	return src
}

// cssValue strips characters that would let a stored value escape its declaration.
func cssValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\\', '\n', '\r':
			return -1
		}
		return r
	}, v)
}
