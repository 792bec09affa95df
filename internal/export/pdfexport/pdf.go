// Package pdfexport renders a scrapbook into a printable PDF.
//
// The PDF is a flowing document, not a reproduction of the page canvas: stored
// photo positions, sizes and rotations are ignored and every photo is drawn at
// a fixed size. Text goes through the cp1252 core fonts, so glyphs they cannot
// encode (emoji stickers in particular) are replaced with '.'.
package pdfexport

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/scrapkit/internal/logger"
	"github.com/alexisbeaulieu97/scrapkit/internal/photo"
	"github.com/alexisbeaulieu97/scrapkit/internal/scrapbook"
	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

// Mode selects the document layout.
type Mode string

const (
	ModeBasic    Mode = "basic"
	ModeAdvanced Mode = "advanced"
)

// PageSize names a paper format accepted by the basic layout.
type PageSize string

const (
	Letter PageSize = "letter"
	A4     PageSize = "a4"
	A3     PageSize = "a3"
)

const (
	inch = 72.0
	cm   = inch / 2.54

	dateLayout = "02 January 2006"
)

type rgb struct{ r, g, b int }

var (
	titleColor     = rgb{0x92, 0x40, 0x0e}
	pageTitleColor = rgb{0x37, 0x41, 0x51}
	bodyColor      = rgb{0, 0, 0}
)

// Options configures a render.
type Options struct {
	Mode     Mode
	PageSize PageSize // ignored by the advanced layout, which is always A4
	// SkipBrokenPhotos logs and leaves out photos that cannot be decoded
	// instead of failing the render.
	SkipBrokenPhotos bool
	Logger           *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeBasic
	}
	if o.PageSize == "" {
		o.PageSize = Letter
	}
	return o
}

// Validate rejects unknown modes and page sizes.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeBasic, ModeAdvanced, "":
	default:
		return apperrors.NewValidationError("mode", fmt.Sprintf("unknown PDF mode %q (want basic or advanced)", o.Mode), nil)
	}
	switch o.PageSize {
	case Letter, A4, A3, "":
	default:
		return apperrors.NewValidationError("page_size", fmt.Sprintf("unknown page size %q (want letter, a4 or a3)", o.PageSize), nil)
	}
	return nil
}

// Render writes the PDF for sb to w.
func Render(w io.Writer, sb *scrapbook.Scrapbook, opts Options) error {
	pdf, err := build(sb, opts)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return apperrors.NewIOError("write pdf", "", err)
	}
	return nil
}

// RenderFile loads a saved scrapbook and writes its PDF. An empty pdfPath
// places <basename>.pdf next to the JSON file. The written path is returned.
func RenderFile(jsonPath, pdfPath string, opts Options) (string, error) {
	log := opts.Logger

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		log.Failure(err, "error creating PDF from JSON")
		return "", apperrors.NewIOError("read", jsonPath, err)
	}
	sb, err := scrapbook.Decode(data, jsonPath)
	if err != nil {
		log.Failure(err, "error creating PDF from JSON")
		return "", err
	}

	if pdfPath == "" {
		base := strings.TrimSuffix(filepath.Base(jsonPath), filepath.Ext(jsonPath))
		pdfPath = filepath.Join(filepath.Dir(jsonPath), base+".pdf")
	}

	var buf bytes.Buffer
	if err := Render(&buf, sb, opts); err != nil {
		log.Failure(err, "error creating PDF")
		return "", err
	}
	if err := os.WriteFile(pdfPath, buf.Bytes(), 0o644); err != nil {
		log.Failure(err, "error creating PDF")
		return "", apperrors.NewIOError("write", pdfPath, err)
	}

	log.WithFields(map[string]any{"path": pdfPath, "mode": opts.withDefaults().Mode}).Success("PDF created successfully")
	return pdfPath, nil
}

// document carries the fpdf handle plus the helpers shared by both layouts.
type document struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	opts Options
	log  *logger.Logger
}

func build(sb *scrapbook.Scrapbook, opts Options) (*fpdf.Fpdf, error) {
	if sb == nil {
		return nil, apperrors.NewValidationError("scrapbook", "scrapbook is nil", nil)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	size := string(opts.PageSize)
	if opts.Mode == ModeAdvanced {
		size = string(A4)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{UnitStr: "pt", SizeStr: size})
	created := sb.Created.Time
	if created.IsZero() {
		created = time.Now()
	}
	pdf.SetCreationDate(created)
	pdf.SetCreator("scrapkit", true)

	doc := &document{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		opts: opts,
		log:  opts.Logger,
	}
	title := sb.Title
	if strings.TrimSpace(title) == "" {
		title = scrapbook.DefaultTitle
	}
	pdf.SetTitle(title, true)

	var err error
	switch opts.Mode {
	case ModeAdvanced:
		err = doc.advanced(sb, title, created)
	default:
		err = doc.basic(sb, title, created)
	}
	if err != nil {
		return nil, err
	}
	if err := pdf.Error(); err != nil {
		return nil, apperrors.NewIOError("render pdf", "", err)
	}
	return pdf, nil
}

func (d *document) basic(sb *scrapbook.Scrapbook, title string, created time.Time) error {
	pdf := d.pdf
	pdf.SetMargins(inch, inch, inch)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	d.paragraph(title, "B", 24, titleColor, "C", 30+20)
	d.paragraph("Dibuat pada: "+created.Format(dateLayout), "", 10, bodyColor, "L", 30)

	for i, page := range sb.Pages {
		number := i + 1
		d.paragraph(fmt.Sprintf("Halaman %d", number), "B", 16, pageTitleColor, "C", 20+20)

		for j, p := range page.Photos {
			img, ok, err := d.loadPhoto(p, number, 400, 300)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			d.image(fmt.Sprintf("p%d_%d", number, j), img, 85, 4*inch, 3*inch, true)
			pdf.Ln(3*inch + 10)
		}

		for _, text := range page.Texts {
			if text.Content == "" {
				continue
			}
			d.paragraph(text.Content, "", 12, bodyColor, "L", 10+10)
		}

		if glyphs := stickerLine(page.Stickers); glyphs != "" {
			d.paragraph("Stickers: "+glyphs, "", 10, bodyColor, "L", 10)
		}

		if number < len(sb.Pages) {
			pdf.Ln(50)
		}
	}
	return nil
}

const (
	advancedMargin = 2.5 * cm
	cellPad        = 6.0
)

var columnWidths = [2]float64{10 * cm, 6 * cm}

func (d *document) advanced(sb *scrapbook.Scrapbook, title string, created time.Time) error {
	pdf := d.pdf
	pdf.SetMargins(advancedMargin, advancedMargin, advancedMargin)
	pdf.SetAutoPageBreak(true, advancedMargin)
	pdf.AddPage()

	d.paragraph(title, "B", 24, titleColor, "C", 30+2*cm)

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.SetDrawColor(titleColor.r, titleColor.g, titleColor.b)
	pdf.SetLineWidth(2)
	pdf.Line(left, y, pageW-right, y)
	pdf.Ln(1 * cm)

	for _, meta := range []string{
		fmt.Sprintf("Total Halaman: %d", len(sb.Pages)),
		"Dibuat: " + created.Format(dateLayout),
		"Tema: " + themeSummary(sb),
	} {
		d.paragraph(meta, "", 10, bodyColor, "L", 0.5*cm)
	}
	pdf.Ln(2 * cm)

	titler := cases.Title(language.Und)
	for i, page := range sb.Pages {
		number := i + 1
		if number > 1 {
			pdf.AddPage()
		}

		theme := page.Theme
		if theme == "" {
			theme = "default"
		}
		d.paragraph(fmt.Sprintf("Halaman %d - Tema %s", number, titler.String(theme)), "B", 16, pageTitleColor, "C", 20+1*cm)

		if err := d.photoRow(page, number); err != nil {
			return err
		}

		var texts []string
		for _, text := range page.Texts {
			if text.Content != "" {
				texts = append(texts, text.Content)
			}
		}
		if len(texts) > 0 {
			d.tableCell(strings.Join(texts, " • "), 12)
		}
		if glyphs := stickerLine(page.Stickers); glyphs != "" {
			d.tableCell("Dekorasi: "+glyphs, 10)
		}

		pdf.Ln(1 * cm)
	}
	return nil
}

// photoRow draws up to two photos side by side, one per table column.
func (d *document) photoRow(page scrapbook.Page, number int) error {
	candidates := page.Photos
	if len(candidates) > len(columnWidths) {
		candidates = candidates[:len(columnWidths)]
	}

	// Only the first two stored photos are candidates; a skipped one is not replaced.
	var row []image.Image
	for _, p := range candidates {
		img, ok, err := d.loadPhoto(p, number, 200, 150)
		if err != nil {
			return err
		}
		if ok {
			row = append(row, img)
		}
	}
	if len(row) == 0 {
		return nil
	}

	pdf := d.pdf
	rowH := 4*cm + 2*cellPad
	d.ensureSpace(rowH)

	left, _, _, _ := pdf.GetMargins()
	x, y := left, pdf.GetY()
	for j, img := range row {
		pdf.SetXY(x+cellPad, y+cellPad)
		d.image(fmt.Sprintf("a%d_%d", number, j), img, 90, 6*cm, 4*cm, false)
		x += columnWidths[j]
	}
	pdf.SetXY(left, y+rowH)
	return nil
}

// tableCell writes a padded paragraph in the first table column.
func (d *document) tableCell(text string, size float64) {
	pdf := d.pdf
	left, _, _, _ := pdf.GetMargins()

	pdf.SetFont("Helvetica", "", size)
	pdf.SetTextColor(bodyColor.r, bodyColor.g, bodyColor.b)
	pdf.Ln(cellPad)
	pdf.SetX(left + cellPad)
	pdf.MultiCell(columnWidths[0]-2*cellPad, size*1.2, d.tr(text), "", "L", false)
	pdf.Ln(cellPad)
}

func (d *document) paragraph(text, style string, size float64, c rgb, align string, after float64) {
	pdf := d.pdf
	pdf.SetFont("Helvetica", style, size)
	pdf.SetTextColor(c.r, c.g, c.b)
	pdf.MultiCell(0, size*1.2, d.tr(text), "", align, false)
	pdf.Ln(after)
}

// loadPhoto decodes one stored photo and shrinks it to fit maxW x maxH. A photo
// without a source reports ok=false; a broken one is an error unless the
// render was asked to skip it.
func (d *document) loadPhoto(p scrapbook.Photo, number, maxW, maxH int) (image.Image, bool, error) {
	if p.Src == "" {
		return nil, false, nil
	}

	img, err := photo.Load(p.Src)
	if err != nil {
		if d.opts.SkipBrokenPhotos {
			d.log.WithFields(map[string]any{"page": number, "photo": p.ID}).Warn(fmt.Sprintf("error converting photo: %v", err))
			return nil, false, nil
		}
		return nil, false, err
	}

	return imaging.Fit(photo.Flatten(img), maxW, maxH, imaging.Lanczos), true, nil
}

// image embeds img as a JPEG. Centered images are drawn on the current line;
// otherwise at the current x/y.
func (d *document) image(name string, img image.Image, quality int, w, h float64, centered bool) {
	pdf := d.pdf

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		pdf.SetError(err)
		return
	}

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	x := pdf.GetX()
	if centered {
		d.ensureSpace(h)
		left, _, right, _ := pdf.GetMargins()
		pageW, _ := pdf.GetPageSize()
		x = left + (pageW-left-right-w)/2
	}
	pdf.ImageOptions(name, x, pdf.GetY(), w, h, false, opts, 0, "")
}

// ensureSpace starts a new page when h points do not fit above the bottom margin.
func (d *document) ensureSpace(h float64) {
	pdf := d.pdf
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	if pdf.GetY()+h > pageH-bottom {
		pdf.AddPage()
	}
}

func stickerLine(stickers []scrapbook.Sticker) string {
	if len(stickers) == 0 {
		return ""
	}
	glyphs := make([]string, len(stickers))
	for i, s := range stickers {
		glyphs[i] = s.Emoji
	}
	return strings.Join(glyphs, " ")
}

// themeSummary names the scrapbook theme, or "Mixed Themes" when pages differ.
func themeSummary(sb *scrapbook.Scrapbook) string {
	if sb.ThemeName != "" {
		return sb.ThemeName
	}
	seen := ""
	for _, page := range sb.Pages {
		switch {
		case page.Theme == "":
		case seen == "":
			seen = page.Theme
		case seen != page.Theme:
			return "Mixed Themes"
		}
	}
	if seen == "" {
		return "Mixed Themes"
	}
	return cases.Title(language.Und).String(seen)
}
