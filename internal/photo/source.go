// Package photo decodes scrapbook images and applies effects, frames and
// collage layouts to them.
//
// Images are referenced either by filesystem path or by a
// data:image/<fmt>;base64,<payload> URI; results are usually handed back as
// data URIs as well.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

// Format selects the encoding of a produced image.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"

	jpegQuality = 90
)

// Load decodes an image from a path or a base64 data URI. EXIF orientation is applied.
func Load(ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "data:") {
		data, err := decodeDataURI(ref)
		if err != nil {
			return nil, apperrors.NewDecodeError(ref, err)
		}
		return decode(ref, data)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, apperrors.NewIOError("read", ref, err)
	}
	return decode(ref, data)
}

// EncodeDataURI encodes img and wraps it in a data URI.
func EncodeDataURI(img image.Image, format Format) (string, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case PNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case JPEG, "":
		format = JPEG
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	default:
		return "", apperrors.NewValidationError("format", fmt.Sprintf("unsupported output format %q", format), nil)
	}
	if err != nil {
		return "", apperrors.NewDecodeError("encode "+string(format), err)
	}

	return fmt.Sprintf("data:image/%s;base64,%s", format, base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return apperrors.NewIOError("write", path, err)
	}
	return nil
}

// Flatten composites img over white, dropping transparency.
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

func decode(source string, data []byte) (image.Image, error) {
	kind := mimetype.Detect(data)
	if !strings.HasPrefix(kind.String(), "image/") {
		return nil, apperrors.NewDecodeError(source, fmt.Errorf("content is %s, not an image", kind.String()))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, apperrors.NewDecodeError(source, err)
	}
	return img, nil
}

func decodeDataURI(uri string) ([]byte, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, errors.New("data URI has no payload")
	}
	if !strings.HasPrefix(header, "data:image/") {
		return nil, fmt.Errorf("data URI media type %q is not an image", strings.TrimPrefix(header, "data:"))
	}
	if !strings.HasSuffix(header, ";base64") {
		return nil, errors.New("data URI is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
