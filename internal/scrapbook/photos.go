package scrapbook

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/scrapkit/internal/layout"
	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

// defaultFrame is used once a page has no free layout slot left.
var defaultFrame = layout.PhotoSlot{X: 50, Y: 80, Width: 300, Height: 200}

// AddPhoto appends a photo to the page. A nil frame takes the next layout
// photo slot that has no photo yet, falling back to a 300x200 frame.
func (p *Page) AddPhoto(src string, frame *layout.PhotoSlot) (Photo, error) {
	if strings.TrimSpace(src) == "" {
		return Photo{}, apperrors.NewValidationError("src", "photo source is required", nil)
	}

	slot := defaultFrame
	switch {
	case frame != nil:
		slot = *frame
	case p.Layout != nil && len(p.Photos) < len(p.Layout.Photos):
		slot = p.Layout.Photos[len(p.Photos)]
	}
	if slot.Width <= 0 || slot.Height <= 0 {
		return Photo{}, apperrors.NewValidationError("frame",
			fmt.Sprintf("photo frame must have a positive size, got %dx%d", slot.Width, slot.Height), nil)
	}

	photo := Photo{
		ID:       "photo_" + uuid.NewString()[:8],
		Src:      src,
		X:        slot.X,
		Y:        slot.Y,
		Width:    slot.Width,
		Height:   slot.Height,
		Rotation: slot.Rotation,
	}
	p.Photos = append(p.Photos, photo)
	return photo, nil
}

// PageByID returns a pointer to the page with the given id.
func (s *Scrapbook) PageByID(id int) (*Page, error) {
	for i := range s.Pages {
		if s.Pages[i].ID == id {
			return &s.Pages[i], nil
		}
	}
	return nil, apperrors.NewValidationError("page", fmt.Sprintf("scrapbook has no page %d", id), nil)
}
