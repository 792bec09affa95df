// Package theme holds the fixed catalog of scrapbook themes.
package theme

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

// Fallback is used for any theme name the catalog does not know.
const Fallback = "vintage"

// Theme bundles the palette, fonts and decorations pages are drawn from.
type Theme struct {
	Name        string
	DisplayName string
	Backgrounds []string
	TextColors  []string
	Fonts       []string
	Decorations []string
	StickerSets [][]string
	Captions    []string
}

var order = []string{"vintage", "modern", "cute", "nature", "travel", "birthday"}

var catalog = map[string]Theme{
	"vintage": {
		Name:        "vintage",
		DisplayName: "Vintage Classic",
		Backgrounds: []string{"bg-amber-50", "bg-orange-50", "bg-yellow-50", "bg-red-50"},
		TextColors:  []string{"#8B4513", "#A0522D", "#CD853F", "#D2691E"},
		Fonts:       []string{"serif", "cursive"},
		Decorations: []string{"🌸", "🍂", "📜", "🕯️", "🗝️", "📸", "🎭", "🌹"},
		StickerSets: [][]string{
			{"🌸", "🍂", "📜"},
			{"🕯️", "🗝️", "📸"},
			{"🎭", "🌹", "💌"},
		},
		Captions: []string{"Kenangan Indah", "Masa Lalu yang Berharga", "Cerita Klasik", "Nostalgia"},
	},
	"modern": {
		Name:        "modern",
		DisplayName: "Modern Minimalist",
		Backgrounds: []string{"bg-white", "bg-gray-50", "bg-slate-50", "bg-zinc-50"},
		TextColors:  []string{"#374151", "#4B5563", "#6B7280", "#1F2937"},
		Fonts:       []string{"sans-serif", "monospace"},
		Decorations: []string{"⭐", "💫", "🔸", "🔹", "◆", "▲", "●", "■"},
		StickerSets: [][]string{
			{"⭐", "💫", "🔸"},
			{"🔹", "◆", "▲"},
			{"●", "■", "◇"},
		},
		Captions: []string{"Clean & Simple", "Modern Life", "Minimalist", "Contemporary"},
	},
	"cute": {
		Name:        "cute",
		DisplayName: "Cute & Sweet",
		Backgrounds: []string{"bg-pink-50", "bg-rose-50", "bg-purple-50", "bg-indigo-50"},
		TextColors:  []string{"#EC4899", "#F472B6", "#A855F7", "#8B5CF6"},
		Fonts:       []string{"cursive", "fantasy"},
		Decorations: []string{"🌸", "🦋", "💕", "🌈", "🎀", "🧸", "🍭", "⭐"},
		StickerSets: [][]string{
			{"🌸", "🦋", "💕"},
			{"🌈", "🎀", "🧸"},
			{"🍭", "⭐", "💖"},
		},
		Captions: []string{"Sweet Memories", "Kawaii Moments", "Cute Adventures", "Lovely Times"},
	},
	"nature": {
		Name:        "nature",
		DisplayName: "Nature Fresh",
		Backgrounds: []string{"bg-green-50", "bg-emerald-50", "bg-teal-50", "bg-lime-50"},
		TextColors:  []string{"#059669", "#10B981", "#14B8A6", "#65A30D"},
		Fonts:       []string{"serif", "cursive"},
		Decorations: []string{"🌿", "🌱", "🍃", "🌳", "🌻", "🦋", "🌺", "🍀"},
		StickerSets: [][]string{
			{"🌿", "🌱", "🍃"},
			{"🌳", "🌻", "🦋"},
			{"🌺", "🍀", "🌸"},
		},
		Captions: []string{"Natural Beauty", "Green Adventures", "Nature Walks", "Outdoor Memories"},
	},
	"travel": {
		Name:        "travel",
		DisplayName: "Travel Adventure",
		Backgrounds: []string{"bg-blue-50", "bg-sky-50", "bg-cyan-50", "bg-indigo-50"},
		TextColors:  []string{"#2563EB", "#0EA5E9", "#06B6D4", "#4F46E5"},
		Fonts:       []string{"sans-serif", "serif"},
		Decorations: []string{"✈️", "🗺️", "🧳", "📍", "🏔️", "🏖️", "🚗", "📷"},
		StickerSets: [][]string{
			{"✈️", "🗺️", "🧳"},
			{"📍", "🏔️", "🏖️"},
			{"🚗", "📷", "🌍"},
		},
		Captions: []string{"Adventure Awaits", "Travel Memories", "Journey Stories", "Wanderlust"},
	},
	"birthday": {
		Name:        "birthday",
		DisplayName: "Birthday Party",
		Backgrounds: []string{"bg-yellow-50", "bg-orange-50", "bg-red-50", "bg-pink-50"},
		TextColors:  []string{"#F59E0B", "#EF4444", "#EC4899", "#8B5CF6"},
		Fonts:       []string{"cursive", "fantasy"},
		Decorations: []string{"🎉", "🎂", "🎈", "🎁", "🎊", "🥳", "🎵", "🌟"},
		StickerSets: [][]string{
			{"🎉", "🎂", "🎈"},
			{"🎁", "🎊", "🥳"},
			{"🎵", "🌟", "💫"},
		},
		Captions: []string{"Happy Birthday!", "Celebration Time", "Party Memories", "Special Day"},
	},
}

// Lookup returns the named theme. Unknown names resolve to the vintage theme
// and the boolean is false.
func Lookup(name string) (Theme, bool) {
	t, ok := catalog[name]
	if !ok {
		return catalog[Fallback], false
	}
	return t, true
}

// Resolve is the strict form of Lookup.
func Resolve(name string) (Theme, error) {
	t, ok := catalog[name]
	if !ok {
		return Theme{}, apperrors.NewValidationError("theme",
			fmt.Sprintf("unknown theme %q (known: %s)", name, strings.Join(order, ", ")), nil)
	}
	return t, nil
}

// Known reports whether name is one of the built-in themes.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Names lists the built-in themes in catalog order.
func Names() []string {
	return append([]string(nil), order...)
}

// All returns every theme in catalog order.
func All() []Theme {
	themes := make([]Theme, 0, len(order))
	for _, name := range order {
		themes = append(themes, catalog[name])
	}
	return themes
}
