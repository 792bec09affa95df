package theme

import "strings"

// Tailwind 50-shade values for the background classes used by the catalog.
var backgroundHex = map[string]string{
	"white":   "#FFFFFF",
	"amber":   "#FFFBEB",
	"orange":  "#FFF7ED",
	"yellow":  "#FEFCE8",
	"red":     "#FEF2F2",
	"gray":    "#F9FAFB",
	"slate":   "#F8FAFC",
	"zinc":    "#FAFAFA",
	"pink":    "#FDF2F8",
	"rose":    "#FFF1F2",
	"purple":  "#FAF5FF",
	"indigo":  "#EEF2FF",
	"green":   "#F0FDF4",
	"emerald": "#ECFDF5",
	"teal":    "#F0FDFA",
	"lime":    "#F7FEE7",
	"blue":    "#EFF6FF",
	"sky":     "#F0F9FF",
	"cyan":    "#ECFEFF",
}

// BackgroundColor resolves a background class such as "bg-amber-50" to its
// #RRGGBB value.
func BackgroundColor(class string) (string, bool) {
	name := strings.TrimPrefix(class, "bg-")
	name = strings.TrimSuffix(name, "-50")
	hex, ok := backgroundHex[name]
	return hex, ok
}
