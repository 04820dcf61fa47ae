package program

import (
	"strings"

	"programviewer/internal/domain"
)

// palette maps upper-case hex tokens to their presentation category.
var palette = map[string]string{
	"#FFFFFF": "color-white",
	"#FF0000": "color-red",
	"#00FF00": "color-green",
	"#0000FF": "color-blue",
	"#00FFFF": "color-cyan",
	"#FF00FF": "color-magenta",
}

// ColorClass maps a hex color token to its category. Matching is exact and
// case-insensitive; unknown or empty tokens map to domain.DefaultColorClass.
func ColorClass(hex string) string {
	if class, ok := palette[strings.ToUpper(strings.TrimSpace(hex))]; ok {
		return class
	}
	return domain.DefaultColorClass
}
