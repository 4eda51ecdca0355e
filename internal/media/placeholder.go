package media

import (
	"fmt"
	"strconv"
)

const (
	placeholderMin     = 1
	placeholderMax     = 4000
	placeholderDefault = 100
)

// PlaceholderSize parses and clamps requested placeholder dimensions.
func PlaceholderSize(rawWidth, rawHeight string) (int, int) {
	return clampDimension(rawWidth), clampDimension(rawHeight)
}

// PlaceholderSVG renders a neutral SVG of the given size.
func PlaceholderSVG(width, height int) []byte {
	label := fmt.Sprintf("%d×%d", width, height)
	fontSize := min(width, height) / 8
	if fontSize < 8 {
		fontSize = 8
	}
	return fmt.Appendf(nil,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#e5e7eb"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" fill="#9ca3af" font-family="sans-serif" font-size="%d">%s</text>`+
			`</svg>`,
		width, height, width, height, fontSize, label)
}

func clampDimension(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return placeholderDefault
	}
	if value < placeholderMin {
		return placeholderMin
	}
	if value > placeholderMax {
		return placeholderMax
	}
	return value
}
