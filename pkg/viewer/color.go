package viewer

import (
	"image/color"
	"strconv"
	"strings"
)

// parseColor reads "rgba(r, g, b, a)", "rgb(r, g, b)" and "#rrggbb" colors.
// Unknown input yields fallback.
func parseColor(s string, fallback color.Color) color.Color {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return fallback
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}

	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return fallback
	}
	fn := s[:open]
	parts := strings.Split(s[open+1:end], ",")
	if (fn != "rgba" || len(parts) != 4) && (fn != "rgb" || len(parts) != 3) {
		return fallback
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return fallback
		}
		rgb[i] = uint8(clampFloat(v, 0, 255))
	}
	alpha := 1.0
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return fallback
		}
		alpha = clampFloat(v, 0, 1)
	}

	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(alpha*255 + 0.5)}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
