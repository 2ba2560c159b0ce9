package export

import (
	"fmt"
	"html"
	"strings"
)

const (
	background  = "#0a0a0a"
	steamColor  = "#f0f0f0"
	sourceColor = "#8a8a8a"
	cupColor    = "#c08040"
)

// FrameToSVG draws a text frame as SVG, one cell per character. Lines at or
// below steamHeight are drawn in the cup color.
func FrameToSVG(frame string, scale float64, steamHeight int) string {
	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	cols := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return ""
	}

	cellW := scale * 0.6
	cellH := scale
	width := float64(cols) * cellW
	height := float64(len(lines)) * cellH

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.1f" text-anchor="middle">
`, width, height, width, height, background, scale))

	for row, line := range lines {
		col := 0
		for _, r := range line {
			if r != ' ' {
				x := float64(col)*cellW + cellW/2
				y := float64(row)*cellH + cellH*0.8
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x, y, glyphColor(r, row, steamHeight), html.EscapeString(string(r))))
			}
			col++
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func glyphColor(r rune, row, steamHeight int) string {
	switch {
	case row >= steamHeight:
		return cupColor
	case r == '|':
		return sourceColor
	default:
		return steamColor
	}
}

// SeriesToSVG draws values against their index as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
