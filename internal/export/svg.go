// Package export renders a braille raster into standalone artifacts.
package export

import (
	"fmt"
	"strings"

	"github.com/superliangbot/simlab/internal/canvas"
)

// CanvasToSVG converts a braille raster to SVG, one circle per lit
// dot. The scale is the edge length of one dot in SVG units.
func CanvasToSVG(c *canvas.Canvas, scale float64, dotColor string) string {
	if c == nil {
		return ""
	}
	if dotColor == "" {
		dotColor = "#00ff00"
	}

	cols, rows := c.Cells()
	width := float64(cols) * scale * 2  // 2 dots per cell across
	height := float64(rows) * scale * 4 // 4 dots per cell down

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, dotColor))

	dotBits := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := c.Cell(col, row)
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
							cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
