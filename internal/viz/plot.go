package viz

import (
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Line renders a time series as an asciigraph plot.
func Line(data []float64, caption string, width, height int) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// XY is a point for scatter rendering.
type XY struct {
	X, Y float64
}

// Scatter renders points on a braille canvas with 10% padding.
func Scatter(points []XY, width, height int) string {
	if len(points) == 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	canvas := NewCanvas(width, height)
	pw := width * 2
	ph := height * 4
	for _, p := range points {
		px := int(float64(pw-1) * (p.X - minX) / rangeX)
		py := ph - 1 - int(float64(ph-1)*(p.Y-minY)/rangeY)
		canvas.Set(px, py)
	}
	return canvas.String()
}

var shades = []rune(" .:-=+*#%@")

// Heatmap renders a grid of non-negative values as shaded ascii, row 0
// at the bottom.
func Heatmap(grid [][]float64) string {
	if len(grid) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, row := range grid {
		for _, v := range row {
			maxVal = math.Max(maxVal, v)
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var sb strings.Builder
	for j := len(grid) - 1; j >= 0; j-- {
		for _, v := range grid[j] {
			idx := int(v / maxVal * float64(len(shades)-1))
			if idx >= len(shades) {
				idx = len(shades) - 1
			}
			sb.WriteRune(shades[idx])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// HistogramBars renders bin counts as a vertical bar chart.
func HistogramBars(counts []int, height int) string {
	if len(counts) == 0 {
		return ""
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	var sb strings.Builder
	for level := height; level >= 1; level-- {
		threshold := float64(level) / float64(height) * float64(maxCount)
		for _, c := range counts {
			if float64(c) >= threshold {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
