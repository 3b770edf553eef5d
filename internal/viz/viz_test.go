package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndString(t *testing.T) {
	c := NewCanvas(4, 2)

	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if n := len([]rune(line)); n != 4 {
			t.Errorf("expected 4 cells per row, got %d", n)
		}
	}

	// Blank canvas is all empty braille cells.
	if strings.ContainsRune(out, '⣿') {
		t.Error("blank canvas should have no lit pixels")
	}

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("Set(0,0) did not light the first cell")
	}

	// Out-of-range coordinates are ignored.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(1, 1)
	c.Clear()

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("clear left lit pixels")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)

	lit := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				lit++
			}
		}
	}
	if lit < 5 {
		t.Errorf("diagonal line should light several cells, got %d", lit)
	}
}

func TestLinePlot(t *testing.T) {
	data := []float64{0, 1, 2, 3, 2, 1, 0}

	out := Line(data, "triangle", 40, 8)
	if out == "" {
		t.Fatal("empty plot")
	}
	if !strings.Contains(out, "triangle") {
		t.Error("caption missing from plot")
	}

	if Line(nil, "empty", 40, 8) != "" {
		t.Error("nil data should render nothing")
	}
}

func TestScatter(t *testing.T) {
	points := []XY{{0, 0}, {1, 1}, {2, 4}, {3, 9}}

	out := Scatter(points, 20, 10)
	if out == "" {
		t.Fatal("empty scatter")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Errorf("expected 10 rows, got %d", len(lines))
	}

	if Scatter(nil, 20, 10) != "" {
		t.Error("no points should render nothing")
	}
}

func TestScatterDegenerateRange(t *testing.T) {
	// All points identical; must not divide by zero.
	out := Scatter([]XY{{1, 1}, {1, 1}}, 10, 5)
	if out == "" {
		t.Fatal("degenerate scatter should still render")
	}
}

func TestHeatmap(t *testing.T) {
	grid := [][]float64{
		{0, 0.5},
		{1, 0},
	}

	out := Heatmap(grid)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}

	// Grid row 0 renders at the bottom, so the peak in row 1 lands on
	// the first output line with the darkest shade.
	if lines[0][0] != '@' {
		t.Errorf("expected '@' for the peak, got %q", lines[0][0])
	}
	if lines[0][1] != ' ' {
		t.Errorf("expected blank for zero, got %q", lines[0][1])
	}

	if Heatmap(nil) != "" {
		t.Error("empty grid should render nothing")
	}
}

func TestHistogramBars(t *testing.T) {
	counts := []int{1, 5, 2}

	out := HistogramBars(counts, 5)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}

	// The tallest bin fills the top row; the others do not.
	top := []rune(lines[0])
	if top[1] != '█' {
		t.Error("tallest bin should reach the top row")
	}
	if top[0] == '█' || top[2] == '█' {
		t.Error("short bins should not reach the top row")
	}

	if HistogramBars(nil, 5) != "" {
		t.Error("no counts should render nothing")
	}
}
