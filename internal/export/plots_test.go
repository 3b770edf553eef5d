package export

import (
	"os"
	"path/filepath"
	"testing"
)

func mustExist(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("output file %s is empty", path)
	}
}

func TestSaveLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.png")

	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 4, 9}
	if err := SaveLine(xs, ys, "squares", "x", "y", path); err != nil {
		t.Fatalf("save: %v", err)
	}
	mustExist(t, path)
}

func TestSaveLineLengthMismatch(t *testing.T) {
	err := SaveLine([]float64{1}, []float64{1, 2}, "", "", "", "x.png")
	if err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestSaveLinesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.svg")

	series := []Series{
		{Name: "a", Xs: []float64{0, 1}, Ys: []float64{0, 1}},
		{Name: "b", Xs: []float64{0, 1}, Ys: []float64{1, 0}},
	}
	if err := SaveLines(series, "two lines", "x", "y", path); err != nil {
		t.Fatalf("save: %v", err)
	}
	mustExist(t, path)
}

func TestSaveScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.png")

	points := [][2]float64{{0, 0}, {1, 2}, {-1, 0.5}}
	if err := SaveScatter(points, "cloud", "x", "y", path); err != nil {
		t.Fatalf("save: %v", err)
	}
	mustExist(t, path)
}

func TestSaveHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")

	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	if err := SaveHistogram(values, 5, "values", "v", path); err != nil {
		t.Fatalf("save: %v", err)
	}
	mustExist(t, path)
}

func TestSaveHeatmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.png")

	data := [][]float64{
		{0, 1, 2},
		{1, 4, 1},
		{2, 1, 0},
	}
	if err := SaveHeatmap(data, 0, 1, 0, 1, "field", path); err != nil {
		t.Fatalf("save: %v", err)
	}
	mustExist(t, path)
}

func TestSaveHeatmapEmptyGrid(t *testing.T) {
	if err := SaveHeatmap(nil, 0, 1, 0, 1, "", "x.png"); err == nil {
		t.Fatal("expected error for empty grid")
	}
}
