package waves

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrNoSources indicates a field with an empty source list.
var ErrNoSources = errors.New("waves: field needs at least one source")

// Source is a monochromatic point emitter. All sources in a field share
// one wavelength; Phase offsets them relative to each other.
type Source struct {
	X, Y      float64
	Amplitude float64
	Phase     float64
}

// Field samples the superposition of circular waves from point sources
// over a rectangular region.
type Field struct {
	Sources    []Source
	Wavelength float64
	// Region extent in the same units as source positions.
	XMin, XMax float64
	YMin, YMax float64
}

// TwoSlit builds the classic two-source arrangement: emitters separated
// by d, centered on the y axis, radiating in phase.
func TwoSlit(d, wavelength, extent float64) *Field {
	return &Field{
		Sources: []Source{
			{X: 0, Y: -d / 2, Amplitude: 1},
			{X: 0, Y: d / 2, Amplitude: 1},
		},
		Wavelength: wavelength,
		XMin:       0, XMax: extent,
		YMin: -extent / 2, YMax: extent / 2,
	}
}

// amplitude sums the complex phasors of every source at (x, y) with
// 1/sqrt(r) cylindrical decay.
func (f *Field) amplitude(x, y float64) complex128 {
	k := 2 * math.Pi / f.Wavelength
	total := complex(0, 0)
	for _, s := range f.Sources {
		r := math.Hypot(x-s.X, y-s.Y)
		if r < f.Wavelength/100 {
			r = f.Wavelength / 100
		}
		a := s.Amplitude / math.Sqrt(r)
		total += cmplx.Rect(a, k*r+s.Phase)
	}
	return total
}

// Intensity is the time-averaged intensity at a point: half the squared
// phasor magnitude for equal-frequency sources. Never negative.
func (f *Field) Intensity(x, y float64) float64 {
	m := cmplx.Abs(f.amplitude(x, y))
	return 0.5 * m * m
}

// Displacement is the instantaneous wave height at time t, for animated
// snapshots.
func (f *Field) Displacement(x, y, omega, t float64) float64 {
	a := f.amplitude(x, y)
	return real(a * cmplx.Exp(complex(0, -omega*t)))
}

// IntensityGrid samples the time-averaged intensity on an nx by ny grid.
// Row index runs along y, column along x.
func (f *Field) IntensityGrid(nx, ny int) ([][]float64, error) {
	if len(f.Sources) == 0 {
		return nil, ErrNoSources
	}
	if nx < 2 || ny < 2 {
		return nil, errors.New("waves: grid must be at least 2x2")
	}

	dx := (f.XMax - f.XMin) / float64(nx-1)
	dy := (f.YMax - f.YMin) / float64(ny-1)

	grid := make([][]float64, ny)
	for j := 0; j < ny; j++ {
		row := make([]float64, nx)
		y := f.YMin + float64(j)*dy
		for i := 0; i < nx; i++ {
			row[i] = f.Intensity(f.XMin+float64(i)*dx, y)
		}
		grid[j] = row
	}
	return grid, nil
}

// FringeSpacing is the textbook small-angle fringe spacing lambda*L/d
// for two sources separated by d observed on a screen at distance L.
func FringeSpacing(wavelength, screenDist, separation float64) float64 {
	return wavelength * screenDist / separation
}
