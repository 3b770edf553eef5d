package stats

import (
	"math"
	"math/rand"
)

// PiEstimator throws darts at the unit square and counts hits inside the
// quarter circle; 4 * hits/n converges to pi like 1/sqrt(n).
type PiEstimator struct {
	rng *rand.Rand
}

func NewPiEstimator(seed int64) *PiEstimator {
	return &PiEstimator{rng: rand.New(rand.NewSource(seed))}
}

// Estimate runs n samples and returns the pi estimate and hit count.
func (e *PiEstimator) Estimate(n int) (float64, int) {
	hits := 0
	for i := 0; i < n; i++ {
		x := e.rng.Float64()
		y := e.rng.Float64()
		if x*x+y*y <= 1 {
			hits++
		}
	}
	return 4 * float64(hits) / float64(n), hits
}

// ConvergencePoint is one checkpoint of a running estimate.
type ConvergencePoint struct {
	N        int
	Estimate float64
	AbsError float64
}

// Series runs n samples and records the running estimate at the given
// number of evenly spaced checkpoints.
func (e *PiEstimator) Series(n, checkpoints int) []ConvergencePoint {
	if checkpoints < 1 {
		checkpoints = 1
	}
	every := n / checkpoints
	if every < 1 {
		every = 1
	}

	points := make([]ConvergencePoint, 0, checkpoints)
	hits := 0
	for i := 1; i <= n; i++ {
		x := e.rng.Float64()
		y := e.rng.Float64()
		if x*x+y*y <= 1 {
			hits++
		}
		if i%every == 0 {
			est := 4 * float64(hits) / float64(i)
			points = append(points, ConvergencePoint{
				N:        i,
				Estimate: est,
				AbsError: math.Abs(est - math.Pi),
			})
		}
	}
	return points
}

// Integrate estimates the integral of f over [a, b] by uniform sampling.
func Integrate(f func(float64) float64, a, b float64, n int, seed int64) float64 {
	rng := rand.New(rand.NewSource(seed))
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += f(a + (b-a)*rng.Float64())
	}
	return (b - a) * sum / float64(n)
}
