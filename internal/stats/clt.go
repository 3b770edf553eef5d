package stats

import (
	"math"
	"math/rand"
)

// Distribution is a samplable source population with known moments, so
// the sampling-mean experiment can compare against theory.
type Distribution interface {
	Name() string
	Sample(rng *rand.Rand) float64
	Mean() float64
	StdDev() float64
}

// Uniform01 is the flat distribution on [0, 1).
type Uniform01 struct{}

func (Uniform01) Name() string                  { return "uniform" }
func (Uniform01) Sample(rng *rand.Rand) float64 { return rng.Float64() }
func (Uniform01) Mean() float64                 { return 0.5 }
func (Uniform01) StdDev() float64               { return 1 / math.Sqrt(12) }

// Exponential has rate lambda; strongly skewed, which makes the CLT
// convergence visible.
type Exponential struct {
	Lambda float64
}

func (e Exponential) Name() string                  { return "exponential" }
func (e Exponential) Sample(rng *rand.Rand) float64 { return rng.ExpFloat64() / e.Lambda }
func (e Exponential) Mean() float64                 { return 1 / e.Lambda }
func (e Exponential) StdDev() float64               { return 1 / e.Lambda }

// Dice is a fair six-sided die, the discrete classic.
type Dice struct{}

func (Dice) Name() string                  { return "dice" }
func (Dice) Sample(rng *rand.Rand) float64 { return float64(rng.Intn(6) + 1) }
func (Dice) Mean() float64                 { return 3.5 }
func (Dice) StdDev() float64               { return math.Sqrt(35.0 / 12.0) }

// DistributionByName resolves the CLI's --dist flag.
func DistributionByName(name string) (Distribution, bool) {
	switch name {
	case "uniform":
		return Uniform01{}, true
	case "exponential":
		return Exponential{Lambda: 1}, true
	case "dice":
		return Dice{}, true
	}
	return nil, false
}

// SamplingMeans draws numSamples means of sampleSize draws each.
func SamplingMeans(dist Distribution, sampleSize, numSamples int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	means := make([]float64, numSamples)
	for i := range means {
		sum := 0.0
		for j := 0; j < sampleSize; j++ {
			sum += dist.Sample(rng)
		}
		means[i] = sum / float64(sampleSize)
	}
	return means
}

// StandardError is the CLT prediction sigma/sqrt(n) for the spread of
// sampling means.
func StandardError(dist Distribution, sampleSize int) float64 {
	return dist.StdDev() / math.Sqrt(float64(sampleSize))
}

// Mean is the arithmetic mean.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev is the population standard deviation.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// Skewness is the standardized third moment; zero for a symmetric
// distribution.
func Skewness(values []float64) float64 {
	m, sd := Mean(values), StdDev(values)
	if sd == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		z := (v - m) / sd
		sum += z * z * z
	}
	return sum / float64(len(values))
}

// ExcessKurtosis is the standardized fourth moment minus 3; zero for a
// normal distribution.
func ExcessKurtosis(values []float64) float64 {
	m, sd := Mean(values), StdDev(values)
	if sd == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		z := (v - m) / sd
		sum += z * z * z * z
	}
	return sum/float64(len(values)) - 3
}

// Histogram bins values into equal-width bins over their range and
// returns counts plus bin edges (len(edges) == bins+1).
func Histogram(values []float64, bins int) (counts []int, edges []float64) {
	if len(values) == 0 || bins < 1 {
		return nil, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	counts = make([]int, bins)
	edges = make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts, edges
}
