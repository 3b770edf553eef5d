package stats_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jskelin/physlab/internal/stats"
)

var _ = Describe("PiEstimator", func() {
	It("converges toward pi with enough samples", func() {
		est := stats.NewPiEstimator(42)
		value, hits := est.Estimate(1_000_000)

		Expect(value).To(BeNumerically("~", math.Pi, 0.01))
		Expect(hits).To(BeNumerically(">", 0))
	})

	It("is deterministic for a fixed seed", func() {
		a, _ := stats.NewPiEstimator(7).Estimate(10_000)
		b, _ := stats.NewPiEstimator(7).Estimate(10_000)

		Expect(a).To(Equal(b))
	})

	It("records the requested number of convergence checkpoints", func() {
		points := stats.NewPiEstimator(1).Series(10_000, 20)

		Expect(points).To(HaveLen(20))
		Expect(points[len(points)-1].N).To(Equal(10_000))

		for _, p := range points {
			Expect(p.AbsError).To(BeNumerically(">=", 0))
		}
	})

	It("shrinks the error as samples accumulate", func() {
		points := stats.NewPiEstimator(3).Series(1_000_000, 10)

		first := points[0].AbsError
		last := points[len(points)-1].AbsError
		Expect(last).To(BeNumerically("<", first+0.01))
	})
})

var _ = Describe("Integrate", func() {
	It("estimates the integral of x^2 over [0,1]", func() {
		got := stats.Integrate(func(x float64) float64 { return x * x }, 0, 1, 500_000, 11)
		Expect(got).To(BeNumerically("~", 1.0/3.0, 0.005))
	})

	It("handles reversed-sign integrands", func() {
		got := stats.Integrate(math.Sin, 0, math.Pi, 500_000, 11)
		Expect(got).To(BeNumerically("~", 2.0, 0.01))
	})
})

var _ = Describe("Central limit theorem", func() {
	DescribeTable("sampling means match theory",
		func(name string) {
			dist, ok := stats.DistributionByName(name)
			Expect(ok).To(BeTrue())

			means := stats.SamplingMeans(dist, 30, 20_000, 99)

			Expect(stats.Mean(means)).To(BeNumerically("~", dist.Mean(), 0.01*math.Max(1, dist.Mean())))
			Expect(stats.StdDev(means)).To(BeNumerically("~", stats.StandardError(dist, 30), 0.02))
		},
		Entry("uniform source", "uniform"),
		Entry("exponential source", "exponential"),
		Entry("dice source", "dice"),
	)

	It("drives skewness toward zero even for a skewed source", func() {
		dist, _ := stats.DistributionByName("exponential")

		// Raw exponential draws have skewness 2; means of 100 draws
		// should be nearly symmetric.
		means := stats.SamplingMeans(dist, 100, 50_000, 5)
		Expect(math.Abs(stats.Skewness(means))).To(BeNumerically("<", 0.3))
	})

	It("rejects unknown distribution names", func() {
		_, ok := stats.DistributionByName("cauchy")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Moments", func() {
	It("computes mean and standard deviation", func() {
		values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

		Expect(stats.Mean(values)).To(Equal(5.0))
		Expect(stats.StdDev(values)).To(Equal(2.0))
	})

	It("returns zero for degenerate inputs", func() {
		Expect(stats.Mean(nil)).To(BeZero())
		Expect(stats.StdDev([]float64{1})).To(BeZero())
		Expect(stats.Skewness([]float64{3, 3, 3})).To(BeZero())
	})

	It("sees zero skewness in symmetric data", func() {
		Expect(stats.Skewness([]float64{-2, -1, 0, 1, 2})).To(BeNumerically("~", 0, 1e-12))
	})
})

var _ = Describe("Histogram", func() {
	It("bins values and preserves the total count", func() {
		values := []float64{0, 0.1, 0.5, 0.9, 1.0}
		counts, edges := stats.Histogram(values, 4)

		Expect(counts).To(HaveLen(4))
		Expect(edges).To(HaveLen(5))

		total := 0
		for _, c := range counts {
			total += c
		}
		Expect(total).To(Equal(len(values)))
		Expect(edges[0]).To(Equal(0.0))
		Expect(edges[4]).To(Equal(1.0))
	})

	It("handles constant data without dividing by zero", func() {
		counts, _ := stats.Histogram([]float64{5, 5, 5}, 3)
		Expect(counts[0]).To(Equal(3))
	})

	It("returns nil for empty input", func() {
		counts, edges := stats.Histogram(nil, 10)
		Expect(counts).To(BeNil())
		Expect(edges).To(BeNil())
	})
})
