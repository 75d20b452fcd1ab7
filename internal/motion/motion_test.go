package motion_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shmviz/internal/motion"
)

var _ = Describe("At", func() {
	p := motion.Parameters{Amplitude: 1, MaxDisplacement: 2, AngularFrequency: 2 * math.Pi}

	It("starts at equilibrium with peak velocity", func() {
		s := motion.At(p, 0)
		Expect(s.Displacement).To(BeNumerically("~", 0, 1e-12))
		Expect(s.Velocity).To(BeNumerically("~", 4*math.Pi, 1e-9))
		Expect(s.Acceleration).To(BeNumerically("~", 0, 1e-9))
	})

	It("reaches peak displacement at a quarter period", func() {
		s := motion.At(p, 0.25)
		Expect(s.Displacement).To(BeNumerically("~", 2, 1e-9))
		Expect(s.Velocity).To(BeNumerically("~", 0, 1e-9))
		Expect(s.Acceleration).To(BeNumerically("~", -78.9568, 1e-3))
	})

	It("applies the phase offset", func() {
		shifted := p
		shifted.Phase = math.Pi / 2
		Expect(motion.At(shifted, 0).Displacement).To(BeNumerically("~", 2, 1e-12))
	})

	DescribeTable("velocity and acceleration are derivatives",
		func(xm, w, phi, t float64) {
			q := motion.Parameters{MaxDisplacement: xm, AngularFrequency: w, Phase: phi}
			h := 1e-6
			fwd, back := motion.At(q, t+h), motion.At(q, t-h)
			s := motion.At(q, t)

			dx := (fwd.Displacement - back.Displacement) / (2 * h)
			dv := (fwd.Velocity - back.Velocity) / (2 * h)
			Expect(s.Velocity).To(BeNumerically("~", dx, 1e-4*math.Max(1, math.Abs(s.Velocity))))
			Expect(s.Acceleration).To(BeNumerically("~", dv, 1e-4*math.Max(1, math.Abs(s.Acceleration))))
		},
		Entry("default", 2.0, 2*math.Pi, 0.0, 0.3),
		Entry("slow", 0.5, 0.7, 1.1, 4.2),
		Entry("fast", 3.0, 12.0, -0.4, 0.77),
		Entry("tiny amplitude", 1e-3, 1.0, 0.0, 2.0),
	)

	DescribeTable("displacement repeats every period",
		func(xm, w, phi float64) {
			q := motion.Parameters{MaxDisplacement: xm, AngularFrequency: w, Phase: phi}
			for _, t := range []float64{0, 0.1, 1.3, 7.9} {
				Expect(motion.Displacement(q, t+q.Period())).To(BeNumerically("~", motion.Displacement(q, t), 1e-9))
			}
		},
		Entry("default", 2.0, 2*math.Pi, 0.0),
		Entry("odd", 1.7, 3.3, 0.9),
	)

	It("propagates NaN without panicking", func() {
		s := motion.At(motion.Parameters{MaxDisplacement: math.NaN(), AngularFrequency: 1}, 1)
		Expect(math.IsNaN(s.Displacement)).To(BeTrue())
		Expect(math.IsNaN(s.Velocity)).To(BeTrue())
	})
})

var _ = Describe("Parameters", func() {
	It("spans two periods in the plotting window", func() {
		for _, w := range []float64{1, 2 * math.Pi, 4 * math.Pi, 0.3} {
			q := motion.Parameters{MaxDisplacement: 1, AngularFrequency: w}
			Expect(q.Window()).To(BeNumerically("~", 4*math.Pi/w, 1e-12))
			Expect(q.Window()).To(BeNumerically("~", 2*q.Period(), 1e-12))
		}
	})

	It("normalizes every series to unit peak", func() {
		q := motion.Parameters{MaxDisplacement: 5, AngularFrequency: 3}
		peak := q.Normalized(motion.At(q, math.Pi/6))
		Expect(peak.Displacement).To(BeNumerically("~", 1, 1e-12))
		Expect(peak.Acceleration).To(BeNumerically("~", -1, 1e-12))

		zero := q.Normalized(motion.At(q, 0))
		Expect(zero.Velocity).To(BeNumerically("~", 1, 1e-12))
	})

	It("fails soft on a zero frequency", func() {
		q := motion.Parameters{MaxDisplacement: 1, AngularFrequency: 0}
		Expect(math.IsInf(q.Window(), 1)).To(BeTrue())
		Expect(math.IsNaN(q.Normalized(motion.At(q, 1)).Velocity)).To(BeTrue())
	})

	It("locates time inside the window", func() {
		q := motion.DefaultParameters()
		Expect(q.Cycle(0)).To(BeNumerically("~", 0, 1e-12))
		Expect(q.Cycle(0.5)).To(BeNumerically("~", 0.25, 1e-12))
		Expect(q.Cycle(2.5)).To(BeNumerically("~", 0.25, 1e-9))
	})

	Describe("Series", func() {
		It("includes both window endpoints", func() {
			q := motion.DefaultParameters()
			times, samples := motion.Series(q, 200)
			Expect(times).To(HaveLen(201))
			Expect(samples).To(HaveLen(201))
			Expect(times[0]).To(Equal(0.0))
			Expect(times[200]).To(BeNumerically("~", q.Window(), 1e-12))
		})
	})

	Describe("Validate", func() {
		It("accepts the defaults", func() {
			Expect(motion.DefaultParameters().Validate()).To(Succeed())
		})

		It("rejects zero divisors", func() {
			q := motion.DefaultParameters()
			q.MaxDisplacement = 0
			Expect(q.Validate()).To(MatchError(motion.ErrZeroDisplacement))

			q = motion.DefaultParameters()
			q.AngularFrequency = 0
			Expect(q.Validate()).To(MatchError(motion.ErrZeroFrequency))
		})

		It("rejects NaN input", func() {
			q := motion.DefaultParameters()
			q.Amplitude = math.NaN()
			Expect(q.Validate()).To(MatchError(motion.ErrNotFinite))
		})
	})
})
