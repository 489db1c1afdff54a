package vibration_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Luizfelm/CoulombDampedVibration/internal/dynamo"
	"github.com/Luizfelm/CoulombDampedVibration/internal/vibration"
)

var _ = Describe("Simulate", func() {
	var params vibration.Parameters

	BeforeEach(func() {
		params = vibration.Parameters{
			Mass: 1, Stiffness: 10, CoulombForce: 0.5,
			X0: 1, V0: 0, TotalTime: 10, TimeStep: 0.01,
		}
	})

	It("is deterministic", func() {
		a, err := vibration.Simulate(params)
		Expect(err).NotTo(HaveOccurred())
		b, err := vibration.Simulate(params)
		Expect(err).NotTo(HaveOccurred())

		Expect(b.T).To(Equal(a.T))
		Expect(b.X).To(Equal(a.X))
		Expect(b.V).To(Equal(a.V))
	})

	DescribeTable("returns floor(T/dt)+1 aligned samples",
		func(total, dt float64, samples int) {
			params.TotalTime, params.TimeStep = total, dt
			tr, err := vibration.Simulate(params)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.T).To(HaveLen(samples))
			Expect(tr.X).To(HaveLen(samples))
			Expect(tr.V).To(HaveLen(samples))
		},
		Entry("default scenario", 10.0, 0.01, 1001),
		Entry("coarse grid", 2.0, 0.25, 9),
		Entry("fractional remainder", 1.0, 0.4, 3),
		Entry("dt beyond horizon", 1.0, 2.0, 1),
	)

	It("starts exactly at the initial condition", func() {
		params.X0, params.V0 = -0.75, 1.25
		tr, err := vibration.Simulate(params)
		Expect(err).NotTo(HaveOccurred())

		Expect(tr.T[0]).To(Equal(0.0))
		Expect(tr.X[0]).To(Equal(-0.75))
		Expect(tr.V[0]).To(Equal(1.25))
	})

	It("samples on the uniform grid t[i] = i*dt", func() {
		tr, err := vibration.Simulate(params)
		Expect(err).NotTo(HaveOccurred())

		for i, t := range tr.T {
			Expect(t).To(BeNumerically("~", float64(i)*params.TimeStep, 1e-9))
		}
	})

	Context("with dry friction", func() {
		It("never gains mechanical energy", func() {
			tr, err := vibration.Simulate(params)
			Expect(err).NotTo(HaveOccurred())

			energy := tr.Energy(params)
			for i := 1; i < len(energy); i++ {
				Expect(energy[i]).To(BeNumerically("<=", energy[i-1]+1e-6),
					"energy rose at step %d", i)
			}
			Expect(energy[len(energy)-1]).To(BeNumerically("<", 0.01*energy[0]))
		})

		It("loses amplitude on every cycle", func() {
			tr, err := vibration.Simulate(params)
			Expect(err).NotTo(HaveOccurred())

			Expect(tr.X[0]).To(Equal(1.0))
			Expect(tr.V[0]).To(Equal(0.0))

			band := params.CoulombForce / params.Stiffness
			var peaks []float64
			for i := 1; i < len(tr.X)-1; i++ {
				if tr.X[i] > tr.X[i-1] && tr.X[i] >= tr.X[i+1] && tr.X[i] > band {
					peaks = append(peaks, tr.X[i])
				}
			}

			Expect(len(peaks)).To(BeNumerically(">=", 3))
			Expect(peaks[0]).To(BeNumerically("<", tr.X[0]))
			for i := 1; i < len(peaks); i++ {
				Expect(peaks[i]).To(BeNumerically("<", peaks[i-1]))
				// Coulomb damping removes 4*Fc/k of amplitude per cycle.
				Expect(peaks[i-1] - peaks[i]).To(BeNumerically("~", 4*band, 5e-3))
			}
		})
	})

	Context("without friction", func() {
		It("conserves energy to within 1%", func() {
			params.CoulombForce = 0
			tr, err := vibration.Simulate(params)
			Expect(err).NotTo(HaveOccurred())

			energy := tr.Energy(params)
			for _, e := range energy {
				Expect(math.Abs(e-energy[0]) / energy[0]).To(BeNumerically("<", 0.01))
			}
		})

		It("moves in a straight line without a spring", func() {
			params = vibration.Parameters{Mass: 2, X0: 1.5, V0: -0.7, TotalTime: 3, TimeStep: 0.1}
			tr, err := vibration.Simulate(params)
			Expect(err).NotTo(HaveOccurred())

			for i := range tr.T {
				Expect(tr.V[i]).To(Equal(params.V0))
				Expect(tr.X[i]).To(BeNumerically("~", params.X0+params.V0*tr.T[i], 1e-9))
			}
		})
	})

	Context("with invalid parameters", func() {
		It("rejects a zero mass without producing a trajectory", func() {
			params.Mass = 0
			tr, err := vibration.Simulate(params)

			Expect(tr).To(BeNil())
			Expect(errors.Is(err, dynamo.ErrInvalidParameter)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("mass must be non-zero"))
		})

		It("rejects non-finite inputs", func() {
			params.CoulombForce = math.NaN()
			_, err := vibration.Simulate(params)
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
		})
	})
})
