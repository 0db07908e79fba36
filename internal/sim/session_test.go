package sim_test

import (
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/sim"
)

func settings(mode, level string) config.Settings {
	cfg := config.DefaultConfig()
	cfg.Mode = mode
	cfg.Level = level
	cfg.Seed = 42
	st, err := cfg.Resolve()
	Expect(err).NotTo(HaveOccurred())
	return st
}

var _ = Describe("Session", func() {
	var s *sim.Session

	BeforeEach(func() {
		s = sim.NewSession(settings(config.Mode2D, "beginner"))
	})

	AfterEach(func() {
		s.Close()
	})

	It("starts paused on an empty board sized by the level", func() {
		snap := s.Snapshot()
		Expect(snap.Running).To(BeFalse())
		Expect(snap.Generation).To(Equal(0))
		Expect(snap.Live).To(Equal(0))
		Expect(snap.Rows).To(Equal(20))
		Expect(snap.Cols).To(Equal(20))
		Expect(snap.Cells).To(HaveLen(400))
		Expect(snap.Rule).To(Equal("B3/S23"))
	})

	It("applies a configured pattern on creation", func() {
		st := settings(config.Mode2D, "beginner")
		st.Pattern = "glider"
		withGlider := sim.NewSession(st)
		defer withGlider.Close()
		Expect(withGlider.Snapshot().Live).To(Equal(5))
	})

	It("steps only while paused", func() {
		Expect(s.ApplyPattern("glider")).To(BeTrue())
		Expect(s.Step()).To(Succeed())
		Expect(s.Snapshot().Generation).To(Equal(1))

		s.Start()
		Expect(s.Step()).To(MatchError(sim.ErrRunning))

		s.Pause()
		gen := s.Snapshot().Generation
		Expect(s.Step()).To(Succeed())
		Expect(s.Snapshot().Generation).To(Equal(gen + 1))
	})

	It("advances on its timer and stops when paused", func() {
		Expect(s.SetSpeed(100)).To(Succeed())
		s.ApplyPattern("pulsar")
		s.Start()

		Eventually(func() int { return s.Snapshot().Generation }, time.Second, 5*time.Millisecond).
			Should(BeNumerically(">=", 2))

		s.Pause()
		gen := s.Snapshot().Generation
		Consistently(func() int { return s.Snapshot().Generation }, 150*time.Millisecond, 10*time.Millisecond).
			Should(Equal(gen))
	})

	It("toggles between running and paused", func() {
		Expect(s.Toggle()).To(BeTrue())
		Expect(s.Running()).To(BeTrue())
		Expect(s.Toggle()).To(BeFalse())
		Expect(s.Running()).To(BeFalse())
	})

	It("clamps the interval to the minimum", func() {
		Expect(s.SetSpeed(1000)).To(Succeed())
		Expect(s.Interval()).To(Equal(sim.MinInterval))
		Expect(s.SetSpeed(4)).To(Succeed())
		Expect(s.Interval()).To(Equal(250 * time.Millisecond))
	})

	It("rejects non-positive speeds", func() {
		Expect(s.SetSpeed(0)).To(MatchError(config.ErrInvalidSpeed))
		Expect(s.SetSpeed(-3)).To(MatchError(config.ErrInvalidSpeed))
		Expect(s.Snapshot().StepsPerSecond).To(Equal(4.0))
	})

	It("keeps running across a speed change", func() {
		s.Start()
		Expect(s.SetSpeed(20)).To(Succeed())
		Expect(s.Running()).To(BeTrue())
		Expect(s.Interval()).To(Equal(50 * time.Millisecond))
	})

	It("pauses and resets on a level change", func() {
		s.ApplyPattern("glider")
		s.Start()

		Expect(s.SetLevel("advanced")).To(Succeed())
		snap := s.Snapshot()
		Expect(snap.Running).To(BeFalse())
		Expect(snap.Generation).To(Equal(0))
		Expect(snap.Live).To(Equal(0))
		Expect(snap.Rows).To(Equal(60))
		Expect(snap.Wrap).To(BeTrue())
		Expect(snap.StepsPerSecond).To(Equal(14.0))
	})

	It("rejects unknown levels and modes", func() {
		Expect(s.SetLevel("expert")).To(MatchError(config.ErrUnknownLevel))
		Expect(s.SetMode("4d")).To(MatchError(config.ErrUnknownMode))
		Expect(s.Snapshot().Level).To(Equal("beginner"))
	})

	It("switches to 3D with the level size and default rule", func() {
		s.SetRule("highlife")
		Expect(s.SetMode(config.Mode3D)).To(Succeed())

		snap := s.Snapshot()
		Expect(snap.Mode).To(Equal(config.Mode3D))
		Expect(snap.Size).To(Equal(10))
		Expect(snap.Cells).To(HaveLen(1000))
		Expect(snap.Rule).To(Equal("B5/S4,5"))

		Expect(s.ApplyPattern("cluster")).To(BeTrue())
		Expect(s.Snapshot().Live).To(Equal(27))
	})

	It("leaves the board untouched for an unknown pattern", func() {
		s.ApplyPattern("lwss")
		Expect(s.ApplyPattern("nope")).To(BeFalse())
		Expect(s.Snapshot().Live).To(Equal(9))
	})

	It("keeps running across randomize", func() {
		Expect(s.SetSpeed(100)).To(Succeed())
		s.Start()
		Eventually(func() int { return s.Snapshot().Generation }, time.Second, 5*time.Millisecond).
			Should(BeNumerically(">=", 2))

		s.Pause()
		s.Randomize()
		Expect(s.Running()).To(BeFalse())
		Expect(s.Snapshot().Generation).To(Equal(0))

		s.Start()
		s.Randomize()
		Expect(s.Running()).To(BeTrue())
		Expect(s.Snapshot().Live).To(BeNumerically(">", 0))
		Eventually(func() int { return s.Snapshot().Generation }, time.Second, 5*time.Millisecond).
			Should(BeNumerically(">=", 1))
	})

	It("pauses on clear", func() {
		s.Start()
		s.Clear()
		Expect(s.Running()).To(BeFalse())
		Expect(s.Snapshot().Live).To(Equal(0))
	})

	It("paints and toggles 2D cells", func() {
		s.Paint(3, 4, true)
		s.Paint(3, 4, true)
		s.ToggleCell(0, 0)
		s.Paint(99, 99, true)
		Expect(s.Snapshot().Live).To(Equal(2))

		s.ToggleCell(0, 0)
		Expect(s.Snapshot().Live).To(Equal(1))
	})

	It("ignores painting in 3D", func() {
		Expect(s.SetMode(config.Mode3D)).To(Succeed())
		s.Paint(1, 1, true)
		s.ToggleCell(2, 2)
		Expect(s.Snapshot().Live).To(Equal(0))
	})

	It("notifies observers after every generation", func() {
		var last atomic.Int64
		var calls atomic.Int64
		s.AddObserver(sim.ObserverFunc(func(gen, live int) {
			last.Store(int64(gen))
			calls.Add(1)
		}))

		s.ApplyPattern("glider")
		for i := 0; i < 3; i++ {
			Expect(s.Step()).To(Succeed())
		}
		Expect(calls.Load()).To(Equal(int64(3)))
		Expect(last.Load()).To(Equal(int64(3)))
	})

	It("returns snapshots that do not alias the board", func() {
		s.ApplyPattern("glider")
		snap := s.Snapshot()
		for i := range snap.Cells {
			snap.Cells[i] = 1
		}
		Expect(s.Snapshot().Live).To(Equal(5))
	})
})
