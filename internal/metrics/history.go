package metrics

import (
	"sync"

	"github.com/san-kum/lifesim/internal/sim"
)

var _ sim.Observer = (*History)(nil)

// History keeps the population of the most recent generations in a ring.
// It is safe for concurrent use, so a session timer can feed it while a
// view reads it.
type History struct {
	mu    sync.Mutex
	buf   []float64
	next  int
	count int
}

func NewHistory(capacity int) *History {
	return &History{buf: make([]float64, max(1, capacity))}
}

func (h *History) OnStep(generation, live int) {
	h.Add(live)
}

func (h *History) Add(live int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf[h.next] = float64(live)
	h.next = (h.next + 1) % len(h.buf)
	h.count = min(h.count+1, len(h.buf))
}

// Values returns the stored populations, oldest first.
func (h *History) Values() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]float64, 0, h.count)
	start := (h.next - h.count + len(h.buf)) % len(h.buf)
	for i := 0; i < h.count; i++ {
		out = append(out, h.buf[(start+i)%len(h.buf)])
	}
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next = 0
	h.count = 0
}
