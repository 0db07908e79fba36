package sim

import (
	"testing"

	"github.com/san-kum/lifesim/internal/config"
)

func TestSessionDropsStaleTicks(t *testing.T) {
	cfg := config.DefaultConfig()
	st, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	s := NewSession(st)
	defer s.Close()
	s.ApplyPattern("glider")
	if err := s.SetSpeed(0.01); err != nil {
		t.Fatal(err)
	}

	s.Start()
	s.mu.Lock()
	stale := s.run
	s.mu.Unlock()

	s.Pause()
	s.tick(stale)
	if gen := s.Snapshot().Generation; gen != 0 {
		t.Errorf("tick from a paused run advanced to generation %d", gen)
	}

	s.Start()
	s.tick(stale)
	if gen := s.Snapshot().Generation; gen != 0 {
		t.Errorf("tick from an older run advanced to generation %d", gen)
	}

	s.mu.Lock()
	current := s.run
	s.mu.Unlock()
	s.tick(current)
	if gen := s.Snapshot().Generation; gen < 1 {
		t.Errorf("current run did not advance, generation %d", gen)
	}
}
