package sim

import "sync"

type resetter interface {
	Reset()
}

// Pool recycles boards of one size between ensemble runs.
type Pool[G resetter] struct {
	pool sync.Pool
}

func NewPool[G resetter](newFn func() G) *Pool[G] {
	return &Pool[G]{
		pool: sync.Pool{
			New: func() any { return newFn() },
		},
	}
}

func (p *Pool[G]) Get() G {
	return p.pool.Get().(G)
}

// Put clears g and makes it available again.
func (p *Pool[G]) Put(g G) {
	g.Reset()
	p.pool.Put(g)
}
