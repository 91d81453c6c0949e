package buffer

import "sync"

// Pool provides sync.Pool-based Stereo reuse to reduce GC pressure when
// rendering many buffers in sequence.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Stereo{}
			},
		},
	}
}

// Get returns a Stereo buffer with the requested frame count. The buffer is
// zeroed. Callers must return it via Put when done.
func (p *Pool) Get(frames int) *Stereo {
	s := p.pool.Get().(*Stereo)
	s.Resize(frames)
	s.Zero()
	return s
}

// Put returns a Stereo buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(s *Stereo) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
