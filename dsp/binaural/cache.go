package binaural

import "sync"

// Cache memoizes renders keyed by the full parameter value. Synthesis is a
// pure function of (Params, seed), so a cached buffer is safe to reuse for
// any number of playbacks or loops. Volume must be applied after lookup
// (see the gain package) so that it never becomes part of the key.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	synth   *Synthesizer
	entries map[Params]*Waveform
}

// NewCache creates a cache around the given synthesizer. A nil synthesizer
// gets default settings.
func NewCache(synth *Synthesizer) *Cache {
	if synth == nil {
		synth = NewSynthesizer()
	}
	return &Cache{
		synth:   synth,
		entries: make(map[Params]*Waveform),
	}
}

// Get returns the waveform for p, rendering it on first use. Invalid
// parameters are rejected without being cached.
func (c *Cache) Get(p Params) (*Waveform, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if w, ok := c.entries[p]; ok {
		return w, nil
	}

	w, err := c.synth.Synthesize(p)
	if err != nil {
		return nil, err
	}
	c.entries[p] = w
	return w, nil
}

// Len returns the number of cached renders.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops all cached renders.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Params]*Waveform)
}
