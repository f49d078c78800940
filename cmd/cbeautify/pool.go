package main

import (
	"runtime"
	"sync"
)

// BeautifierPool hands out page beautifiers to batch workers, bounding
// parallelism. Beautifiers are created lazily on first acquire.
type BeautifierPool struct {
	size    int
	newFn   func() (PageBeautifier, error)
	sem     chan PageBeautifier
	mu      sync.Mutex
	created int
	closed  bool
	lastErr error
}

// NewBeautifierPool creates a pool with capacity for n beautifiers built by newFn.
func NewBeautifierPool(n int, newFn func() (PageBeautifier, error)) *BeautifierPool {
	if n < 1 {
		n = 1
	}

	return &BeautifierPool{
		size:  n,
		newFn: newFn,
		sem:   make(chan PageBeautifier, n),
	}
}

// Compile-time check that BeautifierPool implements Pool.
var _ Pool = (*BeautifierPool)(nil)

// Acquire gets a beautifier from the pool, creating one if needed.
// Blocks if all beautifiers are in use. Returns nil if creation failed or
// the pool is closed.
func (p *BeautifierPool) Acquire() PageBeautifier {
	select {
	case b := <-p.sem:
		return b
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		b, err := p.newFn()
		if err != nil {
			p.mu.Lock()
			p.created--
			p.lastErr = err
			p.mu.Unlock()
			return nil
		}
		return b
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a beautifier to the pool.
func (p *BeautifierPool) Release(b PageBeautifier) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed && b != nil {
		p.sem <- b
	}
}

// Close stops handing out beautifiers. Blocked Acquire calls return nil.
func (p *BeautifierPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.sem)
}

// Err returns the last creation error, if any.
func (p *BeautifierPool) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Size returns the pool capacity.
func (p *BeautifierPool) Size() int {
	return p.size
}

// resolvePoolSize determines the pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
