package particle

// Pool manages a fixed-capacity set of pre-allocated particles.
//
// Layout invariant: slots [0, active) are the active list, slots
// [active, cap) are the free pool. A particle is always in exactly one of
// the two ranges, which makes the free-XOR-active invariant structural
// rather than bookkept. Release uses swap-and-pop, so iteration during
// release must run in reverse index order
type Pool struct {
	slots  []*Particle
	active int
}

// NewPool pre-allocates size particles. Size below 1 is clamped to 1
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{slots: make([]*Particle, size)}
	for i := range p.slots {
		p.slots[i] = &Particle{poolIndex: i}
	}
	return p
}

// Acquire borrows a particle from the free pool and marks it active.
// Returns nil when the pool is exhausted; never allocates
func (p *Pool) Acquire() *Particle {
	if p.active >= len(p.slots) {
		return nil
	}
	pt := p.slots[p.active]
	pt.poolIndex = p.active
	p.active++
	return pt
}

// Release returns an active particle to the free pool via swap-and-pop
func (p *Pool) Release(pt *Particle) {
	idx := pt.poolIndex
	if idx < 0 || idx >= p.active || p.slots[idx] != pt {
		return
	}
	pt.clear()

	last := p.active - 1
	if idx != last {
		p.slots[idx], p.slots[last] = p.slots[last], p.slots[idx]
		p.slots[idx].poolIndex = idx
		p.slots[last].poolIndex = last
	}
	p.active--
}

// ForEachReverse iterates active particles in reverse pool order.
// Safe against Release of the current particle during iteration
func (p *Pool) ForEachReverse(fn func(pt *Particle)) {
	for i := p.active - 1; i >= 0; i-- {
		fn(p.slots[i])
	}
}

// ForEachSlot visits every slot, active and free. Used by cleanup to
// release all bound handles
func (p *Pool) ForEachSlot(fn func(pt *Particle)) {
	for _, pt := range p.slots {
		fn(pt)
	}
}

// Active returns the number of borrowed particles
func (p *Pool) Active() int {
	return p.active
}

// Cap returns the fixed pool capacity
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Clear returns every particle to the free pool
func (p *Pool) Clear() {
	for i := 0; i < p.active; i++ {
		p.slots[i].clear()
	}
	p.active = 0
}
