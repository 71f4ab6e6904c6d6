package view

import (
	"sync"

	"picto/area"
)

// Borrows tracks live write-capable windows over one storage owner. At most
// one write borrow may cover any pixel at a time; read views are not
// tracked. The zero value is ready to use.
type Borrows struct {
	mu   sync.Mutex
	next uint64
	live map[uint64]area.Area
}

// Acquire registers a write borrow of a. It panics if a overlaps a live
// borrow. The returned function releases the borrow and may be called any
// number of times.
func (b *Borrows) Acquire(a area.Area) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, other := range b.live {
		if a.Overlaps(other) {
			panic("region already borrowed for writing")
		}
	}

	if b.live == nil {
		b.live = make(map[uint64]area.Area)
	}
	id := b.next
	b.next++
	b.live[id] = a

	return sync.OnceFunc(func() {
		b.mu.Lock()
		delete(b.live, id)
		b.mu.Unlock()
	})
}

// Live returns the number of live borrows.
func (b *Borrows) Live() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}
