package pool

// Resettable is a constraint for types that have a Reset() method.
type Resettable interface {
	Reset()
}

// Poolable is a constraint for types that can be pooled (must be resettable and comparable).
type Poolable interface {
	Resettable
	comparable
}

// Pool is a bounded free list of reusable objects of type T.
// Objects are reset on Put; Get falls back to the constructor when the list is empty.
type Pool[T Poolable] struct {
	items   chan T
	newItem func() T
}

// New creates a Pool holding at most capacity idle objects.
// newItem may be nil, in which case Get returns the zero value of T on an empty pool.
func New[T Poolable](capacity int, newItem func() T) *Pool[T] {
	return &Pool[T]{
		items:   make(chan T, capacity),
		newItem: newItem,
	}
}

// Get retrieves an idle object or builds a fresh one.
func (p *Pool[T]) Get() T {
	select {
	case item := <-p.items:
		return item
	default:
	}

	if p.newItem != nil {
		return p.newItem()
	}

	var zero T
	return zero
}

// Put resets item and keeps it for reuse. Zero values are dropped, and so is
// anything beyond the pool capacity.
func (p *Pool[T]) Put(item T) {
	var zero T
	if item == zero {
		return
	}
	item.Reset()

	select {
	case p.items <- item:
	default:
	}
}

// Idle reports how many objects are waiting for reuse.
func (p *Pool[T]) Idle() int {
	return len(p.items)
}
