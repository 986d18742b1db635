package snapshot

import (
	"sync"
)

// Ref holds the active document snapshot behind a read/write lock so a
// replacement swaps the whole value atomically. Readers never observe a
// half-updated document; queries in flight keep the snapshot they loaded.
type Ref[T any] struct {
	guard sync.RWMutex
	data  T
}

func NewRef[T any](data T) *Ref[T] {
	return &Ref[T]{
		data: data,
	}
}

func (r *Ref[T]) Load() T {
	r.guard.RLock()
	item := r.data
	r.guard.RUnlock()

	return item
}

func (r *Ref[T]) Store(data T) {
	r.guard.Lock()
	r.data = data
	r.guard.Unlock()
}
