// Package store holds the in-memory mirror of the backend database: one
// Collection per entity type, owned exclusively by the running session. The
// sync coordinator is the only writer; everything else reads.
package store

import (
	"sync"

	"github.com/hms/hms/internal/client/record"
)

// Record is anything keyed by an integer id unique within its collection.
type Record interface {
	Key() int
}

// Collection is an ordered, id-indexed set of records. List preserves
// insertion order; Get is an indexed map lookup rather than a linear scan.
type Collection[T Record] struct {
	mu    sync.RWMutex
	order []int
	byID  map[int]T
}

// NewCollection returns an empty collection.
func NewCollection[T Record]() *Collection[T] {
	return &Collection[T]{byID: make(map[int]T)}
}

// List returns the records in insertion order. The returned slice is a copy;
// mutating it does not affect the collection.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Get returns the record with the given id, if present.
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.byID[id]
	return rec, ok
}

// Upsert inserts the record if its id is absent, else replaces it in place.
// Insertion order is preserved on replace.
func (c *Collection[T]) Upsert(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := rec.Key()
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = rec
}

// Remove deletes the record with the given id and reports whether it existed.
func (c *Collection[T]) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Replace swaps the entire collection for the given records in one step.
// Used by the bulk load: all-or-nothing per entity.
func (c *Collection[T]) Replace(recs []T) {
	order := make([]int, 0, len(recs))
	byID := make(map[int]T, len(recs))
	for _, rec := range recs {
		id := rec.Key()
		if _, ok := byID[id]; !ok {
			order = append(order, id)
		}
		byID[id] = rec
	}
	c.mu.Lock()
	c.order = order
	c.byID = byID
	c.mu.Unlock()
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// NextID returns one more than the largest existing id, or 1 for an empty
// collection. Monotonic within this session only; the server remains the
// authority when it is reachable.
func (c *Collection[T]) NextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	max := 0
	for id := range c.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Store aggregates the per-entity collections for one session.
type Store struct {
	Patients     *Collection[record.Patient]
	Physicians   *Collection[record.Physician]
	Appointments *Collection[record.Appointment]
	Admissions   *Collection[record.Admission]
	Rooms        *Collection[record.Room]
	Billing      *Collection[record.Invoice]
	Insurance    *Collection[record.Insurance]
	Records      *Collection[record.PatientRecord]
	Claims       *Collection[record.InsuranceClaim]
	Beds         *Collection[record.Bed]
}

// New returns a Store with empty collections.
func New() *Store {
	return &Store{
		Patients:     NewCollection[record.Patient](),
		Physicians:   NewCollection[record.Physician](),
		Appointments: NewCollection[record.Appointment](),
		Admissions:   NewCollection[record.Admission](),
		Rooms:        NewCollection[record.Room](),
		Billing:      NewCollection[record.Invoice](),
		Insurance:    NewCollection[record.Insurance](),
		Records:      NewCollection[record.PatientRecord](),
		Claims:       NewCollection[record.InsuranceClaim](),
		Beds:         NewCollection[record.Bed](),
	}
}
