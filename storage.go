package vec

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// rawStorage owns one contiguous slab of capacity element slots, or no slab
// when capacity is zero. It knows only capacity, never which slots hold live
// values; constructing and destroying elements is the Vector's job, and
// releasing the slab never touches element state.
//
// The slab is a typed allocation so the garbage collector can trace
// pointers held by live elements. Slots at or past the Vector's watermark
// are dead capacity regardless of the bits they hold.
type rawStorage[T any] struct {
	slots []T // len(slots) == capacity
}

// newRawStorage allocates a slab for capacity elements. A capacity of zero
// yields no allocation. Requests whose byte size is not representable fail
// with ErrAllocLimit before anything is allocated.
func newRawStorage[T any](capacity int) (rawStorage[T], error) {
	if capacity < 0 {
		panic("vec: negative capacity")
	}
	if capacity == 0 {
		return rawStorage[T]{}, nil
	}
	if esz := int(unsafe.Sizeof(*new(T))); esz > 0 && capacity > math.MaxInt/esz {
		return rawStorage[T]{}, errors.Wrapf(ErrAllocLimit, "capacity %d", capacity)
	}
	return rawStorage[T]{slots: make([]T, capacity)}, nil
}

// cap returns the slot count of the slab.
func (r *rawStorage[T]) cap() int {
	return len(r.slots)
}

// at returns the address of slot i. i must be less than cap.
func (r *rawStorage[T]) at(i int) *T {
	return &r.slots[i]
}

// swap exchanges slab and capacity with other in O(1).
func (r *rawStorage[T]) swap(other *rawStorage[T]) {
	r.slots, other.slots = other.slots, r.slots
}

// moveFrom transfers other's slab into r and leaves other empty. Whatever
// slab r held is dropped.
func (r *rawStorage[T]) moveFrom(other *rawStorage[T]) {
	r.slots = other.slots
	other.slots = nil
}

// release drops the slab unconditionally.
func (r *rawStorage[T]) release() {
	r.slots = nil
}
