package vec

import "github.com/pkg/errors"

// Vector is a contiguous growable sequence of T. The first Len() slots of
// its slab hold live values; the suffix up to Cap() is dead capacity.
// A Vector is not goroutine-safe; guard shared instances externally.
type Vector[T any] struct {
	mem      rawStorage[T]
	size     int
	lc       Lifecycle[T]
	released bool
	stats    counters
}

// New creates an empty Vector for a plain value type T.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewManaged creates an empty Vector whose elements are managed through lc.
func NewManaged[T any](lc Lifecycle[T]) *Vector[T] {
	return &Vector[T]{lc: lc}
}

// Make creates a Vector holding n default-constructed elements.
func Make[T any](n int) (*Vector[T], error) {
	return MakeManaged(Lifecycle[T]{}, n)
}

// MakeManaged creates a managed Vector holding n default-constructed
// elements. If any construction fails, the elements built so far are
// destroyed and the error is returned.
func MakeManaged[T any](lc Lifecycle[T], n int) (*Vector[T], error) {
	v := NewManaged(lc)
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Move creates a Vector that takes over src's slab and elements, leaving
// src valid and empty with zero capacity.
func Move[T any](src *Vector[T]) *Vector[T] {
	src.check()
	out := NewManaged(src.lc)
	out.mem.moveFrom(&src.mem)
	out.size = src.size
	src.size = 0
	return out
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the slot capacity of the current slab.
func (v *Vector[T]) Cap() int {
	return v.mem.cap()
}

// At returns a pointer to the element at index i for reading or in-place
// mutation. The pointer stays valid until the next growing or
// order-changing operation. Panics when i is out of range.
func (v *Vector[T]) At(i int) *T {
	v.check()
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.mem.at(i)
}

// Slice returns the live range as a slice sharing the Vector's slab,
// capacity-clamped so append on it cannot reach dead slots. It stays valid
// until the next growing or order-changing operation.
func (v *Vector[T]) Slice() []T {
	v.check()
	return v.mem.slots[:v.size:v.size]
}

// Range calls fn for each live element in order until fn returns false.
// fn may mutate elements through p but must not mutate the Vector itself.
func (v *Vector[T]) Range(fn func(i int, p *T) bool) {
	v.check()
	for i := 0; i < v.size; i++ {
		if !fn(i, v.mem.at(i)) {
			return
		}
	}
}

// Reserve grows capacity to at least n; it never shrinks. Existing
// elements keep their values and order. On failure the Vector is
// unchanged.
func (v *Vector[T]) Reserve(n int) error {
	v.check()
	if n <= v.mem.cap() {
		return nil
	}
	ns, err := newRawStorage[T](n)
	if err != nil {
		return err
	}
	if err := v.relocateTo(&ns, 0, 0, v.size); err != nil {
		return err
	}
	v.finishGrow(&ns)
	return nil
}

// Push appends a duplicate of val. Amortized O(1): capacity doubles when
// full. On failure the Vector is unchanged.
func (v *Vector[T]) Push(val T) error {
	return v.Emplace(func() (T, error) { return v.lc.clone(&val) })
}

// PushMove appends the value in *src, consuming it. On success *src is a
// dead zeroed slot; on failure both the Vector and *src are unchanged.
func (v *Vector[T]) PushMove(src *T) error {
	return v.Emplace(func() (T, error) { return v.lc.take(src) })
}

// Emplace constructs a new element directly in its final slot at the end
// of the live range. When growth is needed the element is constructed into
// the new slab before the existing elements are relocated, so any failure
// leaves the Vector untouched.
func (v *Vector[T]) Emplace(construct func() (T, error)) error {
	v.check()
	if v.size < v.mem.cap() {
		val, err := construct()
		if err != nil {
			return err
		}
		*v.mem.at(v.size) = val
		v.size++
		return nil
	}
	ns, err := newRawStorage[T](growCap(v.mem.cap()))
	if err != nil {
		return err
	}
	val, err := construct()
	if err != nil {
		return err
	}
	*ns.at(v.size) = val
	if err := v.relocateTo(&ns, 0, 0, v.size); err != nil {
		v.lc.drop(ns.at(v.size))
		return err
	}
	v.finishGrow(&ns)
	v.size++
	return nil
}

// Pop destroys the last element. Panics when the Vector is empty.
func (v *Vector[T]) Pop() {
	v.check()
	if v.size == 0 {
		panic("vec: Pop on empty Vector")
	}
	v.size--
	v.lc.drop(v.mem.at(v.size))
}

// Resize sets the element count to n. Shrinking destroys the trailing
// elements; growing reserves capacity and default-constructs the new tail.
// If a construction fails the new elements built so far are destroyed and
// the count is unchanged (capacity may have grown).
func (v *Vector[T]) Resize(n int) error {
	v.check()
	if n < 0 {
		panic("vec: negative size")
	}
	switch {
	case n < v.size:
		for i := n; i < v.size; i++ {
			v.lc.drop(v.mem.at(i))
		}
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			val, err := v.lc.defaultNew()
			if err != nil {
				for j := i - 1; j >= v.size; j-- {
					v.lc.drop(v.mem.at(j))
				}
				return errors.Wrapf(err, "vec: constructing element %d during Resize", i)
			}
			*v.mem.at(i) = val
		}
	}
	v.size = n
	return nil
}

// relocateTo transfers count live elements starting at slot srcOff into
// dst starting at dstOff, honoring the relocation policy. On failure every
// slot it constructed in dst is destroyed again and the source elements
// are left intact.
func (v *Vector[T]) relocateTo(dst *rawStorage[T], srcOff, dstOff, count int) error {
	if v.lc.relocateByTake() {
		for i := 0; i < count; i++ {
			val, err := v.lc.take(v.mem.at(srcOff + i))
			if err != nil {
				// The policy only selects Take when it cannot fail.
				panic("vec: Take failed during relocation declared safe")
			}
			*dst.at(dstOff+i) = val
		}
		v.stats.moved += count
		return nil
	}
	for i := 0; i < count; i++ {
		val, err := v.lc.clone(v.mem.at(srcOff + i))
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				v.lc.drop(dst.at(dstOff + j))
			}
			v.stats.copied += i
			return errors.Wrapf(err, "vec: duplicating element %d for growth", srcOff+i)
		}
		*dst.at(dstOff+i) = val
	}
	v.stats.copied += count
	return nil
}

// finishGrow destroys whatever the old slab still holds and installs ns.
// After Take-based relocation the old slots are already dead; after
// Clone-based relocation the originals are still live and are dropped
// here.
func (v *Vector[T]) finishGrow(ns *rawStorage[T]) {
	if !v.lc.relocateByTake() {
		for i := 0; i < v.size; i++ {
			v.lc.drop(v.mem.at(i))
		}
	}
	v.mem.swap(ns)
	ns.release()
	v.stats.grows++
}

// growCap doubles the capacity, with a floor of one slot.
func growCap(cur int) int {
	if cur == 0 {
		return 1
	}
	return cur * 2
}

// check panics if the Vector has been released.
func (v *Vector[T]) check() {
	if v.released {
		panic("vec: use after Release()")
	}
}
