package vec

import "github.com/pkg/errors"

// Clone returns an independent copy of v with capacity equal to v.Len().
// If duplicating any element fails, the copies built so far are destroyed
// and v is unmodified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.check()
	out := NewManaged(v.lc)
	ns, err := newRawStorage[T](v.size)
	if err != nil {
		return nil, err
	}
	out.mem = ns
	for i := 0; i < v.size; i++ {
		val, err := v.lc.clone(v.mem.at(i))
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				v.lc.drop(out.mem.at(j))
			}
			return nil, errors.Wrapf(err, "vec: duplicating element %d", i)
		}
		*out.mem.at(i) = val
	}
	out.size = v.size
	return out, nil
}

// Assign replaces v's contents with duplicates of src's elements. Both
// vectors are expected to share the same lifecycle semantics; v keeps its
// own Lifecycle.
//
// When src does not fit in v's capacity, a full copy is built first and
// swapped in, so failure leaves v untouched. Otherwise the slab is reused
// and elements are updated in place; a failure there can leave a prefix
// already updated, but v stays valid (every slot in the live range live).
func (v *Vector[T]) Assign(src *Vector[T]) error {
	v.check()
	src.check()
	if v == src {
		return nil
	}
	if src.size > v.mem.cap() {
		dup, err := src.Clone()
		if err != nil {
			return err
		}
		own := v.lc
		v.Swap(dup) // dup now holds v's old contents, under v's old lifecycle
		v.lc = own
		dup.Release()
		return nil
	}
	overlap := min(v.size, src.size)
	for i := 0; i < overlap; i++ {
		val, err := v.lc.clone(src.mem.at(i))
		if err != nil {
			return errors.Wrapf(err, "vec: duplicating element %d", i)
		}
		v.lc.drop(v.mem.at(i))
		*v.mem.at(i) = val
	}
	for i := v.size; i < src.size; i++ {
		val, err := v.lc.clone(src.mem.at(i))
		if err != nil {
			for j := i - 1; j >= v.size; j-- {
				v.lc.drop(v.mem.at(j))
			}
			return errors.Wrapf(err, "vec: duplicating element %d", i)
		}
		*v.mem.at(i) = val
	}
	for i := src.size; i < v.size; i++ {
		v.lc.drop(v.mem.at(i))
	}
	v.size = src.size
	return nil
}

// Swap exchanges slab, size and lifecycle with other in O(1), without
// touching any element. Move assignment in this package is expressed as
// Swap: the source ends up holding the target's previous contents rather
// than becoming empty. Growth counters stay with their instance.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.check()
	other.check()
	v.mem.swap(&other.mem)
	v.size, other.size = other.size, v.size
	v.lc, other.lc = other.lc, v.lc
}

// Release destroys all live elements in order and drops the slab. The
// Vector is unusable afterwards: any further operation panics. Release is
// idempotent.
func (v *Vector[T]) Release() {
	if v.released {
		return
	}
	for i := 0; i < v.size; i++ {
		v.lc.drop(v.mem.at(i))
	}
	v.mem.release()
	v.size = 0
	v.released = true
}
