package vec

import "github.com/pkg/errors"

// Insert places a duplicate of val at index i and shifts later elements
// one slot right. i may equal Len(), which appends.
func (v *Vector[T]) Insert(i int, val T) error {
	return v.EmplaceAt(i, func() (T, error) { return v.lc.clone(&val) })
}

// InsertMove places the value in *src at index i, consuming it. See
// EmplaceAt for the guarantees of the two insertion paths.
func (v *Vector[T]) InsertMove(i int, src *T) error {
	return v.EmplaceAt(i, func() (T, error) { return v.lc.take(src) })
}

// EmplaceAt constructs a new element at index i, shifting later elements
// one slot right. i may equal Len(), which appends.
//
// When growth is required the new element is constructed at its target
// offset in the new slab before the existing elements are relocated around
// it; any failure unwinds the partially built slab and leaves the Vector
// untouched. The in-place path instead shifts live elements by Take and
// does not defend against a Take failure mid-shift: it is only
// well-defined for lifecycles whose Take cannot fail.
func (v *Vector[T]) EmplaceAt(i int, construct func() (T, error)) error {
	v.check()
	if i < 0 || i > v.size {
		panic("vec: position out of range")
	}
	if i == v.size {
		return v.Emplace(construct)
	}
	if v.size == v.mem.cap() {
		return v.emplaceGrow(i, construct)
	}
	return v.emplaceShift(i, construct)
}

func (v *Vector[T]) emplaceGrow(i int, construct func() (T, error)) error {
	ns, err := newRawStorage[T](growCap(v.mem.cap()))
	if err != nil {
		return err
	}
	val, err := construct()
	if err != nil {
		return err
	}
	*ns.at(i) = val
	if err := v.relocateTo(&ns, 0, 0, i); err != nil {
		v.lc.drop(ns.at(i))
		return err
	}
	if err := v.relocateTo(&ns, i, i+1, v.size-i); err != nil {
		for j := i; j >= 0; j-- {
			v.lc.drop(ns.at(j))
		}
		return err
	}
	v.finishGrow(&ns)
	v.size++
	return nil
}

func (v *Vector[T]) emplaceShift(i int, construct func() (T, error)) error {
	tmp, err := construct()
	if err != nil {
		return err
	}
	// Vacate slot i by walking the tail one slot right, last element
	// first. Each Take leaves its source dead just before the next
	// iteration fills it.
	for j := v.size; j > i; j-- {
		val, err := v.lc.take(v.mem.at(j - 1))
		if err != nil {
			v.lc.drop(&tmp)
			return errors.Wrapf(err, "vec: relocating element %d during insert", j-1)
		}
		*v.mem.at(j) = val
	}
	*v.mem.at(i) = tmp
	v.size++
	return nil
}

// Erase destroys the element at index i and shifts later elements one slot
// left. Panics when i is out of range. Like the in-place insert path, the
// shift uses Take and is only well-defined for lifecycles whose Take
// cannot fail.
func (v *Vector[T]) Erase(i int) error {
	v.check()
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	v.lc.drop(v.mem.at(i))
	for j := i; j < v.size-1; j++ {
		val, err := v.lc.take(v.mem.at(j + 1))
		if err != nil {
			return errors.Wrapf(err, "vec: relocating element %d during erase", j+1)
		}
		*v.mem.at(j) = val
	}
	v.size--
	return nil
}
