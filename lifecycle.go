package vec

// Lifecycle describes how a Vector constructs, duplicates, relocates and
// destroys elements of type T. The zero value treats T as a plain value
// type: duplication and relocation are bitwise and nothing can fail.
//
// Hooks may be set independently; a nil hook falls back to the bitwise
// behavior described on each field.
type Lifecycle[T any] struct {
	// New default-constructs a value, used by Resize growth and the sized
	// constructors. nil yields the zero value.
	New func() (T, error)

	// Clone duplicates *src into a fresh value. nil performs a bitwise
	// copy, which cannot fail.
	Clone func(src *T) (T, error)

	// Take relocates *src into a fresh value, leaving *src in whatever
	// moved-from state the hook defines. nil performs a bitwise move.
	// After a successful Take the source slot is dead: the Vector zeroes
	// it and never passes it to Drop.
	Take func(src *T) (T, error)

	// Drop destroys a live value. nil means no teardown beyond zeroing
	// the slot. Drop is called exactly once per live value, never on dead
	// or moved-from slots.
	Drop func(p *T)

	// SafeTake declares that Take never returns an error, allowing growth
	// to relocate by Take instead of duplicating by Clone.
	SafeTake bool

	// NoCopy declares that T must never be duplicated. Clone is ignored
	// and copy-based operations (Push, Insert, Vector.Clone, Assign)
	// panic. Relocation always uses Take.
	NoCopy bool
}

// relocateByTake reports whether relocation to a new slab may use Take:
// only when moving cannot fail, or when duplication is not an option at
// all. Otherwise growth duplicates by Clone so that a mid-relocation
// failure leaves the source slab fully intact.
func (lc *Lifecycle[T]) relocateByTake() bool {
	return lc.NoCopy || lc.SafeTake || lc.Take == nil
}

func (lc *Lifecycle[T]) defaultNew() (T, error) {
	if lc.New == nil {
		var zero T
		return zero, nil
	}
	return lc.New()
}

func (lc *Lifecycle[T]) clone(src *T) (T, error) {
	if lc.NoCopy {
		panic("vec: element type marked NoCopy")
	}
	if lc.Clone == nil {
		return *src, nil
	}
	return lc.Clone(src)
}

// take consumes *src. On success the slot is zeroed so the slab drops any
// references the value held; on failure the slot is left as the hook left
// it.
func (lc *Lifecycle[T]) take(src *T) (T, error) {
	var zero T
	if lc.Take == nil {
		v := *src
		*src = zero
		return v, nil
	}
	v, err := lc.Take(src)
	if err != nil {
		return v, err
	}
	*src = zero
	return v, nil
}

// drop destroys the live value at p and zeroes the slot.
func (lc *Lifecycle[T]) drop(p *T) {
	if lc.Drop != nil {
		lc.Drop(p)
	}
	var zero T
	*p = zero
}
