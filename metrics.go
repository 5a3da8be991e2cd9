package vec

import "unsafe"

// counters accumulates growth activity over a Vector's lifetime. They
// travel with the instance, not with its contents: Swap does not exchange
// them.
type counters struct {
	grows  int // slab replacements
	moved  int // elements relocated by Take across all grows
	copied int // elements duplicated by Clone across all grows
}

// SizeBytes returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeBytes() int {
	return v.size * int(unsafe.Sizeof(*new(T)))
}

// CapBytes returns the number of bytes reserved by the slab.
func (v *Vector[T]) CapBytes() int {
	return v.mem.cap() * int(unsafe.Sizeof(*new(T)))
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 when the Vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.mem.cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Grows returns the number of slab replacements since creation. A Reserve
// covering all later appends keeps this at one.
func (v *Vector[T]) Grows() int {
	return v.stats.grows
}

// Metrics returns a snapshot of the Vector's size, capacity and growth
// activity.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Len:         v.size,
		Cap:         v.mem.cap(),
		SizeBytes:   v.SizeBytes(),
		CapBytes:    v.CapBytes(),
		Utilization: v.Utilization(),
		Grows:       v.stats.grows,
		Moved:       v.stats.moved,
		Copied:      v.stats.copied,
	}
}

// Metrics contains statistical information about a Vector.
type Metrics struct {
	Len         int     // Live element count
	Cap         int     // Slot capacity
	SizeBytes   int     // Bytes occupied by live elements
	CapBytes    int     // Bytes reserved by the slab
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
	Grows       int     // Slab replacements since creation
	Moved       int     // Elements relocated by Take during growth
	Copied      int     // Elements duplicated by Clone during growth
}
