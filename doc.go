// Package vec implements a generic, contiguous, growable vector built on
// raw slot storage.
//
// # Overview
//
// A Vector keeps its elements in one contiguous slab of capacity slots and
// tracks how many leading slots hold live values. The slab and the live
// range are managed separately: the storage layer only knows capacity, and
// the Vector decides per operation how elements are constructed, duplicated,
// relocated and destroyed. This makes the container usable for:
//
//   - Element types whose teardown has observable side effects
//   - Element types that are expensive or forbidden to duplicate
//   - Code that needs a contiguous live range to hand to slice-based APIs
//   - Workloads that need failure-safe growth (a failed grow never corrupts
//     the existing elements)
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Clean up when done
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(1, 99)    // 1, 99, 2
//	sum := 0
//	for _, n := range v.Slice() {
//		sum += n
//	}
//
// # Managed Element Types
//
// Types that own resources attach a Lifecycle describing how to construct,
// clone, relocate and destroy values:
//
//	lc := vec.Lifecycle[Conn]{
//		Clone: cloneConn,
//		Drop:  closeConn,
//	}
//	v := vec.NewManaged[Conn](lc)
//	defer v.Release()
//
// When the Vector grows it relocates elements by Take only if that cannot
// fail (SafeTake, NoCopy, or the bitwise default); otherwise it duplicates
// by Clone so a mid-relocation failure leaves the original elements intact.
//
// # Thread Safety
//
// A Vector is not thread-safe. Concurrent mutation of one instance, or
// mutation concurrent with reads, must be prevented externally (for example
// with a mutex around the shared instance). Distinct instances are fully
// independent and need no coordination.
//
// # Memory Layout
//
// Capacity slots are contiguous. The first Len() slots hold live values;
// the remainder is dead capacity that no operation observes. Growth doubles
// capacity (floor 1), giving amortized O(1) append. Slice() exposes the
// live range directly; it stays valid until the next growing or
// order-changing operation.
//
// # Performance Characteristics
//
//   - Push/Pop: O(1) amortized
//   - At/Slice: O(1)
//   - Insert/Erase at position i: O(Len - i)
//   - Reserve/Resize growth: O(Len) relocation, at most one allocation
//
// # Important Notes
//
//   - Pointers from At() and slices from Slice() are invalidated by growth
//   - Out-of-range indices, Pop on empty, and use after Release() panic
//   - Failed operations report errors and state per-operation guarantees;
//     growth paths always leave the prior elements intact
//
// # Metrics and Monitoring
//
// The vector tracks its growth activity:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Grows: %d (moved %d, copied %d)\n", m.Grows, m.Moved, m.Copied)
package vec
