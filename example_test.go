package vec

import "fmt"

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // Always clean up

	// Append some values (capacity doubles as needed)
	v.Push(1)
	v.Push(2)
	v.Push(3)
	fmt.Println("contents:", v.Slice())
	fmt.Println("len:", v.Len(), "cap:", v.Cap())

	// Insert in the middle, preserving order
	v.Insert(1, 99)
	fmt.Println("after insert:", v.Slice())

	// Remove from the front and the back
	v.Erase(0)
	v.Pop()
	fmt.Println("after erase+pop:", v.Slice())

	// Output:
	// contents: [1 2 3]
	// len: 3 cap: 4
	// after insert: [1 99 2 3]
	// after erase+pop: [99 2]
}

// ExampleVector_Reserve demonstrates reallocation-free appends
func ExampleVector_Reserve() {
	v := New[int]()
	defer v.Release()

	// One allocation up front covers all later appends
	v.Reserve(8)
	for i := 0; i < 8; i++ {
		v.Push(i)
	}

	fmt.Println("grows:", v.Grows(), "cap:", v.Cap())
	// Output:
	// grows: 1 cap: 8
}

// ExampleNewManaged demonstrates a lifecycle with observable teardown
func ExampleNewManaged() {
	lc := Lifecycle[string]{
		Drop: func(p *string) { fmt.Println("dropping", *p) },
	}
	v := NewManaged(lc)

	v.Push("a")
	v.Push("b")
	v.Pop()     // destroys "b"
	v.Release() // destroys the rest

	// Output:
	// dropping b
	// dropping a
}

// ExampleVector_Range demonstrates in-place traversal
func ExampleVector_Range() {
	v := New[int]()
	defer v.Release()
	for i := 1; i <= 3; i++ {
		v.Push(i)
	}

	v.Range(func(i int, p *int) bool {
		*p *= 10
		return true
	})

	fmt.Println(v.Slice())
	// Output:
	// [10 20 30]
}

// ExampleVector_Metrics demonstrates growth monitoring
func ExampleVector_Metrics() {
	v := New[int64]()
	defer v.Release()
	for i := 0; i < 3; i++ {
		v.Push(int64(i))
	}

	m := v.Metrics()
	fmt.Printf("len=%d cap=%d utilization=%.2f grows=%d\n",
		m.Len, m.Cap, m.Utilization, m.Grows)
	// Output:
	// len=3 cap=4 utilization=0.75 grows=3
}
