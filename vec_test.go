package vec

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushGrowthDoubling(t *testing.T) {
	v := New[int]()
	defer v.Release()

	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i := 0; i < len(wantCaps); i++ {
		require.NoError(t, v.Push(i+1))
		assert.Equal(t, i+1, v.Len())
		assert.Equal(t, wantCaps[i], v.Cap(), "capacity after push %d", i+1)
	}
	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, i+1, *v.At(i))
	}
}

func TestReserveAvoidsReallocation(t *testing.T) {
	v := New[int]()
	defer v.Release()

	require.NoError(t, v.Reserve(100))
	require.Equal(t, 100, v.Cap())
	require.Equal(t, 1, v.Grows())

	require.NoError(t, v.Push(0))
	p0 := v.At(0)
	for i := 1; i < 100; i++ {
		require.NoError(t, v.Push(i))
	}

	assert.Equal(t, 1, v.Grows(), "appends within reserved capacity must not reallocate")
	assert.Equal(t, 100, v.Cap())
	assert.Same(t, p0, v.At(0), "elements must not move within reserved capacity")
}

func TestReserveNeverShrinks(t *testing.T) {
	v := New[int]()
	defer v.Release()

	require.NoError(t, v.Reserve(16))
	require.NoError(t, v.Reserve(4))
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 1, v.Grows())
}

func TestScenarioWalkthrough(t *testing.T) {
	v := New[int]()
	defer v.Release()

	for _, n := range []int{1, 2, 3} {
		require.NoError(t, v.Push(n))
	}
	require.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, v.Slice())

	require.NoError(t, v.Insert(1, 99))
	assert.Equal(t, []int{1, 99, 2, 3}, v.Slice())

	require.NoError(t, v.Erase(0))
	assert.Equal(t, []int{99, 2, 3}, v.Slice())

	capBefore := v.Cap()
	require.NoError(t, v.Resize(1))
	assert.Equal(t, []int{99}, v.Slice())
	assert.Equal(t, capBefore, v.Cap(), "shrinking Resize must not change capacity")

	require.NoError(t, v.Resize(4))
	assert.Equal(t, []int{99, 0, 0, 0}, v.Slice())
}

func TestResizeShrinkKeepsPrefixInPlace(t *testing.T) {
	v := New[int]()
	defer v.Release()

	for i := 0; i < 5; i++ {
		require.NoError(t, v.Push(i))
	}
	p := v.At(0)

	require.NoError(t, v.Resize(2))
	assert.Equal(t, []int{0, 1}, v.Slice())
	assert.Same(t, p, v.At(0))
}

func TestResizeGrowDefaultConstructs(t *testing.T) {
	v := New[string]()
	defer v.Release()

	require.NoError(t, v.Push("x"))
	require.NoError(t, v.Resize(3))
	assert.Equal(t, []string{"x", "", ""}, v.Slice())
}

func TestMake(t *testing.T) {
	v, err := Make[int](3)
	require.NoError(t, err)
	defer v.Release()

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{0, 0, 0}, v.Slice())
}

func TestMakeManagedDefaultConstructor(t *testing.T) {
	next := 0
	lc := Lifecycle[int]{
		New: func() (int, error) {
			next++
			return next, nil
		},
	}
	v, err := MakeManaged(lc, 3)
	require.NoError(t, err)
	defer v.Release()

	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestPushMoveConsumesSource(t *testing.T) {
	v := New[int]()
	defer v.Release()

	x := 42
	require.NoError(t, v.PushMove(&x))
	assert.Equal(t, 0, x, "bitwise move must zero the source slot")
	assert.Equal(t, 42, *v.At(0))
}

func TestEmplaceConstructsInFinalSlot(t *testing.T) {
	v := New[int]()
	defer v.Release()

	require.NoError(t, v.Emplace(func() (int, error) { return 7, nil }))
	assert.Equal(t, []int{7}, v.Slice())
}

func TestEmplaceFailureLeavesVectorUntouched(t *testing.T) {
	boom := errors.New("boom")

	v := New[int]()
	defer v.Release()
	require.NoError(t, v.Push(1))

	// In-place path: room available.
	require.NoError(t, v.Reserve(4))
	err := v.Emplace(func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1}, v.Slice())

	// Growth path: vector full, constructor fails before relocation.
	require.NoError(t, v.Resize(4))
	grows := v.Grows()
	err = v.Emplace(func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, grows, v.Grows())
}

func TestPopPanicsOnEmpty(t *testing.T) {
	v := New[int]()
	defer v.Release()
	require.PanicsWithValue(t, "vec: Pop on empty Vector", func() { v.Pop() })
}

func TestAtPanicsOutOfRange(t *testing.T) {
	v := New[int]()
	defer v.Release()
	require.NoError(t, v.Push(1))

	require.PanicsWithValue(t, "vec: index out of range", func() { v.At(1) })
	require.PanicsWithValue(t, "vec: index out of range", func() { v.At(-1) })
}

func TestResizeNegativePanics(t *testing.T) {
	v := New[int]()
	defer v.Release()
	require.PanicsWithValue(t, "vec: negative size", func() { _ = v.Resize(-1) })
}

func TestRange(t *testing.T) {
	v := New[int]()
	defer v.Release()
	for i := 1; i <= 3; i++ {
		require.NoError(t, v.Push(i))
	}

	v.Range(func(i int, p *int) bool {
		*p *= 10
		return true
	})
	assert.Equal(t, []int{10, 20, 30}, v.Slice())

	visited := 0
	v.Range(func(i int, p *int) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited, "Range must stop when fn returns false")
}

func TestSliceSharesStorage(t *testing.T) {
	v := New[int]()
	defer v.Release()
	require.NoError(t, v.Push(1))
	require.NoError(t, v.Push(2))

	s := v.Slice()
	s[0] = 9
	assert.Equal(t, 9, *v.At(0))
	assert.Equal(t, len(s), cap(s), "Slice must be capacity-clamped")
}
