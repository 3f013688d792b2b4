package fn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/grip/contract"
)

// countingResource stands in for a non-duplicable captured resource.
type countingResource struct {
	calls  int
	closed bool
}

func TestOwnedFn_Call(t *testing.T) {
	res := &countingResource{}
	o := NewOwnedFn(func(x int) int {
		res.calls++
		return x * 2
	})

	require.Equal(t, 42, o.Call(21))
	require.Equal(t, 1, res.calls)
}

func TestOwnedFn_NilIsBreach(t *testing.T) {
	if !contract.Checked {
		t.Skip("assertions compiled out")
	}
	require.Panics(t, func() {
		NewOwnedFn[int, int](nil)
	})
}

func TestTryOwnedFn(t *testing.T) {
	_, ok := TryOwnedFn[int, int](nil)
	require.False(t, ok)

	o, ok := TryOwnedFn(func(x int) int { return x })
	require.True(t, ok)
	require.Equal(t, 5, o.Call(5))
}

func TestOwnedFn_TakeRewrapPreservesBehavior(t *testing.T) {
	res := &countingResource{}
	o := NewOwnedFn(func(x int) int {
		res.calls++
		return x + 100
	})

	f := TakeOwnedFn(o)
	o2 := NewOwnedFn(f)

	require.Equal(t, 101, o2.Call(1))
	require.Equal(t, 1, res.calls, "the same closure travelled through take/re-wrap")
}

func TestOwnedFn_UseAfterTakeIsBreach(t *testing.T) {
	if !contract.Checked {
		t.Skip("assertions compiled out")
	}

	o := NewOwnedFn(func(x int) int { return x })
	TakeOwnedFn(o)

	require.Panics(t, func() { o.Call(1) })
	require.Panics(t, func() { o.Underlying() })
	require.Panics(t, func() { TakeOwnedFn(o) })
}

func TestOwnedFn_Swap(t *testing.T) {
	a := NewOwnedFn(func(x int) int { return x + 1 })
	b := NewOwnedFn(func(x int) int { return x - 1 })

	a.Swap(b)
	require.Equal(t, 0, a.Call(1))
	require.Equal(t, 2, b.Call(1))

	a.Swap(b)
	require.Equal(t, 2, a.Call(1))
	require.Equal(t, 0, b.Call(1))
}

func TestOwnedFn_CloseOverResourceLifecycle(t *testing.T) {
	res := &countingResource{}
	o := NewOwnedFn(func(close bool) bool {
		if close {
			res.closed = true
		}
		return res.closed
	})

	require.False(t, o.Call(false))

	// Transfer the closure, with its captured resource, to a new owner.
	o2 := NewOwnedFn(TakeOwnedFn(o))
	require.True(t, o2.Call(true))
	require.True(t, res.closed)
}
