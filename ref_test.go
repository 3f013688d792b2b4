package grip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/grip/contract"
)

func TestNewRef_SameAddress(t *testing.T) {
	v := 42
	r := NewRef(&v)

	require.Same(t, &v, r.Get())
	require.Same(t, &v, r.Underlying())
	require.Equal(t, 42, r.Deref())
}

func TestNewRef_NilIsBreach(t *testing.T) {
	if !contract.Checked {
		t.Skip("assertions compiled out")
	}
	require.Panics(t, func() {
		NewRef[int](nil)
	})
}

func TestTryRef(t *testing.T) {
	_, ok := TryRef[int](nil)
	require.False(t, ok, "nil input must report absence")

	v := 7
	r, ok := TryRef(&v)
	require.True(t, ok)
	require.Same(t, &v, r.Get())
}

func TestRef_Set(t *testing.T) {
	v := 1
	r := NewRef(&v)
	r.Set(9)
	require.Equal(t, 9, v)
}

func TestRef_CopyPreservesIdentity(t *testing.T) {
	v := 1
	r := NewRef(&v)
	c := r
	require.Same(t, r.Get(), c.Get())
}

func TestRef_DoubleSwapRestores(t *testing.T) {
	a, b := 1, 2
	ra := NewRef(&a)
	rb := NewRef(&b)

	ra.Swap(&rb)
	require.Same(t, &b, ra.Get())
	require.Same(t, &a, rb.Get())

	ra.Swap(&rb)
	require.Same(t, &a, ra.Get())
	require.Same(t, &b, rb.Get())
}

func TestRef_Equality(t *testing.T) {
	v, w := 1, 1
	rv := NewRef(&v)
	rw := NewRef(&w)

	require.True(t, rv.Equal(NewRef(&v)))
	require.False(t, rv.Equal(rw), "identity, not value, comparison")
	require.True(t, rv.EqualPtr(&v))
	require.False(t, rv.EqualPtr(&w))
	require.False(t, rv.EqualPtr(nil), "a live reference is never nil")
}

func TestTakeRef_SourceStaysUsable(t *testing.T) {
	v := 5
	r := NewRef(&v)
	p := TakeRef(r)

	require.Same(t, &v, p)
	require.Equal(t, 5, r.Deref(), "non-owning extraction does not invalidate")
}

type base struct {
	tag string
}

type derived struct {
	base
	extra int
}

func TestConvertRef_Upcast(t *testing.T) {
	d := derived{base: base{tag: "d"}, extra: 3}
	rd := NewRef(&d)

	rb := ConvertRef(rd, func(p *derived) *base { return &p.base })
	require.Equal(t, "d", rb.Deref().tag)
	require.Same(t, &d.base, rb.Get())
}

func TestRef_ZeroValueIsBreach(t *testing.T) {
	if !contract.Checked {
		t.Skip("assertions compiled out")
	}
	var r Ref[int]
	require.Panics(t, func() { r.Get() })
}
