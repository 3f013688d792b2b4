package grip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/grip/contract"
)

func TestWeak_UpgradeWhileAlive(t *testing.T) {
	s := Share(3)
	w := s.Downgrade()
	require.EqualValues(t, 1, s.UseCount(), "downgrade leaves the strong count alone")
	require.False(t, w.Expired())

	u, ok := w.Upgrade()
	require.True(t, ok)
	require.Same(t, s.Get(), u.Get())
	require.EqualValues(t, 2, s.UseCount())

	u.Release()
}

func TestWeak_UpgradeAfterDeathIsAbsence(t *testing.T) {
	dropped := 0
	s := ShareWith(3, func(*int) { dropped++ })
	w := s.Downgrade()

	s.Release()
	require.Equal(t, 1, dropped, "weak observers do not keep the value alive")
	require.True(t, w.Expired())
	require.EqualValues(t, 0, w.UseCount())

	_, ok := w.Upgrade()
	require.False(t, ok)
}

func TestWeak_OwnerIdentityAgainstShared(t *testing.T) {
	a := Share(1)
	b := Share(2)
	wa := a.Downgrade()

	require.True(t, wa.OwnerEqual(a))
	require.False(t, wa.OwnerEqual(b))
	require.Equal(t, a.OwnerHash(), wa.OwnerHash())
	require.Equal(t, a.OwnerBefore(b), wa.OwnerBefore(b))
}

func TestWeak_CloneAndRelease(t *testing.T) {
	s := Share(1)
	w := s.Downgrade()
	c := w.Clone()

	w.Release()
	require.False(t, c.Expired(), "remaining observer still sees the allocation")

	if contract.Checked {
		require.Panics(t, func() { w.UseCount() }, "released observer is dead")
	}

	c.Release()
}

func TestWeak_Swap(t *testing.T) {
	a := Share(1)
	b := Share(2)
	wa := a.Downgrade()
	wb := b.Downgrade()

	wa.Swap(&wb)
	require.True(t, wa.OwnerEqual(b))
	require.True(t, wb.OwnerEqual(a))
}
