package nbt

import (
	"math"
	"testing"

	"github.com/anvilcodec/anvil/format"
	"github.com/stretchr/testify/require"
)

func TestTag_Equal(t *testing.T) {
	a := NewCompound("root", NewInt("x", 42), NewString("name", "creeper"))
	b := NewCompound("root", NewInt("x", 42), NewString("name", "creeper"))
	require.True(t, a.Equal(b))

	c := NewCompound("root", NewInt("x", 43), NewString("name", "creeper"))
	require.False(t, a.Equal(c))
}

func TestTag_Equal_FloatBitPatterns(t *testing.T) {
	nan1 := NewFloat("f", float32(math.NaN()))
	nan2 := NewFloat("f", float32(math.NaN()))
	require.True(t, nan1.Equal(nan2), "identical NaN bit patterns must compare equal")

	zero := NewDouble("d", 0.0)
	negZero := NewDouble("d", math.Copysign(0, -1))
	require.False(t, zero.Equal(negZero), "zero and negative zero have distinct bit patterns")
}

func TestList_Len(t *testing.T) {
	l := List{ElementKind: format.Byte, Elements: []int8{1, 2, 3}}
	require.Equal(t, 3, l.Len())

	empty := List{ElementKind: format.String}
	require.Equal(t, 0, empty.Len())
}

func TestTag_Digest_StableAcrossEqualTrees(t *testing.T) {
	a := NewCompound("root", NewInt("x", 1))
	b := NewCompound("root", NewInt("x", 1))

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	require.Equal(t, da, db)

	c := NewCompound("root", NewInt("x", 2))
	dc, err := c.Digest()
	require.NoError(t, err)
	require.NotEqual(t, da, dc)
}
