package address

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOwner(b byte) identity.Owner {
	var o identity.Owner
	for i := range o {
		o[i] = b
	}
	return o
}

func TestFindAddress_DeterministicAndOffCurve(t *testing.T) {
	seeds := [][]byte{[]byte("owner"), []byte("counter")}

	a1, b1, err := FindAddress(seeds)
	require.NoError(t, err)
	a2, b2, err := FindAddress(seeds)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.False(t, OnCurve(a1))
	assert.True(t, Verify(a1, seeds, b1))
}

func TestFindAddress_CanonicalBumpIsHighestOffCurve(t *testing.T) {
	seeds := [][]byte{[]byte("some"), []byte("seeds")}
	_, bump, err := FindAddress(seeds)
	require.NoError(t, err)

	for b := 255; b > int(bump); b-- {
		_, err := CreateAddress(seeds, uint8(b))
		assert.ErrorIs(t, err, ErrOnCurve, "bump %d above canonical must be on curve", b)
	}
}

func TestCreateAddress_SeedLimits(t *testing.T) {
	_, err := CreateAddress([][]byte{bytes.Repeat([]byte{1}, MaxSeedLength+1)}, 255)
	assert.ErrorIs(t, err, ErrMaxSeedLength)

	many := make([][]byte, MaxSeeds+1)
	_, _, err = FindAddress(many)
	assert.ErrorIs(t, err, ErrMaxSeeds)
}

func TestSeeds_LengthPrefixAvoidsAmbiguity(t *testing.T) {
	a, _, err := FindAddress([][]byte{[]byte("ab"), []byte("c")})
	require.NoError(t, err)
	b, _, err := FindAddress([][]byte{[]byte("a"), []byte("bc")})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDeriver_NamespacesAndSequencesDoNotCollide(t *testing.T) {
	d, err := NewDeriver(16)
	require.NoError(t, err)

	owner := testOwner(7)
	other := testOwner(8)

	seen := map[Address]string{}
	add := func(label string, got Derived) {
		if prev, dup := seen[got.Address]; dup {
			t.Fatalf("collision between %s and %s", prev, label)
		}
		seen[got.Address] = label
	}

	c, err := d.Counter(owner)
	require.NoError(t, err)
	add("counter/owner", c)

	c2, err := d.Counter(other)
	require.NoError(t, err)
	add("counter/other", c2)

	for seq := uint64(0); seq < 64; seq++ {
		r, err := d.Record(owner, seq)
		require.NoError(t, err)
		add("record/owner", r)

		r2, err := d.Record(other, seq)
		require.NoError(t, err)
		add("record/other", r2)
	}
}

func TestDeriver_CachedMatchesUncached(t *testing.T) {
	d, err := NewDeriver(0)
	require.NoError(t, err)
	owner := testOwner(3)

	first, err := d.Record(owner, 42)
	require.NoError(t, err)
	second, err := d.Record(owner, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	seq := uint64(42)
	a, bump, err := FindAddress(Seeds(NamespaceRecord, owner, &seq))
	require.NoError(t, err)
	assert.Equal(t, Derived{Address: a, Bump: bump}, first)
}

func TestParse(t *testing.T) {
	d, err := NewDeriver(1)
	require.NoError(t, err)
	c, err := d.Counter(testOwner(1))
	require.NoError(t, err)

	p, err := Parse(c.Address.String())
	require.NoError(t, err)
	assert.Equal(t, c.Address, p)

	_, err = Parse("abc")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = FromBytes([]byte{1})
	assert.ErrorIs(t, err, ErrInvalid)
}
