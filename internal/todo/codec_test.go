package todo

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/dmitrijs2005/todokeeper/internal/ledger"
)

func TestDiscriminator(t *testing.T) {
	sum := sha3.Sum256([]byte("account:OwnerCounter"))
	assert.Equal(t, sum[:8], counterDiscriminator[:])
	assert.NotEqual(t, counterDiscriminator, recordDiscriminator)
}

func TestCounterLayout(t *testing.T) {
	b := encodeCounter(0x0102030405060708, 254)
	require.Len(t, b, 17)
	assert.Equal(t, counterDiscriminator[:], b[:8])
	assert.Equal(t, uint64(0x0102030405060708), binary.LittleEndian.Uint64(b[8:16]))
	assert.Equal(t, byte(254), b[16])

	next, bump, err := decodeCounter(b)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), next)
	assert.Equal(t, uint8(254), bump)
}

func TestRecordLayout(t *testing.T) {
	b := encodeRecord("Buy milk", true)
	require.Len(t, b, 213)
	assert.Equal(t, recordDiscriminator[:], b[:8])
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(b[8:12]))
	assert.Equal(t, "Buy milk", string(b[12:20]))
	assert.Equal(t, byte(1), b[20])

	title, done, err := decodeRecord(b)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", title)
	assert.True(t, done)

	full := strings.Repeat("z", MaxTitleLen)
	title, done, err = decodeRecord(encodeRecord(full, false))
	require.NoError(t, err)
	assert.Equal(t, full, title)
	assert.False(t, done)
}

func TestDecodeCounter_Rejects(t *testing.T) {
	good := encodeCounter(1, 2)

	_, _, err := decodeCounter(good[:16])
	assert.ErrorIs(t, err, ledger.ErrCorruptSlot)

	wrongType := append([]byte(nil), good...)
	copy(wrongType, recordDiscriminator[:])
	_, _, err = decodeCounter(wrongType)
	assert.ErrorIs(t, err, ledger.ErrCorruptSlot)
}

func TestDecodeRecord_Rejects(t *testing.T) {
	mutate := func(f func(b []byte)) []byte {
		b := encodeRecord("abc", false)
		f(b)
		return b
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"short", encodeRecord("abc", false)[:100]},
		{"wrong discriminator", mutate(func(b []byte) { copy(b, counterDiscriminator[:]) })},
		{"title too long", mutate(func(b []byte) { binary.LittleEndian.PutUint32(b[8:], MaxTitleLen+1) })},
		{"bad completion byte", mutate(func(b []byte) { b[12+3] = 2 })},
		{"garbage in padding", mutate(func(b []byte) { b[RecordSize-1] = 7 })},
		{"invalid utf8", mutate(func(b []byte) { b[12] = 0xff })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeRecord(tt.data)
			assert.ErrorIs(t, err, ledger.ErrCorruptSlot)
		})
	}
}
