package todo

import (
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/crypto/sha3"

	"github.com/dmitrijs2005/todokeeper/internal/ledger"
)

// Slot layouts. Every slot opens with an 8-byte type discriminator.
//
//	counter: disc | next_index u64 LE | bump u8
//	record:  disc | title_len u32 LE | title | completed u8 | zero padding
//
// Records are allocated at their maximum size so an update never resizes.
const (
	discriminatorSize = 8
	CounterSize       = discriminatorSize + 8 + 1
	RecordSize        = discriminatorSize + 4 + MaxTitleLen + 1
)

var (
	counterDiscriminator = discriminator("OwnerCounter")
	recordDiscriminator  = discriminator("Todo")
)

func discriminator(typeName string) [discriminatorSize]byte {
	sum := sha3.Sum256([]byte("account:" + typeName))
	var d [discriminatorSize]byte
	copy(d[:], sum[:])
	return d
}

func encodeCounter(next uint64, bump uint8) []byte {
	b := make([]byte, CounterSize)
	copy(b, counterDiscriminator[:])
	binary.LittleEndian.PutUint64(b[discriminatorSize:], next)
	b[discriminatorSize+8] = bump
	return b
}

func decodeCounter(b []byte) (next uint64, bump uint8, err error) {
	if len(b) != CounterSize || [discriminatorSize]byte(b[:discriminatorSize]) != counterDiscriminator {
		return 0, 0, ledger.ErrCorruptSlot
	}
	next = binary.LittleEndian.Uint64(b[discriminatorSize:])
	bump = b[discriminatorSize+8]
	return next, bump, nil
}

func encodeRecord(title string, completed bool) []byte {
	b := make([]byte, RecordSize)
	copy(b, recordDiscriminator[:])
	off := discriminatorSize
	binary.LittleEndian.PutUint32(b[off:], uint32(len(title)))
	off += 4
	off += copy(b[off:], title)
	if completed {
		b[off] = 1
	}
	return b
}

func decodeRecord(b []byte) (title string, completed bool, err error) {
	if len(b) != RecordSize || [discriminatorSize]byte(b[:discriminatorSize]) != recordDiscriminator {
		return "", false, ledger.ErrCorruptSlot
	}
	off := discriminatorSize
	n := int(binary.LittleEndian.Uint32(b[off:]))
	off += 4
	if n > MaxTitleLen {
		return "", false, ledger.ErrCorruptSlot
	}
	raw := b[off : off+n]
	if !utf8.Valid(raw) {
		return "", false, ledger.ErrCorruptSlot
	}
	off += n
	switch b[off] {
	case 0:
	case 1:
		completed = true
	default:
		return "", false, ledger.ErrCorruptSlot
	}
	for _, c := range b[off+1:] {
		if c != 0 {
			return "", false, ledger.ErrCorruptSlot
		}
	}
	return string(raw), completed, nil
}
