package address

import (
	"encoding/binary"

	"github.com/dmitrijs2005/todokeeper/internal/identity"
	lru "github.com/hashicorp/golang-lru"
)

// Namespace tags separate the slot families of one owner.
type Namespace string

const (
	NamespaceCounter Namespace = "counter"
	NamespaceRecord  Namespace = "todo"
)

// DefaultCacheSize is used when NewDeriver gets a non-positive size.
const DefaultCacheSize = 4096

// Derived is an address together with its canonical bump.
type Derived struct {
	Address Address
	Bump    uint8
}

// Seeds builds the seed list for (namespace, owner, optional sequence).
// Record sequences are encoded as 8-byte little endian.
func Seeds(ns Namespace, owner identity.Owner, seq *uint64) [][]byte {
	seeds := [][]byte{owner.Bytes(), []byte(ns)}
	if seq != nil {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], *seq)
		seeds = append(seeds, b[:])
	}
	return seeds
}

// Deriver memoizes bump searches. Safe for concurrent use.
type Deriver struct {
	cache *lru.Cache
}

func NewDeriver(cacheSize int) (*Deriver, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	c, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Deriver{cache: c}, nil
}

// Derive returns the address and bump for (ns, owner, seq).
func (d *Deriver) Derive(ns Namespace, owner identity.Owner, seq *uint64) (Derived, error) {
	seeds := Seeds(ns, owner, seq)
	key := cacheKey(seeds)
	if v, ok := d.cache.Get(key); ok {
		return v.(Derived), nil
	}
	a, bump, err := FindAddress(seeds)
	if err != nil {
		return Derived{}, err
	}
	out := Derived{Address: a, Bump: bump}
	d.cache.Add(key, out)
	return out, nil
}

// Counter derives the owner's counter slot.
func (d *Deriver) Counter(owner identity.Owner) (Derived, error) {
	return d.Derive(NamespaceCounter, owner, nil)
}

// Record derives the slot of the owner's record seq.
func (d *Deriver) Record(owner identity.Owner, seq uint64) (Derived, error) {
	return d.Derive(NamespaceRecord, owner, &seq)
}

func cacheKey(seeds [][]byte) string {
	var n int
	for _, s := range seeds {
		n += 1 + len(s)
	}
	b := make([]byte, 0, n)
	for _, s := range seeds {
		b = append(b, byte(len(s)))
		b = append(b, s...)
	}
	return string(b)
}
