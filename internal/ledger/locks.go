package ledger

import (
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/identity"
)

// OwnerLocks hands out one mutex per owner and forgets it once unused.
// The zero value is ready to use.
type OwnerLocks struct {
	mu    sync.Mutex
	locks map[identity.Owner]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

// Lock blocks until the owner's mutex is held and returns its release func.
func (k *OwnerLocks) Lock(owner identity.Owner) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[identity.Owner]*refMutex)
	}
	m, ok := k.locks[owner]
	if !ok {
		m = &refMutex{}
		k.locks[owner] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, owner)
		}
		k.mu.Unlock()
	}
}

// Held reports how many owners currently have a lock entry.
func (k *OwnerLocks) Held() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
