package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/todokeeper/internal/identity"
)

func TestOwnerLocks_ReleasesEntries(t *testing.T) {
	var k OwnerLocks
	owner := identity.Owner{1}

	unlock := k.Lock(owner)
	assert.Equal(t, 1, k.Held())
	unlock()
	assert.Equal(t, 0, k.Held())
}

func TestOwnerLocks_OtherOwnersDoNotBlock(t *testing.T) {
	var k OwnerLocks
	unlockA := k.Lock(identity.Owner{1})
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := k.Lock(identity.Owner{2})
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for a different owner blocked")
	}
}

func TestOwnerLocks_SameOwnerExcludes(t *testing.T) {
	var k OwnerLocks
	owner := identity.Owner{7}

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock(owner)
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, k.Held())
}
