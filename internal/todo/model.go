package todo

import (
	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
)

// Counter is an owner's allocation state.
type Counter struct {
	Owner   identity.Owner  `json:"owner"`
	Address address.Address `json:"address"`
	// NextIndex is the sequence number the next create will use.
	NextIndex uint64 `json:"next_index"`
	// Bump reconstructs Address from the owner's counter seeds.
	Bump uint8  `json:"bump"`
	Rent uint64 `json:"rent"`
}

// Record is one todo.
type Record struct {
	Owner     identity.Owner  `json:"owner"`
	Seq       uint64          `json:"seq"`
	Address   address.Address `json:"address"`
	Bump      uint8           `json:"bump"`
	Title     string          `json:"title"`
	Completed bool            `json:"completed"`
	Rent      uint64          `json:"rent"`
}
