package cache

import "fmt"

// The largest geometry a cache can be built with.
const (
	MaxNumBlocks = 256
	MaxBlockSize = 256
)

// A ConfigError reports a cache geometry that cannot be built.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

// An InvariantError is raised, as a panic, when the cache cannot find any
// block for a miss. It means the bookkeeping of the cache is broken.
type InvariantError struct {
	Address uint64
	SetID   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("no block found for replacement in set %d (address %d)",
		e.SetID, e.Address)
}
