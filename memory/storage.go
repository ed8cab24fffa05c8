// Package memory provides the flat, word-addressed backing memory that sits
// below the cache.
package memory

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by the errors that Storage returns when an
// address is not below the storage capacity.
var ErrOutOfRange = errors.New("accessing address beyond the storage capacity")

// A Storage keeps the words of the simulated machine.
//
// The storage is managed in units, similar to pages. Units that have never
// been touched by Read or Write are not allocated and read as zero.
type Storage struct {
	unitSize uint64
	capacity uint64
	data     map[uint64][]int32
}

// NewStorage creates a storage that holds capacity words.
func NewStorage(capacity uint64) *Storage {
	storage := new(Storage)

	storage.unitSize = 4096
	storage.capacity = capacity
	storage.data = make(map[uint64][]int32)

	return storage
}

// Capacity returns the number of words the storage can hold.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

func (s *Storage) parseAddress(addr uint64) (baseAddr, inUnitAddr uint64) {
	inUnitAddr = addr % s.unitSize
	baseAddr = addr - inUnitAddr

	return
}

func (s *Storage) mustBeInRange(addr uint64) error {
	if addr >= s.capacity {
		return fmt.Errorf("%w: address %d, capacity %d",
			ErrOutOfRange, addr, s.capacity)
	}

	return nil
}

// Read returns the word at addr.
func (s *Storage) Read(addr uint64) (int32, error) {
	if err := s.mustBeInRange(addr); err != nil {
		return 0, err
	}

	baseAddr, inUnitAddr := s.parseAddress(addr)

	unit, ok := s.data[baseAddr]
	if !ok {
		return 0, nil
	}

	return unit[inUnitAddr], nil
}

// Write stores data at addr.
func (s *Storage) Write(addr uint64, data int32) error {
	if err := s.mustBeInRange(addr); err != nil {
		return err
	}

	baseAddr, inUnitAddr := s.parseAddress(addr)

	unit, ok := s.data[baseAddr]
	if !ok {
		unit = make([]int32, s.unitSize)
		s.data[baseAddr] = unit
	}

	unit[inUnitAddr] = data

	return nil
}
