package memory

import (
	"sync"

	"github.com/rcornwell/ts-sim/config"
)

// RAM is a flat read-write cell buffer.
type RAM[T Cell] struct {
	region
	shared bool
	mu     sync.Mutex
	data   []T
}

// NewRAM creates a writable region of size cells at the given base.
func NewRAM[T Cell](size, base uint) *RAM[T] {
	m := &RAM[T]{data: make([]T, size)}
	m.size = size
	m.base = base
	return m
}

// Options adds the shared flag, which serializes access for multi-CPU
// systems, on top of the common memory options.
func (m *RAM[T]) Options() *config.Options {
	opts := m.region.Options()
	opts.Bool("shared", "Serialize access between CPUs", &m.shared, m.shared)
	return opts
}

func (m *RAM[T]) AddChild(Memory[T]) error {
	return ErrNoChildren
}

func (m *RAM[T]) Read(index uint) (T, bool) {
	if index >= m.size {
		var zero T
		return zero, false
	}
	if m.shared {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	return m.data[index], true
}

func (m *RAM[T]) Write(val T, index uint) bool {
	if index >= m.size {
		return false
	}
	if m.shared {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	m.data[index] = val
	return true
}

func (m *RAM[T]) Get(index uint) (T, error) {
	if index >= m.size {
		var zero T
		return zero, ErrAccess
	}
	return m.data[index], nil
}

func (m *RAM[T]) Set(val T, index uint) error {
	if index >= m.size {
		return ErrAccess
	}
	m.data[index] = val
	return nil
}

// Load splats raw cells into the buffer starting at offset. Used by the
// configuration load directive; unlike Set it works on ROM as well.
func (m *RAM[T]) Load(data []T, offset uint) error {
	if offset+uint(len(data)) > m.size {
		return ErrAccess
	}
	copy(m.data[offset:], data)
	return nil
}
