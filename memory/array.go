package memory

import (
	"math/bits"
)

// Array is a controller that routes accesses through a table of chunk
// pointers. The address space is divided into power-of-two chunks and
// each chunk maps to exactly one child region, or to the empty
// sentinel when unmapped.
type Array[T Cell] struct {
	region
	shift uint
	empty *Empty[T]
	table []Memory[T]
}

// NewArray creates a routing controller over size cells with the given
// chunk granularity. The chunk size must be a power of two.
func NewArray[T Cell](size, chunkSize uint) (*Array[T], error) {
	if chunkSize == 0 || chunkSize&(chunkSize-1) != 0 {
		return nil, ErrChunkSize
	}
	m := &Array[T]{
		shift: uint(bits.TrailingZeros(chunkSize)),
		empty: NewEmpty[T](size),
	}
	m.size = size
	m.table = make([]Memory[T], size/chunkSize)
	for i := range m.table {
		m.table[i] = m.empty
	}
	return m, nil
}

// Base of an Array controller is always zero.
func (m *Array[T]) Base() uint {
	return 0
}

// SetBase is a no-op for the Array controller.
func (m *Array[T]) SetBase(uint) {
}

// AddChild installs a region into every chunk its [base, base+size)
// range covers. Chunks already claimed by another region are
// overwritten, last writer wins, and ErrOverlap is returned so the
// loader can reject the configuration.
func (m *Array[T]) AddChild(child Memory[T]) error {
	b := child.Base() >> m.shift
	t := (child.Size() >> m.shift) + b
	if t > uint(len(m.table)) {
		return ErrTooBig
	}
	var err error
	for i := b; i < t; i++ {
		if m.table[i] != m.empty {
			err = ErrOverlap{Name: child.Name(), Base: i << m.shift}
		}
		m.table[i] = child
	}
	return err
}

func (m *Array[T]) Read(index uint) (T, bool) {
	if index >= m.size {
		var zero T
		return zero, false
	}
	child := m.table[index>>m.shift]
	return child.Read(index - child.Base())
}

func (m *Array[T]) Write(val T, index uint) bool {
	if index >= m.size {
		return false
	}
	child := m.table[index>>m.shift]
	return child.Write(val, index-child.Base())
}

func (m *Array[T]) Get(index uint) (T, error) {
	if index >= m.size {
		var zero T
		return zero, ErrAccess
	}
	child := m.table[index>>m.shift]
	return child.Get(index - child.Base())
}

func (m *Array[T]) Set(val T, index uint) error {
	if index >= m.size {
		return ErrAccess
	}
	child := m.table[index>>m.shift]
	return child.Set(val, index-child.Base())
}
