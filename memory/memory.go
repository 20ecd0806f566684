// Package memory provides the address-space building blocks of a
// simulated system. A Memory is a region of cells of one fixed width.
// Leaf regions (RAM, ROM) hold cells; controllers (Fixed, Array) route
// accesses to leaf regions; Empty denies every access and stands in for
// unmapped space.
package memory

import (
	"github.com/rcornwell/ts-sim/config"
)

// Cell is the set of widths a memory region can be built over.
type Cell interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Memory is the uniform interface to every region and controller.
//
// Read and Write are the engine's fast path: they never fail loudly,
// an out-of-range access reads as zero and reports false. Get and Set
// are the checking variant for tools; they return ErrAccess where Read
// and Write report false.
type Memory[T Cell] interface {
	// Name returns the configuration name of the region.
	Name() string
	SetName(name string)

	// Size returns the region size in cells.
	Size() uint
	// Base returns the first address of the region within its parent.
	Base() uint
	SetBase(base uint)

	// AddChild attaches a sub-region to a controller.
	AddChild(m Memory[T]) error

	// Options returns the configuration options the region accepts.
	Options() *config.Options

	Read(index uint) (T, bool)
	Write(val T, index uint) bool

	Get(index uint) (T, error)
	Set(val T, index uint) error
}

// region carries the state common to every memory module.
type region struct {
	name string
	size uint
	base uint
}

func (r *region) Name() string {
	return r.name
}

func (r *region) SetName(name string) {
	r.name = name
}

func (r *region) Size() uint {
	return r.size
}

func (r *region) Base() uint {
	return r.base
}

func (r *region) SetBase(base uint) {
	r.base = base
}

// Options returns the option set every memory module recognizes.
func (r *region) Options() *config.Options {
	opts := config.NewOptions("Memory options")
	opts.Uint("base", "Base location of memory", &r.base, r.base)
	return opts
}

// Empty is a region that always returns no access. The Array controller
// uses it as the sentinel for unmapped chunks.
type Empty[T Cell] struct {
	region
}

// NewEmpty creates an access-denying region of the given size.
func NewEmpty[T Cell](size uint) *Empty[T] {
	m := &Empty[T]{}
	m.size = size
	return m
}

func (m *Empty[T]) AddChild(Memory[T]) error {
	return ErrNoChildren
}

func (m *Empty[T]) Read(index uint) (T, bool) {
	var zero T
	return zero, false
}

func (m *Empty[T]) Write(val T, index uint) bool {
	return false
}

func (m *Empty[T]) Get(index uint) (T, error) {
	var zero T
	return zero, ErrAccess
}

func (m *Empty[T]) Set(val T, index uint) error {
	return ErrAccess
}
