// Package cpu defines the interface every simulated processor
// implements and the width-tagged variant the system assembler binds
// through.
package cpu

import (
	"github.com/rcornwell/ts-sim/config"
	"github.com/rcornwell/ts-sim/io"
	"github.com/rcornwell/ts-sim/memory"
)

// CPU is one simulated processor of a fixed cell width.
//
// Init allocates the processor's default memory controller and, for
// processors with a port space, a default IO controller; both happen
// before regions and devices are bound. Step executes one instruction
// and returns the simulated time consumed. A Step is atomic from the
// outside; Stop is noticed at the next Step boundary.
type CPU[T memory.Cell] interface {
	Name() string
	SetName(name string)

	PC() uint
	SetPC(pc uint)

	Running() bool

	// AddMemory attaches a region, delegating to the current memory
	// controller when one exists.
	AddMemory(m memory.Memory[T]) error
	SetMemory(m memory.Memory[T])
	Memory() memory.Memory[T]

	// AddIO replaces the processor's IO controller.
	AddIO(ctrl io.IO[T])
	IO() io.IO[T]
	// DefaultIO returns the controller Init pre-attached, or nil for
	// processors without a port space.
	DefaultIO() io.IO[T]

	Options() *config.Options

	Init() error
	Start()
	Reset()
	Stop()
	Shutdown()

	Step() uint64
	Run()
	Trace()
}

// Variant is the tagged union of width-specialized processors.
type Variant struct {
	Width memory.Width
	U8    CPU[uint8]
	U16   CPU[uint16]
	U32   CPU[uint32]
	U64   CPU[uint64]
}

// V8 wraps a byte-wide processor as a variant.
func V8(c CPU[uint8]) Variant {
	return Variant{Width: memory.U8, U8: c}
}

// V16 wraps a 16-bit processor as a variant.
func V16(c CPU[uint16]) Variant {
	return Variant{Width: memory.U16, U16: c}
}

// V32 wraps a 32-bit processor as a variant.
func V32(c CPU[uint32]) Variant {
	return Variant{Width: memory.U32, U32: c}
}

// V64 wraps a 64-bit processor as a variant.
func V64(c CPU[uint64]) Variant {
	return Variant{Width: memory.U64, U64: c}
}

// Name returns the configuration name of the wrapped processor.
func (v Variant) Name() string {
	switch v.Width {
	case memory.U8:
		return v.U8.Name()
	case memory.U16:
		return v.U16.Name()
	case memory.U32:
		return v.U32.Name()
	case memory.U64:
		return v.U64.Name()
	}
	return ""
}

// SetName names the wrapped processor.
func (v Variant) SetName(name string) {
	switch v.Width {
	case memory.U8:
		v.U8.SetName(name)
	case memory.U16:
		v.U16.SetName(name)
	case memory.U32:
		v.U32.SetName(name)
	case memory.U64:
		v.U64.SetName(name)
	}
}

// Options returns the option set of the wrapped processor.
func (v Variant) Options() *config.Options {
	switch v.Width {
	case memory.U8:
		return v.U8.Options()
	case memory.U16:
		return v.U16.Options()
	case memory.U32:
		return v.U32.Options()
	case memory.U64:
		return v.U64.Options()
	}
	return nil
}
