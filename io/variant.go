package io

import (
	"github.com/rcornwell/ts-sim/memory"
)

// Variant is the tagged union of width-specialized IO controllers.
type Variant struct {
	Width memory.Width
	U8    IO[uint8]
	U16   IO[uint16]
	U32   IO[uint32]
	U64   IO[uint64]
}

// V8 wraps a byte-wide controller as a variant.
func V8(io IO[uint8]) Variant {
	return Variant{Width: memory.U8, U8: io}
}

// V16 wraps a 16-bit controller as a variant.
func V16(io IO[uint16]) Variant {
	return Variant{Width: memory.U16, U16: io}
}

// V32 wraps a 32-bit controller as a variant.
func V32(io IO[uint32]) Variant {
	return Variant{Width: memory.U32, U32: io}
}

// V64 wraps a 64-bit controller as a variant.
func V64(io IO[uint64]) Variant {
	return Variant{Width: memory.U64, U64: io}
}

// Name returns the configuration name of the wrapped controller.
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

// SetName names the wrapped controller.
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

// DevVariant is the tagged union of width-specialized devices.
type DevVariant struct {
	Width memory.Width
	U8    Device[uint8]
	U16   Device[uint16]
	U32   Device[uint32]
	U64   Device[uint64]
}

// DV8 wraps a byte-wide device as a variant.
func DV8(d Device[uint8]) DevVariant {
	return DevVariant{Width: memory.U8, U8: d}
}

// DV16 wraps a 16-bit device as a variant.
func DV16(d Device[uint16]) DevVariant {
	return DevVariant{Width: memory.U16, U16: d}
}

// DV32 wraps a 32-bit device as a variant.
func DV32(d Device[uint32]) DevVariant {
	return DevVariant{Width: memory.U32, U32: d}
}

// DV64 wraps a 64-bit device as a variant.
func DV64(d Device[uint64]) DevVariant {
	return DevVariant{Width: memory.U64, U64: d}
}

// Name returns the configuration name of the wrapped device.
func (v DevVariant) Name() string {
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

// SetName names the wrapped device.
func (v DevVariant) SetName(name string) {
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
