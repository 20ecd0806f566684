package memory

// Width tags the cell width a component variant is specialized over.
type Width int

const (
	U8 Width = iota
	U16
	U32
	U64
)

func (w Width) String() string {
	switch w {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	}
	return "u?"
}

// Variant is the tagged union of width-specialized memories. Exactly
// the field matching Width is set; attaching a variant to a component
// of another width is a configuration error.
type Variant struct {
	Width Width
	U8    Memory[uint8]
	U16   Memory[uint16]
	U32   Memory[uint32]
	U64   Memory[uint64]
}

// V8 wraps a byte-wide memory as a variant.
func V8(m Memory[uint8]) Variant {
	return Variant{Width: U8, U8: m}
}

// V16 wraps a 16-bit memory as a variant.
func V16(m Memory[uint16]) Variant {
	return Variant{Width: U16, U16: m}
}

// V32 wraps a 32-bit memory as a variant.
func V32(m Memory[uint32]) Variant {
	return Variant{Width: U32, U32: m}
}

// V64 wraps a 64-bit memory as a variant.
func V64(m Memory[uint64]) Variant {
	return Variant{Width: U64, U64: m}
}

// Name returns the configuration name of the wrapped memory.
func (v Variant) Name() string {
	switch v.Width {
	case U8:
		return v.U8.Name()
	case U16:
		return v.U16.Name()
	case U32:
		return v.U32.Name()
	case U64:
		return v.U64.Name()
	}
	return ""
}

// SetName names the wrapped memory.
func (v Variant) SetName(name string) {
	switch v.Width {
	case U8:
		v.U8.SetName(name)
	case U16:
		v.U16.SetName(name)
	case U32:
		v.U32.SetName(name)
	case U64:
		v.U64.SetName(name)
	}
}
