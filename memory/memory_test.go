package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcornwell/ts-sim/config"
)

func TestEmpty_DeniesEverything(t *testing.T) {
	assert := assert.New(t)

	m := NewEmpty[uint8](1024)
	v, ok := m.Read(0)
	assert.False(ok)
	assert.Equal(uint8(0), v)
	assert.False(m.Write(0x5a, 0))

	_, err := m.Get(0)
	assert.ErrorIs(err, ErrAccess)
	assert.ErrorIs(m.Set(0x5a, 0), ErrAccess)
}

func TestRAM_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	m := NewRAM[uint8](256, 0)
	assert.True(m.Write(0x42, 10))
	v, ok := m.Read(10)
	assert.True(ok)
	assert.Equal(uint8(0x42), v)
}

func TestRAM_Bounds(t *testing.T) {
	assert := assert.New(t)

	m := NewRAM[uint8](256, 0)
	assert.True(m.Write(1, 255))
	v, ok := m.Read(255)
	assert.True(ok)
	assert.Equal(uint8(1), v)

	v, ok = m.Read(256)
	assert.False(ok)
	assert.Equal(uint8(0), v)
	assert.False(m.Write(1, 256))

	_, err := m.Get(256)
	assert.ErrorIs(err, ErrAccess)
	assert.ErrorIs(m.Set(1, 256), ErrAccess)
}

func TestRAM_GetSet(t *testing.T) {
	assert := assert.New(t)

	m := NewRAM[uint8](16, 0)
	assert.NoError(m.Set(0x99, 3))
	v, err := m.Get(3)
	assert.NoError(err)
	assert.Equal(uint8(0x99), v)
}

func TestRAM_Load(t *testing.T) {
	assert := assert.New(t)

	m := NewRAM[uint8](16, 0)
	assert.NoError(m.Load([]uint8{1, 2, 3}, 4))
	v, _ := m.Read(5)
	assert.Equal(uint8(2), v)
	assert.ErrorIs(m.Load(make([]uint8, 20), 0), ErrAccess)
}

func TestROM_DiscardsWrites(t *testing.T) {
	assert := assert.New(t)

	m := NewROM[uint8](16, 0)
	require.NoError(t, m.Load([]uint8{0xaa, 0xbb}, 0))

	// The fast path reports success but changes nothing.
	assert.True(m.Write(0x11, 0))
	v, ok := m.Read(0)
	assert.True(ok)
	assert.Equal(uint8(0xaa), v)
	assert.False(m.Write(0x11, 16))

	// The checking path refuses.
	assert.ErrorIs(m.Set(0x11, 0), ErrReadOnly)
	assert.ErrorIs(m.Set(0x11, 16), ErrAccess)

	v, err := m.Get(1)
	assert.NoError(err)
	assert.Equal(uint8(0xbb), v)
}

func TestFixed_Forwarding(t *testing.T) {
	assert := assert.New(t)

	ctl := NewFixed[uint8](64 * 1024)
	ram := NewRAM[uint8](0x1000, 0x2000)
	require.NoError(t, ctl.AddChild(ram))

	assert.Equal(uint(0x1000), ctl.Size())
	assert.Equal(uint(0x2000), ctl.Base())

	assert.True(ctl.Write(0x5a, 0x2004))
	v, ok := ctl.Read(0x2004)
	assert.True(ok)
	assert.Equal(uint8(0x5a), v)

	// Below the base there is nothing.
	_, ok = ctl.Read(0x1fff)
	assert.False(ok)
	_, err := ctl.Get(0x1fff)
	assert.ErrorIs(err, ErrAccess)
}

func TestFixed_NoChild(t *testing.T) {
	assert := assert.New(t)

	ctl := NewFixed[uint8](1024)
	_, ok := ctl.Read(0)
	assert.False(ok)
}

func TestArray_ChunkSizeMustBePowerOfTwo(t *testing.T) {
	assert := assert.New(t)

	_, err := NewArray[uint8](64*1024, 3000)
	assert.ErrorIs(err, ErrChunkSize)
	_, err = NewArray[uint8](64*1024, 0)
	assert.ErrorIs(err, ErrChunkSize)
}

// Two 32K regions route by 4K chunks; each access lands in its own
// region with the region base subtracted.
func TestArray_Routing(t *testing.T) {
	assert := assert.New(t)

	ctl, err := NewArray[uint8](64*1024, 4096)
	require.NoError(t, err)
	require.NoError(t, ctl.AddChild(NewRAM[uint8](0x8000, 0x0000)))
	require.NoError(t, ctl.AddChild(NewRAM[uint8](0x8000, 0x8000)))

	assert.True(ctl.Write(0x5a, 0x0001))
	assert.True(ctl.Write(0xa5, 0x8001))

	v, ok := ctl.Read(0x0001)
	assert.True(ok)
	assert.Equal(uint8(0x5a), v)

	v, ok = ctl.Read(0x8001)
	assert.True(ok)
	assert.Equal(uint8(0xa5), v)

	// A middle address still lands in the first region.
	v, ok = ctl.Read(0x4000)
	assert.True(ok)
	assert.Equal(uint8(0), v)
}

func TestArray_UnmappedChunk(t *testing.T) {
	assert := assert.New(t)

	ctl, err := NewArray[uint8](64*1024, 4096)
	require.NoError(t, err)
	require.NoError(t, ctl.AddChild(NewRAM[uint8](0x1000, 0x0000)))

	v, ok := ctl.Read(0x2000)
	assert.False(ok)
	assert.Equal(uint8(0), v)
	assert.False(ctl.Write(1, 0x2000))
	_, errGet := ctl.Get(0x2000)
	assert.ErrorIs(errGet, ErrAccess)
}

func TestArray_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	ctl, err := NewArray[uint8](0x1000, 256)
	require.NoError(t, err)
	require.NoError(t, ctl.AddChild(NewRAM[uint8](0x1000, 0)))

	v, ok := ctl.Read(0xfff)
	assert.True(ok)
	assert.Equal(uint8(0), v)
	_, ok = ctl.Read(0x1000)
	assert.False(ok)
}

func TestArray_OverlapFlagged(t *testing.T) {
	assert := assert.New(t)

	ctl, err := NewArray[uint8](64*1024, 4096)
	require.NoError(t, err)
	require.NoError(t, ctl.AddChild(NewRAM[uint8](0x8000, 0x0000)))

	second := NewRAM[uint8](0x8000, 0x4000)
	second.SetName("high")
	err = ctl.AddChild(second)
	assert.Error(err)
	assert.IsType(ErrOverlap{}, err)

	// Last writer wins in the table.
	assert.True(ctl.Write(0x77, 0x4000))
	v, _ := second.Read(0)
	assert.Equal(uint8(0x77), v)
}

func TestArray_ChildTooBig(t *testing.T) {
	assert := assert.New(t)

	ctl, err := NewArray[uint8](0x1000, 256)
	require.NoError(t, err)
	assert.ErrorIs(ctl.AddChild(NewRAM[uint8](0x2000, 0)), ErrTooBig)
}

func TestRAM_SharedOption(t *testing.T) {
	assert := assert.New(t)

	m := NewRAM[uint8](16, 0)
	opts := m.Options()
	assert.NoError(opts.Apply(nil))
	assert.True(m.Write(5, 1))
	v, _ := m.Read(1)
	assert.Equal(uint8(5), v)
}

// Every memory module recognizes the base option.
func TestOptions_Base(t *testing.T) {
	assert := assert.New(t)

	for _, m := range []Memory[uint8]{
		NewRAM[uint8](16, 0),
		NewROM[uint8](16, 0),
		NewEmpty[uint8](16),
		NewFixed[uint8](16),
	} {
		err := m.Options().Apply([]config.Option{
			{Name: "base", Kind: config.ValueNumber, Num: 0x100},
		})
		assert.NoError(err)
		assert.Equal(uint(0x100), m.Base())
	}
}

func TestWidth_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("u8", U8.String())
	assert.Equal("u16", U16.String())
	assert.Equal("u32", U32.String())
	assert.Equal("u64", U64.String())
}

func TestVariant_Name(t *testing.T) {
	assert := assert.New(t)

	m := NewRAM[uint16](16, 0)
	v := V16(m)
	v.SetName("wide")
	assert.Equal("wide", v.Name())
	assert.Equal(U16, v.Width)
}
