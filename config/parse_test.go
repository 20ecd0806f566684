package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_System(t *testing.T) {
	assert := assert.New(t)

	file, err := ParseString("system i8080")
	require.NoError(t, err)
	assert.Equal("i8080", file.System)
}

func TestParse_SystemMissing(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseString("cpu i8080")
	assert.ErrorIs(err, ErrSystemFirst)
}

func TestParse_SystemTwice(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseString("system i8080 system i8080")
	assert.ErrorIs(err, ErrSystemOnce)
}

func TestParse_CPU(t *testing.T) {
	assert := assert.New(t)

	file, err := ParseString("system i8080 cpu i8085:main (pagesize=4k, trace)")
	require.NoError(t, err)
	require.Len(t, file.CPUs, 1)
	stmt := file.CPUs[0]
	assert.Equal("i8085", stmt.Model)
	assert.Equal("main", stmt.Name)
	assert.Equal([]Option{
		{Name: "pagesize", Kind: ValueNumber, Num: 4096},
		{Name: "trace"},
	}, stmt.Options)
}

func TestParse_Memory(t *testing.T) {
	assert := assert.New(t)

	file, err := ParseString(`
		system i8080
		cpu i8080:cpu0
		memory ram:low = cpu0 32k
		memory ram:high 32k, 0x8000
		memory rom:boot 4k, 0xf000 load = "boot.bin"
	`)
	require.NoError(t, err)
	require.Len(t, file.Memories, 3)

	low := file.Memories[0]
	assert.Equal("ram", low.Model)
	assert.Equal("low", low.Name)
	assert.Equal([]string{"cpu0"}, low.CPUs)
	assert.Equal(uint(32*1024), low.Size)
	assert.False(low.HasBase)

	high := file.Memories[1]
	assert.Empty(high.CPUs)
	assert.Equal(uint(0x8000), high.Base)
	assert.True(high.HasBase)

	boot := file.Memories[2]
	assert.Equal("rom", boot.Model)
	assert.Equal(uint(0xf000), boot.Base)
	assert.Equal("boot.bin", boot.Load)
}

func TestParse_MemoryNoSize(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseString("system i8080 memory ram:low")
	assert.ErrorIs(err, ErrMemSize)
}

func TestParse_Device(t *testing.T) {
	assert := assert.New(t)

	file, err := ParseString(`
		system i8080
		device 2651:con = 0x10, 4 (addr = 0x10) units = 2
	`)
	require.NoError(t, err)
	require.Len(t, file.Devices, 1)
	dev := file.Devices[0]
	assert.Equal("2651", dev.Model)
	assert.Equal("con", dev.Name)
	assert.True(dev.HasAddress)
	assert.Equal(uint(0x10), dev.Address)
	assert.True(dev.HasSize)
	assert.Equal(uint(4), dev.Size)
	assert.Equal(uint(2), dev.Units)
	assert.Equal([]Option{{Name: "addr", Kind: ValueNumber, Num: 0x10}}, dev.Options)
}

func TestParse_UnknownKeyword(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseString("system i8080 bogus")
	assert.Error(err)
	assert.IsType(ErrUnknownKey(""), err)
}

func TestParse_CommentsAndNewlines(t *testing.T) {
	assert := assert.New(t)

	file, err := ParseString(`
		# a full machine
		system i8080   # model line
		cpu i8080
		memory
			ram
			64k
	`)
	require.NoError(t, err)
	assert.Equal("i8080", file.System)
	require.Len(t, file.CPUs, 1)
	require.Len(t, file.Memories, 1)
	assert.Equal(uint(64*1024), file.Memories[0].Size)
}
