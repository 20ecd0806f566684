package i8080

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcornwell/ts-sim/io"
)

// bdos services CP/M style console calls through port 1: function 2
// prints the character in E, function 9 prints the $-terminated string
// at D:E straight out of memory.
type bdos struct {
	io.Base[uint8]
	cpu *Core
	out strings.Builder
}

func newBdos(cpu *Core) *bdos {
	d := &bdos{cpu: cpu}
	d.Base = io.NewBase[uint8](1, 1)
	return d
}

func (d *bdos) Output(val uint8, port uint) bool {
	if port != 1 {
		return false
	}
	mem := d.Controller().Memory()
	switch d.cpu.regs[C] {
	case 9:
		addr := d.cpu.pair(DE)
		for {
			ch, ok := mem.Read(uint(addr))
			if !ok || ch == '$' {
				break
			}
			d.out.WriteByte(ch)
			addr++
		}
	case 2:
		d.out.WriteByte(d.cpu.regs[E] & 0x7f)
	}
	return true
}

func TestBdos_StringCall(t *testing.T) {
	assert := assert.New(t)

	// MVI C,9 / LXI D,200h / OUT 1 / HLT with "OK$" at 200h.
	c, ram := testCPU(t, I8080, []uint8{
		0x0e, 0x09,
		0x11, 0x00, 0x02,
		0xd3, 0x01,
		0x76,
	}, 0x100)
	require.NoError(t, ram.Load([]uint8("OK$"), 0x200))

	dev := newBdos(c)
	require.NoError(t, c.IO().AddDevice(dev))
	c.IO().SetMemory(c.Memory())

	runToHalt(c)
	assert.Equal("OK", dev.out.String())
}

func TestBdos_CharCall(t *testing.T) {
	assert := assert.New(t)

	// MVI C,2 / MVI E,'A' / OUT 1 / HLT.
	c, _ := testCPU(t, I8080, []uint8{
		0x0e, 0x02,
		0x1e, 'A',
		0xd3, 0x01,
		0x76,
	}, 0x100)

	dev := newBdos(c)
	require.NoError(t, c.IO().AddDevice(dev))
	c.IO().SetMemory(c.Memory())

	runToHalt(c)
	assert.Equal("A", dev.out.String())
}
