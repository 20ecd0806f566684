package i8080

import (
	"fmt"
	"log"
	"strings"
)

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

var pairNames = [8]string{"B", "B", "D", "D", "H", "H", "SP", "PSW"}

var condNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// Disassemble renders the instruction whose opcode is ir with the two
// following bytes packed into addr. It returns the text and the
// instruction length in bytes.
func (c *Core) Disassemble(ir uint8, addr uint16) (string, int) {
	var found *insn
	for i := range insnTable {
		ins := &insnTable[i]
		if ins.model > c.model {
			continue
		}
		if ir&shapeMask[ins.shape] == ins.base {
			found = ins
			break
		}
	}
	if found == nil {
		return fmt.Sprintf("%02x", ir), 1
	}

	name := strings.ToUpper(found.name)
	text := name
	switch found.shape {
	case sLXI:
		text = fmt.Sprintf("%s %s,%x", name, pairNames[(ir>>3)&06], addr)
	case sREGX:
		text = fmt.Sprintf("%s %s", name, pairNames[(ir>>3)&06])
	case sRP0:
		text = fmt.Sprintf("%s %s", name, pairNames[(ir>>3)&06+1])
	case sREG2:
		text = fmt.Sprintf("%s %s", name, pairNames[(ir>>3)&02])
	case sABS:
		text = fmt.Sprintf("%s %x", name, addr)
	case sREG:
		text = fmt.Sprintf("%s %s", name, regNames[(ir>>3)&07])
	case sIMMR:
		text = fmt.Sprintf("%s %s,%x", name, regNames[(ir>>3)&07], addr&0xff)
	case sMOV:
		text = fmt.Sprintf("%s %s,%s", name, regNames[(ir>>3)&07], regNames[ir&07])
	case sSOPR:
		text = fmt.Sprintf("%s %s", name, regNames[ir&07])
	case sIMM:
		text = fmt.Sprintf("%s %x", name, addr&0xff)
	case sRST:
		text = fmt.Sprintf("%s %d", name, (ir>>3)&07)
	case sCCR:
		text = name + condNames[(ir>>3)&07]
	case sCCJ, sCCC:
		text = fmt.Sprintf("%s%s %x", name, condNames[(ir>>3)&07], addr)
	}
	return text, shapeLen[found.shape]
}

// DumpRegs formats the eight bit registers for tracing.
func (c *Core) DumpRegs() string {
	var buf strings.Builder
	for i, name := range regNames {
		if i == M {
			continue
		}
		fmt.Fprintf(&buf, "%s=%02x ", name, c.regs[i])
	}
	return buf.String()
}

// Trace logs the register state and the instruction at the program
// counter. It reads memory through the fast path and never disturbs
// the processor state.
func (c *Core) Trace() {
	ir, _ := c.mem.Read(uint(c.pc))
	lo, _ := c.mem.Read(uint(c.pc) + 1)
	hi, _ := c.mem.Read(uint(c.pc) + 2)
	text, _ := c.Disassemble(ir, uint16(hi)<<8|uint16(lo))
	log.Printf("%sSP=%04x %04x %02x %s", c.DumpRegs(), c.sp, c.pc, c.psw, text)
}
