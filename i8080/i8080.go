// Package i8080 implements the Intel 8080 and 8085 processors on top
// of the generic cpu, memory and io interfaces. The 8085 adds the
// undocumented instructions and the V and X flag semantics.
package i8080

import (
	"log"

	"github.com/rcornwell/ts-sim/config"
	"github.com/rcornwell/ts-sim/io"
	"github.com/rcornwell/ts-sim/memory"
)

// Model selects which processor is simulated.
type Model int

const (
	I8080 Model = iota
	I8085
)

func (m Model) String() string {
	if m == I8085 {
		return "I8085"
	}
	return "I8080"
}

// PSW flag bits.
const (
	CARRY uint8 = 0x01
	VFLG  uint8 = 0x02
	PAR   uint8 = 0x04
	AC    uint8 = 0x10
	XFLG  uint8 = 0x20
	ZERO  uint8 = 0x40
	SIGN  uint8 = 0x80
)

// Register numbers as encoded in opcodes. M is the pseudo register
// addressing the byte at H:L.
const (
	B = iota
	C
	D
	E
	H
	L
	M
	A
)

// Register pairs. PW packs the flags in the low byte and A in the high
// byte.
const (
	BC = iota
	DE
	HL
	SP
	PW
)

// Core is the processor state for one 8080 or 8085.
type Core struct {
	Verbose bool

	model Model
	name  string

	regs    [8]uint8
	psw     uint8
	sp      uint16
	pc      uint16
	ie      bool
	running bool

	// T-states consumed by the current instruction; taken calls and
	// returns add to it.
	cycleTime uint64

	pageSize  uint
	traceRun  bool
	dispatch  *[256]func(*Core)
	mem       memory.Memory[uint8]
	ioc       io.IO[uint8]
	defaultIO io.IO[uint8]
}

// New creates a processor of the given model. Memory and IO are
// attached by Init and the binder.
func New(model Model) *Core {
	c := &Core{model: model, pageSize: 4096}
	if model == I8085 {
		c.dispatch = &dispatch8085
	} else {
		c.dispatch = &dispatch8080
	}
	return c
}

// Model returns the simulated processor model.
func (c *Core) Model() Model {
	return c.model
}

func (c *Core) Name() string {
	return c.name
}

func (c *Core) SetName(name string) {
	c.name = name
}

func (c *Core) PC() uint {
	return uint(c.pc)
}

func (c *Core) SetPC(pc uint) {
	c.pc = uint16(pc)
}

// PSW returns the current flag word.
func (c *Core) PSW() uint8 {
	return c.psw
}

func (c *Core) Running() bool {
	return c.running
}

func (c *Core) SetMemory(m memory.Memory[uint8]) {
	c.mem = m
}

func (c *Core) Memory() memory.Memory[uint8] {
	return c.mem
}

// AddMemory attaches a region below the current memory controller, or
// makes the region the controller when none exists yet.
func (c *Core) AddMemory(m memory.Memory[uint8]) error {
	if c.mem == nil {
		c.mem = m
		return nil
	}
	return c.mem.AddChild(m)
}

func (c *Core) AddIO(ctrl io.IO[uint8]) {
	c.ioc = ctrl
}

func (c *Core) IO() io.IO[uint8] {
	return c.ioc
}

// DefaultIO returns the port controller Init created.
func (c *Core) DefaultIO() io.IO[uint8] {
	return c.defaultIO
}

// Options returns the processor options: the page size of the default
// memory controller and the trace flag.
func (c *Core) Options() *config.Options {
	opts := config.NewOptions("CPU options")
	opts.Uint("pagesize", "Address spacing", &c.pageSize, c.pageSize)
	opts.Bool("trace", "Trace executed instructions", &c.traceRun, c.traceRun)
	return opts
}

// Init allocates the default 64K routing controller and the 256 port
// IO map. Regions and devices bind below them afterwards.
func (c *Core) Init() error {
	memctl, err := memory.NewArray[uint8](64*1024, c.pageSize)
	if err != nil {
		return err
	}
	c.mem = memctl
	c.defaultIO = io.NewPortMap[uint8](256)
	c.ioc = c.defaultIO
	return nil
}

func (c *Core) Shutdown() {
}

func (c *Core) Start() {
	c.running = true
}

// Reset returns the processor to its power-on state: PC zero, flags
// word 2, interrupts disabled, not running.
func (c *Core) Reset() {
	c.running = false
	c.pc = 0
	c.psw = 2
	c.ie = false
}

func (c *Core) Stop() {
	c.running = false
}

// Step executes one instruction and returns the T-states it consumed.
// After a halt Step does nothing until Start.
func (c *Core) Step() uint64 {
	if !c.running {
		return 0
	}
	ir := c.fetch()
	c.cycleTime = uint64(insTime[ir])
	c.dispatch[ir](c)
	if c.ioc != nil {
		c.ioc.Step()
	}
	return c.cycleTime
}

// Run executes until the processor halts or is stopped.
func (c *Core) Run() {
	for c.running {
		if c.traceRun {
			c.Trace()
		}
		c.Step()
	}
}

// getReg fetches register r, reading memory at H:L for M.
func (c *Core) getReg(r int) uint8 {
	if r == M {
		v, _ := c.mem.Read(uint(c.pair(HL)))
		return v
	}
	return c.regs[r]
}

// setReg sets register r, writing memory at H:L for M.
func (c *Core) setReg(r int, v uint8) {
	if r == M {
		c.mem.Write(v, uint(c.pair(HL)))
		return
	}
	c.regs[r] = v
}

// pair returns register pair rp as a 16 bit value.
func (c *Core) pair(rp int) uint16 {
	switch rp {
	case BC:
		return uint16(c.regs[B])<<8 | uint16(c.regs[C])
	case DE:
		return uint16(c.regs[D])<<8 | uint16(c.regs[E])
	case HL:
		return uint16(c.regs[H])<<8 | uint16(c.regs[L])
	case SP:
		return c.sp
	case PW:
		return uint16(c.regs[A])<<8 | uint16(c.psw)
	}
	return 0
}

// setPair sets register pair rp. Loading PW masks the flag word to the
// bits the model defines.
func (c *Core) setPair(rp int, v uint16) {
	switch rp {
	case BC:
		c.regs[B] = uint8(v >> 8)
		c.regs[C] = uint8(v)
	case DE:
		c.regs[D] = uint8(v >> 8)
		c.regs[E] = uint8(v)
	case HL:
		c.regs[H] = uint8(v >> 8)
		c.regs[L] = uint8(v)
	case SP:
		c.sp = v
	case PW:
		if c.model == I8085 {
			c.psw = uint8(v) & (SIGN | ZERO | XFLG | AC | PAR | VFLG | CARRY)
		} else {
			c.psw = uint8(v)&(SIGN|ZERO|AC|PAR|CARRY) | VFLG
		}
		c.regs[A] = uint8(v >> 8)
	}
}

// fetch returns the byte at the program counter and advances it. A
// fetch from unmapped memory yields a halt opcode.
func (c *Core) fetch() uint8 {
	v, ok := c.mem.Read(uint(c.pc))
	if !ok {
		return 0x76
	}
	c.pc++
	return v
}

// fetchAddr returns the two bytes at the program counter as a little
// endian address, advancing past them.
func (c *Core) fetchAddr() uint16 {
	lo, ok := c.mem.Read(uint(c.pc))
	if !ok {
		return 0
	}
	c.pc++
	hi, ok := c.mem.Read(uint(c.pc))
	if !ok {
		return 0
	}
	c.pc++
	return uint16(hi)<<8 | uint16(lo)
}

// fetchDouble returns the 16 bit value at addr.
func (c *Core) fetchDouble(addr uint16) uint16 {
	lo, _ := c.mem.Read(uint(addr))
	hi, _ := c.mem.Read(uint(addr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// storeDouble writes a 16 bit value at addr, low byte first.
func (c *Core) storeDouble(v, addr uint16) {
	c.mem.Write(uint8(v), uint(addr))
	c.mem.Write(uint8(v>>8), uint(addr+1))
}

// push stores a 16 bit value on the stack.
func (c *Core) push(v uint16) {
	c.sp -= 2
	c.storeDouble(v, c.sp)
}

// pop removes the top 16 bit value from the stack.
func (c *Core) pop() uint16 {
	v := c.fetchDouble(c.sp)
	c.sp += 2
	return v
}

// illegal handles an opcode the current model does not define.
func (c *Core) illegal(op uint8) {
	if c.model == I8085 && c.Verbose {
		log.Printf("i8080: %v: illegal instruction %02x at %04x", c.name, op, c.pc-1)
	}
}
