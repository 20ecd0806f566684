// Package console delivers terminal input to the simulation. A reader
// goroutine feeds bytes through the wake-up (WRU) filter into one of
// two bounded queues: the program queue drained by emulated device
// input, and the command queue drained by the command interpreter.
// Queue overflow is never silent; it raises an overrun flag the device
// surfaces through its status port.
package console

import (
	"io"
	"log"
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

const (
	// DefaultWRU is the control byte toggling program/command mode.
	DefaultWRU = 0x05 // CTRL-E

	// quoteKey passes the next command byte through unfiltered.
	quoteKey = 0x16 // CTRL-V

	// queueDepth bounds each delivery queue.
	queueDepth = 64
)

// Console owns the input path between the terminal and the simulation.
type Console struct {
	Verbose bool

	// WRU is the mode-toggle byte; it is filtered and never
	// delivered downstream.
	WRU byte
	// Attn is the attention byte; zero disables it.
	Attn byte

	mode  bool // false: program, true: command
	quote bool

	prog chan byte
	cmd  chan byte
	attn chan byte

	overrun atomic.Bool

	in      io.Reader
	restore func()
	running atomic.Bool
}

// New creates a console with default WRU and empty queues. Input is
// attached later with Open or fed directly with Feed.
func New() *Console {
	return &Console{
		WRU:  DefaultWRU,
		prog: make(chan byte, queueDepth),
		cmd:  make(chan byte, queueDepth),
		attn: make(chan byte, 1),
	}
}

// CommandMode reports whether input is currently routed to the command
// interpreter.
func (c *Console) CommandMode() bool {
	return c.mode
}

// Feed runs one input byte through the WRU filter and delivers it to
// the proper queue. The reader goroutine calls this; tests and
// alternate frontends may call it directly.
func (c *Console) Feed(ch byte) {
	switch {
	case c.quote:
		c.quote = false
		c.deliver(c.cmd, ch)
	case ch == c.WRU:
		c.mode = !c.mode
		if c.Verbose {
			log.Printf("console: command mode %v", c.mode)
		}
	case c.Attn != 0 && ch == c.Attn:
		select {
		case c.attn <- ch:
		default:
		}
	case c.mode:
		if ch == quoteKey {
			c.quote = true
			return
		}
		c.deliver(c.cmd, ch)
	default:
		c.deliver(c.prog, ch)
	}
}

func (c *Console) deliver(q chan byte, ch byte) {
	select {
	case q <- ch:
	default:
		c.overrun.Store(true)
	}
}

// TryProgram drains one byte from the program queue without blocking.
func (c *Console) TryProgram() (byte, bool) {
	select {
	case ch := <-c.prog:
		return ch, true
	default:
		return 0, false
	}
}

// TryCommand drains one byte from the command queue without blocking.
func (c *Console) TryCommand() (byte, bool) {
	select {
	case ch := <-c.cmd:
		return ch, true
	default:
		return 0, false
	}
}

// TryAttn reports a pending attention byte without blocking.
func (c *Console) TryAttn() (byte, bool) {
	select {
	case ch := <-c.attn:
		return ch, true
	default:
		return 0, false
	}
}

// Overrun reports whether a queue overflowed since the last clear.
func (c *Console) Overrun() bool {
	return c.overrun.Load()
}

// ClearOverrun resets the overflow flag, typically from a device
// command-port reset.
func (c *Console) ClearOverrun() {
	c.overrun.Store(false)
}

// Write sends simulation output to the terminal.
func (c *Console) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// Open puts the controlling terminal into raw mode and starts the
// reader goroutine. Harmless to call twice.
func (c *Console) Open() error {
	if c.running.Load() {
		return nil
	}
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		c.restore = func() {
			if err := term.Restore(fd, state); err != nil {
				log.Printf("console: restore: %v", err)
			}
		}
	}
	c.in = os.Stdin
	c.running.Store(true)
	go c.reader()
	return nil
}

// Shutdown stops delivering input and restores the terminal state.
func (c *Console) Shutdown() {
	if !c.running.Swap(false) {
		return
	}
	if c.restore != nil {
		c.restore()
		c.restore = nil
	}
}

func (c *Console) reader() {
	var buf [1]byte
	for c.running.Load() {
		n, err := c.in.Read(buf[:])
		if err != nil {
			return
		}
		if n == 1 && c.running.Load() {
			c.Feed(buf[0])
		}
	}
}
