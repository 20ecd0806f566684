package i8080

import (
	"github.com/rcornwell/ts-sim/console"
	"github.com/rcornwell/ts-sim/io"
)

// 2651 port offsets.
const (
	dataPort = iota
	statusPort
	modePort
	cmdPort
)

// Status port bits.
const (
	TxRDY  uint8 = 0x01 // transmitter ready
	RxRDY  uint8 = 0x02 // character ready
	TxEMT  uint8 = 0x04 // DCD or DSR changed
	RxPE   uint8 = 0x08 // parity error
	RxOVER uint8 = 0x10 // character not read in time
	RxFE   uint8 = 0x20 // framing error
	DCD    uint8 = 0x40 // state of DCD line
	DSR    uint8 = 0x80 // state of DSR line
)

// Command port bits.
const (
	cmdTranEnable uint8 = 0x01
	cmdDTR        uint8 = 0x02
	cmdRecvEnable uint8 = 0x04
	cmdBreak      uint8 = 0x08
	cmdReset      uint8 = 0x10
	cmdRTS        uint8 = 0x20
)

// Console2651 models a 2651 style UART over four ports: data, status,
// mode and command. Input arrives by polling the console's program
// queue once per step; a byte landing on a full holding buffer raises
// the overrun status bit. A CTRL-C on the program stream stops the
// processor.
type Console2651 struct {
	io.Base[uint8]

	con  *console.Console
	halt func()

	mode1    uint8
	mode2    uint8
	modePtr  bool
	cmd      uint8
	status   uint8
	recvBuf  uint8
	recvFull bool
	overRun  bool
}

// NewConsole2651 creates the UART bound to a console. A nil console
// attaches the process default at Init.
func NewConsole2651(con *console.Console) *Console2651 {
	d := &Console2651{con: con}
	d.Base = io.NewBase[uint8](0, 4)
	return d
}

// SetHalt installs the callback the device fires when the operator
// interrupts the emulated program.
func (d *Console2651) SetHalt(halt func()) {
	d.halt = halt
}

func (d *Console2651) Init() error {
	if d.con == nil {
		d.con = console.Default()
	}
	return d.con.Open()
}

func (d *Console2651) Shutdown() {
	d.con.Shutdown()
}

func (d *Console2651) Reset() {
	d.modePtr = false
	d.status = 0
	d.cmd = 0
	d.mode1 = 0
	d.mode2 = 0
	d.recvFull = false
	d.overRun = false
}

// Step polls one byte from the console into the holding buffer.
func (d *Console2651) Step() {
	ch, ok := d.con.TryProgram()
	if !ok {
		return
	}
	if ch == 0x03 && d.halt != nil {
		d.halt()
		return
	}
	if d.recvFull {
		d.overRun = true
	}
	d.recvBuf = ch
	d.recvFull = true
}

func (d *Console2651) Input(port uint) (uint8, bool) {
	switch (port - d.Address()) & 0x3 {
	case dataPort:
		v := d.recvBuf
		d.recvFull = false
		return v, true

	case statusPort:
		v := d.status
		if d.recvFull {
			v |= RxRDY
		}
		if d.overRun || d.con.Overrun() {
			v |= RxOVER
		}
		return v, true

	case modePort:
		v := d.mode1
		if d.modePtr {
			v = d.mode2
		}
		d.modePtr = !d.modePtr
		return v, true

	case cmdPort:
		return d.cmd, true
	}
	return 0, false
}

func (d *Console2651) Output(val uint8, port uint) bool {
	switch (port - d.Address()) & 0x3 {
	case dataPort:
		d.con.Write([]byte{val})

	case statusPort:
		// Sync character registers, not modeled.

	case modePort:
		if d.modePtr {
			d.mode2 = val
		} else {
			d.mode1 = val
		}

	case cmdPort:
		d.cmd = val
		d.modePtr = false
		if val&cmdReset != 0 {
			d.status &^= RxPE | RxOVER | RxFE
			d.overRun = false
			d.con.ClearOverrun()
		}
		if val&cmdTranEnable != 0 {
			d.status |= TxRDY
		}
	}
	return true
}

// Status mirrors Input for callers that address the control ports
// directly.
func (d *Console2651) Status(port uint) (uint8, bool) {
	return d.Input(port)
}

// Command mirrors Output for callers that address the control ports
// directly.
func (d *Console2651) Command(val uint8, port uint) bool {
	return d.Output(val, port)
}
