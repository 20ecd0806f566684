// Package io provides the port-routed I/O fabric of a simulated
// system: the Device interface peripherals implement, the IO interface
// CPUs talk to, and the PortMap controller that routes between them.
package io

import (
	"github.com/rcornwell/ts-sim/config"
	"github.com/rcornwell/ts-sim/memory"
)

// Device is one peripheral occupying Span consecutive ports starting
// at Address. Input and Output carry data; Status and Command mirror
// them for devices that distinguish control from data ports.
type Device[T memory.Cell] interface {
	Name() string
	SetName(name string)

	// Address returns the first port the device occupies.
	Address() uint
	SetAddress(addr uint)
	// Span returns the number of consecutive ports occupied.
	Span() uint

	// Attach hands the device a reference to its controller, so it
	// can reach memory for direct transfers.
	Attach(ctrl IO[T])

	Options() *config.Options

	Init() error
	Start()
	Reset()
	Stop()
	Step()
	Run()
	Shutdown()

	Input(port uint) (T, bool)
	Output(val T, port uint) bool
	Status(port uint) (T, bool)
	Command(val T, port uint) bool
}

// Base carries the state and defaults common to devices. Concrete
// devices embed it and override what they need.
type Base[T memory.Cell] struct {
	name string
	addr uint
	span uint
	ctrl IO[T]
}

// NewBase creates device plumbing for a device at addr spanning span
// ports.
func NewBase[T memory.Cell](addr, span uint) Base[T] {
	return Base[T]{addr: addr, span: span}
}

func (d *Base[T]) Name() string {
	return d.name
}

func (d *Base[T]) SetName(name string) {
	d.name = name
}

func (d *Base[T]) Address() uint {
	return d.addr
}

func (d *Base[T]) SetAddress(addr uint) {
	d.addr = addr
}

func (d *Base[T]) Span() uint {
	return d.span
}

func (d *Base[T]) SetSpan(span uint) {
	d.span = span
}

func (d *Base[T]) Attach(ctrl IO[T]) {
	d.ctrl = ctrl
}

// Controller returns the IO fabric the device is attached to, for
// direct memory transfers.
func (d *Base[T]) Controller() IO[T] {
	return d.ctrl
}

// Options returns the option set every device recognizes.
func (d *Base[T]) Options() *config.Options {
	opts := config.NewOptions("Device options")
	opts.Uint("addr", "First port of device", &d.addr, d.addr)
	return opts
}

func (d *Base[T]) Init() error { return nil }
func (d *Base[T]) Start()      {}
func (d *Base[T]) Reset()      {}
func (d *Base[T]) Stop()       {}
func (d *Base[T]) Step()       {}
func (d *Base[T]) Run()        {}
func (d *Base[T]) Shutdown()   {}

func (d *Base[T]) Input(port uint) (T, bool) {
	var zero T
	return zero, false
}

func (d *Base[T]) Output(val T, port uint) bool {
	return false
}

func (d *Base[T]) Status(port uint) (T, bool) {
	var zero T
	return zero, false
}

func (d *Base[T]) Command(val T, port uint) bool {
	return false
}

// nullDevice is the sentinel occupying unclaimed ports.
type nullDevice[T memory.Cell] struct {
	Base[T]
}
