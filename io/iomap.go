package io

import (
	"github.com/rcornwell/ts-sim/config"
	"github.com/rcornwell/ts-sim/memory"
)

// IO is the interface a CPU uses to reach its peripherals.
type IO[T memory.Cell] interface {
	Name() string
	SetName(name string)

	Input(port uint) (T, bool)
	Output(val T, port uint) bool
	Status(port uint) (T, bool)
	Command(val T, port uint) bool

	// AddDevice installs a device into the port table by its own
	// address and span.
	AddDevice(d Device[T]) error

	// SetMemory lends the controller a memory reference so devices
	// can do direct transfers. The memory's lifetime is bounded by
	// the system, not the controller.
	SetMemory(m memory.Memory[T])
	Memory() memory.Memory[T]

	Options() *config.Options

	Init() error
	Start()
	Reset()
	Stop()
	Step()
	Run()
	Shutdown()
}

// PortMap routes port accesses through a fixed table of device
// references. Unclaimed ports hold a null device that refuses every
// transfer.
type PortMap[T memory.Cell] struct {
	name  string
	null  *nullDevice[T]
	table []Device[T]
	mem   memory.Memory[T]
}

// NewPortMap creates a controller with maxPorts ports, all unclaimed.
func NewPortMap[T memory.Cell](maxPorts uint) *PortMap[T] {
	m := &PortMap[T]{null: &nullDevice[T]{}}
	m.table = make([]Device[T], maxPorts)
	for i := range m.table {
		m.table[i] = m.null
	}
	return m
}

func (m *PortMap[T]) Name() string {
	return m.name
}

func (m *PortMap[T]) SetName(name string) {
	m.name = name
}

// AddDevice installs d into table[address .. address+span) and hands it
// the controller reference.
func (m *PortMap[T]) AddDevice(d Device[T]) error {
	addr := d.Address()
	span := d.Span()
	if span == 0 || addr+span > uint(len(m.table)) {
		return ErrPortRange
	}
	for i := addr; i < addr+span; i++ {
		m.table[i] = d
	}
	d.Attach(m)
	return nil
}

func (m *PortMap[T]) SetMemory(mem memory.Memory[T]) {
	m.mem = mem
}

func (m *PortMap[T]) Memory() memory.Memory[T] {
	return m.mem
}

func (m *PortMap[T]) Options() *config.Options {
	return config.NewOptions("IO options")
}

func (m *PortMap[T]) Input(port uint) (T, bool) {
	if port >= uint(len(m.table)) {
		var zero T
		return zero, false
	}
	return m.table[port].Input(port)
}

func (m *PortMap[T]) Output(val T, port uint) bool {
	if port >= uint(len(m.table)) {
		return false
	}
	return m.table[port].Output(val, port)
}

func (m *PortMap[T]) Status(port uint) (T, bool) {
	if port >= uint(len(m.table)) {
		var zero T
		return zero, false
	}
	return m.table[port].Status(port)
}

func (m *PortMap[T]) Command(val T, port uint) bool {
	if port >= uint(len(m.table)) {
		return false
	}
	return m.table[port].Command(val, port)
}

// devices visits each distinct installed device exactly once, stepping
// the table by the device's span.
func (m *PortMap[T]) devices(visit func(d Device[T])) {
	for i := uint(0); i < uint(len(m.table)); {
		d := m.table[i]
		if d == Device[T](m.null) {
			i++
			continue
		}
		visit(d)
		span := d.Span()
		if span == 0 {
			span = 1
		}
		i += span
	}
}

func (m *PortMap[T]) Init() (err error) {
	m.devices(func(d Device[T]) {
		if err == nil {
			err = d.Init()
		}
	})
	return
}

func (m *PortMap[T]) Start() {
	m.devices(func(d Device[T]) { d.Start() })
}

func (m *PortMap[T]) Reset() {
	m.devices(func(d Device[T]) { d.Reset() })
}

func (m *PortMap[T]) Stop() {
	m.devices(func(d Device[T]) { d.Stop() })
}

func (m *PortMap[T]) Step() {
	m.devices(func(d Device[T]) { d.Step() })
}

func (m *PortMap[T]) Run() {
	m.devices(func(d Device[T]) { d.Run() })
}

func (m *PortMap[T]) Shutdown() {
	m.devices(func(d Device[T]) { d.Shutdown() })
}
