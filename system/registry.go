// Package system assembles a simulated machine from its parsed
// configuration: it holds the factory registry, binds CPUs to memory,
// IO and devices in dependency order, and propagates lifecycle calls.
package system

import (
	"github.com/rcornwell/ts-sim/cpu"
	"github.com/rcornwell/ts-sim/io"
	"github.com/rcornwell/ts-sim/memory"
)

// Registry maps system model names to their component factories. It is
// an explicit value: packages providing a machine register into the
// registry the caller passes around, there is no process global.
type Registry struct {
	systems map[string]*Machine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{systems: make(map[string]*Machine)}
}

// Machine creates or returns the named system model, under which the
// model's CPUs, memories, IO controllers and devices register.
func (r *Registry) Machine(name string, maxCPUs uint) *Machine {
	if st, ok := r.systems[name]; ok {
		return st
	}
	st := &Machine{
		name:    name,
		maxCPUs: maxCPUs,
		cpus:    make(map[string]func() cpu.Variant),
		mems:    make(map[string]func(size, base uint) memory.Variant),
		ios:     make(map[string]func() io.Variant),
		devs:    make(map[string]func() io.DevVariant),
	}
	r.systems[name] = st
	return st
}

func (r *Registry) lookup(name string) (*Machine, error) {
	st, ok := r.systems[name]
	if !ok {
		return nil, ErrUnknownType{Kind: "system", Name: name}
	}
	return st, nil
}

// Machine is one registered system model and its factories.
type Machine struct {
	name    string
	maxCPUs uint
	cpus    map[string]func() cpu.Variant
	mems    map[string]func(size, base uint) memory.Variant
	ios     map[string]func() io.Variant
	devs    map[string]func() io.DevVariant
}

// Name returns the model name the machine registered under.
func (st *Machine) Name() string {
	return st.name
}

// CPU registers a processor factory under a model name.
func (st *Machine) CPU(model string, create func() cpu.Variant) *Machine {
	st.cpus[model] = create
	return st
}

// Memory registers a region factory under a model name.
func (st *Machine) Memory(model string, create func(size, base uint) memory.Variant) *Machine {
	st.mems[model] = create
	return st
}

// IO registers a port controller factory under a model name.
func (st *Machine) IO(model string, create func() io.Variant) *Machine {
	st.ios[model] = create
	return st
}

// Device registers a device factory under a model name.
func (st *Machine) Device(model string, create func() io.DevVariant) *Machine {
	st.devs[model] = create
	return st
}

func (st *Machine) createCPU(model string) (cpu.Variant, error) {
	create, ok := st.cpus[model]
	if !ok {
		return cpu.Variant{}, ErrUnknownType{Kind: "cpu", Name: model}
	}
	return create(), nil
}

func (st *Machine) createMemory(model string, size, base uint) (memory.Variant, error) {
	create, ok := st.mems[model]
	if !ok {
		return memory.Variant{}, ErrUnknownType{Kind: "mem", Name: model}
	}
	return create(size, base), nil
}

func (st *Machine) createIO(model string) (io.Variant, error) {
	create, ok := st.ios[model]
	if !ok {
		return io.Variant{}, ErrUnknownType{Kind: "io", Name: model}
	}
	return create(), nil
}

func (st *Machine) createDevice(model string) (io.DevVariant, error) {
	create, ok := st.devs[model]
	if !ok {
		return io.DevVariant{}, ErrUnknownType{Kind: "device", Name: model}
	}
	return create(), nil
}
