package system

import (
	"log"
	"sync"

	"github.com/rcornwell/ts-sim/cpu"
	"github.com/rcornwell/ts-sim/io"
	"github.com/rcornwell/ts-sim/memory"
)

// MemInfo couples a region with the names of the CPUs it binds to; an
// empty name list binds it to every CPU.
type MemInfo struct {
	Mem  memory.Variant
	CPUs []string
}

// IOInfo couples an IO controller with the names of the CPUs it binds
// to. PreAttached marks controllers a CPU created for itself at Init.
type IOInfo struct {
	IO          io.Variant
	CPUs        []string
	PreAttached bool
}

// DevInfo couples a device with the names of the IO controllers it
// belongs to; an empty list installs it on every controller.
type DevInfo struct {
	Dev io.DevVariant
	IOs []string
}

// System owns one assembled machine: its CPUs, memory regions, IO
// controllers and devices, in the order the configuration named them.
type System struct {
	Verbose bool

	machine *Machine
	cpus    []cpu.Variant
	names   []string
	mems    []MemInfo
	ios     []IOInfo
	devs    []DevInfo

	wg sync.WaitGroup
}

// Type returns the system model name.
func (s *System) Type() string {
	return s.machine.Name()
}

// CPUs returns the bound processors in configuration order.
func (s *System) CPUs() []cpu.Variant {
	return s.cpus
}

// AddCPU appends a processor under the given configuration name.
func (s *System) AddCPU(cv cpu.Variant, name string) error {
	if uint(len(s.cpus)) >= s.machine.maxCPUs {
		return ErrTooManyCPUs
	}
	s.cpus = append(s.cpus, cv)
	s.names = append(s.names, name)
	return nil
}

// AddMemory records a region for binding.
func (s *System) AddMemory(mi MemInfo) {
	s.mems = append(s.mems, mi)
}

// AddIO records an IO controller for binding.
func (s *System) AddIO(ii IOInfo) {
	s.ios = append(s.ios, ii)
}

// AddDevice records a device for binding.
func (s *System) AddDevice(di DevInfo) {
	s.devs = append(s.devs, di)
}

// Start brings the machine up: IO controllers first, then each CPU.
func (s *System) Start() {
	for _, ii := range s.ios {
		ioCall(ii.IO, func(c lifecycle) {
			c.Start()
		})
	}
	for _, cv := range s.cpus {
		cpuCall(cv, func(c runner) {
			c.Start()
		})
	}
}

// Run executes every CPU on its own goroutine until each halts or is
// stopped, then returns.
func (s *System) Run() {
	for i, cv := range s.cpus {
		s.wg.Add(1)
		go func(name string, cv cpu.Variant) {
			defer s.wg.Done()
			if s.Verbose {
				log.Printf("system: cpu %v running", name)
			}
			cpuCall(cv, func(c runner) {
				c.Run()
			})
		}(s.names[i], cv)
	}
	s.wg.Wait()
}

// Reset returns every CPU and IO controller to its power-on state.
func (s *System) Reset() {
	for _, cv := range s.cpus {
		cpuCall(cv, func(c runner) {
			c.Reset()
		})
	}
	for _, ii := range s.ios {
		ioCall(ii.IO, func(c lifecycle) {
			c.Reset()
		})
	}
}

// Stop halts the machine in reverse order of Start.
func (s *System) Stop() {
	for _, cv := range s.cpus {
		cpuCall(cv, func(c runner) {
			c.Stop()
		})
	}
	for _, ii := range s.ios {
		ioCall(ii.IO, func(c lifecycle) {
			c.Stop()
		})
	}
}

// Shutdown tears the machine down after the run loops have drained.
func (s *System) Shutdown() {
	s.Stop()
	s.wg.Wait()
	for _, cv := range s.cpus {
		cpuCall(cv, func(c runner) {
			c.Shutdown()
		})
	}
	for _, ii := range s.ios {
		ioCall(ii.IO, func(c lifecycle) {
			c.Shutdown()
		})
	}
}
