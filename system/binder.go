package system

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/rcornwell/ts-sim/config"
)

// halter is the one upward call a device may make: asking for the
// machine to stop.
type halter interface {
	SetHalt(halt func())
}

// LoadConfig parses a configuration stream and assembles the machine
// it describes, binding CPUs to memory, IO and devices in dependency
// order. The registry supplies every factory; nothing is looked up
// globally.
func LoadConfig(reg *Registry, r io.Reader) (*System, error) {
	file, err := config.Parse(r)
	if err != nil {
		return nil, err
	}
	return Bind(reg, file)
}

// LoadConfigFile assembles the machine described by a configuration
// file.
func LoadConfigFile(reg *Registry, path string) (*System, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return LoadConfig(reg, fd)
}

// Bind assembles a machine from parsed configuration statements.
func Bind(reg *Registry, file *config.File) (*System, error) {
	if file.System == "" {
		return nil, ErrNoSystem
	}
	machine, err := reg.lookup(file.System)
	if err != nil {
		return nil, err
	}
	sys := &System{machine: machine}

	// CPUs first; a CPU's Init builds its default controllers, and a
	// CPU with a port space contributes a pre-attached IO controller.
	for i, stmt := range file.CPUs {
		cv, err := machine.createCPU(stmt.Model)
		if err != nil {
			return nil, err
		}
		if err := cv.Options().Apply(stmt.Options); err != nil {
			return nil, err
		}
		name := stmt.Name
		if name == "" {
			name = fmt.Sprintf("%s%d", stmt.Model, i)
		}
		cv.SetName(name)
		if err := sys.AddCPU(cv, name); err != nil {
			return nil, err
		}
		if err := initCPU(cv); err != nil {
			return nil, err
		}
		if iv, ok := defaultIO(cv); ok {
			iv.SetName(name)
			sys.AddIO(IOInfo{IO: iv, CPUs: []string{name}, PreAttached: true})
		}
	}

	// Memory regions bind below each selected CPU's controller.
	for _, stmt := range file.Memories {
		base := stmt.Base
		mv, err := machine.createMemory(stmt.Model, stmt.Size, base)
		if err != nil {
			return nil, err
		}
		if err := memOptions(mv).Apply(stmt.Options); err != nil {
			return nil, err
		}
		if stmt.Name != "" {
			mv.SetName(stmt.Name)
		}
		if stmt.Load != "" {
			data, err := os.ReadFile(stmt.Load)
			if err != nil {
				return nil, ErrLoad{Path: stmt.Load, Err: err}
			}
			if err := loadMemory(mv, data); err != nil {
				return nil, ErrLoad{Path: stmt.Load, Err: err}
			}
		}
		sys.AddMemory(MemInfo{Mem: mv, CPUs: stmt.CPUs})
	}
	for _, mi := range sys.mems {
		for i, cv := range sys.cpus {
			if len(mi.CPUs) != 0 && !slices.Contains(mi.CPUs, sys.names[i]) {
				continue
			}
			if err := attachMemory(cv, mi.Mem, sys.names[i]); err != nil {
				return nil, err
			}
		}
	}

	// IO controllers configured on their own attach here; the
	// pre-attached ones are already in place.
	for _, ii := range sys.ios {
		if ii.PreAttached {
			continue
		}
		for i, cv := range sys.cpus {
			if len(ii.CPUs) != 0 && !slices.Contains(ii.CPUs, sys.names[i]) {
				continue
			}
			if err := attachIO(cv, ii.IO, sys.names[i]); err != nil {
				return nil, err
			}
		}
	}

	// Lend each CPU's memory to its IO fabric for device transfers.
	for _, cv := range sys.cpus {
		bindIOMemory(cv)
	}

	// Devices route into every selected controller.
	for _, stmt := range file.Devices {
		dv, err := machine.createDevice(stmt.Model)
		if err != nil {
			return nil, err
		}
		if err := devOptions(dv).Apply(stmt.Options); err != nil {
			return nil, err
		}
		if stmt.Name != "" {
			dv.SetName(stmt.Name)
		}
		if stmt.HasAddress {
			devSetAddress(dv, stmt.Address)
		}
		if h, ok := devImpl(dv).(halter); ok {
			h.SetHalt(sys.Stop)
		}
		sys.AddDevice(DevInfo{Dev: dv, IOs: stmt.IOs})
	}
	for _, di := range sys.devs {
		for _, ii := range sys.ios {
			if len(di.IOs) != 0 && !slices.Contains(di.IOs, ii.IO.Name()) {
				continue
			}
			if err := attachDevice(ii.IO, di.Dev); err != nil {
				return nil, err
			}
		}
	}

	// Initialize the fabric, cascading into every device.
	for _, ii := range sys.ios {
		if err := initIO(ii.IO); err != nil {
			return nil, err
		}
	}

	if sys.Verbose {
		log.Printf("system: %v bound, %d cpus, %d regions, %d devices",
			machine.Name(), len(sys.cpus), len(sys.mems), len(sys.devs))
	}
	return sys, nil
}
