package system

import (
	"github.com/rcornwell/ts-sim/config"
	"github.com/rcornwell/ts-sim/cpu"
	"github.com/rcornwell/ts-sim/io"
	"github.com/rcornwell/ts-sim/memory"
)

// The glue below pattern-matches width variants. Binding refuses
// mismatched widths; matched widths dispatch to the monomorphic
// component.

func attachMemory(cv cpu.Variant, mv memory.Variant, cpuName string) error {
	if cv.Width != mv.Width {
		return ErrIncompatibleWidth{
			CPU: cpuName, Peripheral: mv.Name(),
			CPUWidth: cv.Width, PerWidth: mv.Width,
		}
	}
	switch cv.Width {
	case memory.U8:
		return cv.U8.AddMemory(mv.U8)
	case memory.U16:
		return cv.U16.AddMemory(mv.U16)
	case memory.U32:
		return cv.U32.AddMemory(mv.U32)
	case memory.U64:
		return cv.U64.AddMemory(mv.U64)
	}
	return nil
}

func attachIO(cv cpu.Variant, iv io.Variant, cpuName string) error {
	if cv.Width != iv.Width {
		return ErrIncompatibleWidth{
			CPU: cpuName, Peripheral: iv.Name(),
			CPUWidth: cv.Width, PerWidth: iv.Width,
		}
	}
	switch cv.Width {
	case memory.U8:
		cv.U8.AddIO(iv.U8)
	case memory.U16:
		cv.U16.AddIO(iv.U16)
	case memory.U32:
		cv.U32.AddIO(iv.U32)
	case memory.U64:
		cv.U64.AddIO(iv.U64)
	}
	return nil
}

func attachDevice(iv io.Variant, dv io.DevVariant) error {
	if iv.Width != dv.Width {
		return ErrIncompatibleWidth{
			CPU: iv.Name(), Peripheral: dv.Name(),
			CPUWidth: iv.Width, PerWidth: dv.Width,
		}
	}
	switch iv.Width {
	case memory.U8:
		return iv.U8.AddDevice(dv.U8)
	case memory.U16:
		return iv.U16.AddDevice(dv.U16)
	case memory.U32:
		return iv.U32.AddDevice(dv.U32)
	case memory.U64:
		return iv.U64.AddDevice(dv.U64)
	}
	return nil
}

// bindIOMemory lends each CPU's memory to its IO controller so devices
// can run direct transfers.
func bindIOMemory(cv cpu.Variant) {
	switch cv.Width {
	case memory.U8:
		if ctl := cv.U8.IO(); ctl != nil {
			ctl.SetMemory(cv.U8.Memory())
		}
	case memory.U16:
		if ctl := cv.U16.IO(); ctl != nil {
			ctl.SetMemory(cv.U16.Memory())
		}
	case memory.U32:
		if ctl := cv.U32.IO(); ctl != nil {
			ctl.SetMemory(cv.U32.Memory())
		}
	case memory.U64:
		if ctl := cv.U64.IO(); ctl != nil {
			ctl.SetMemory(cv.U64.Memory())
		}
	}
}

func memOptions(mv memory.Variant) *config.Options {
	switch mv.Width {
	case memory.U8:
		return mv.U8.Options()
	case memory.U16:
		return mv.U16.Options()
	case memory.U32:
		return mv.U32.Options()
	case memory.U64:
		return mv.U64.Options()
	}
	return nil
}

func ioOptions(iv io.Variant) *config.Options {
	switch iv.Width {
	case memory.U8:
		return iv.U8.Options()
	case memory.U16:
		return iv.U16.Options()
	case memory.U32:
		return iv.U32.Options()
	case memory.U64:
		return iv.U64.Options()
	}
	return nil
}

func devOptions(dv io.DevVariant) *config.Options {
	switch dv.Width {
	case memory.U8:
		return dv.U8.Options()
	case memory.U16:
		return dv.U16.Options()
	case memory.U32:
		return dv.U32.Options()
	case memory.U64:
		return dv.U64.Options()
	}
	return nil
}

func devSetAddress(dv io.DevVariant, addr uint) {
	switch dv.Width {
	case memory.U8:
		dv.U8.SetAddress(addr)
	case memory.U16:
		dv.U16.SetAddress(addr)
	case memory.U32:
		dv.U32.SetAddress(addr)
	case memory.U64:
		dv.U64.SetAddress(addr)
	}
}

// devImpl returns the concrete device so the binder can probe optional
// interfaces, such as the halt hook.
func devImpl(dv io.DevVariant) any {
	switch dv.Width {
	case memory.U8:
		return dv.U8
	case memory.U16:
		return dv.U16
	case memory.U32:
		return dv.U32
	case memory.U64:
		return dv.U64
	}
	return nil
}

// loader is the backdoor leaf regions expose for image loading.
type loader interface {
	Load(data []uint8, offset uint) error
}

// loadMemory splats raw bytes into a byte wide region. Wider regions
// have no defined file format.
func loadMemory(mv memory.Variant, data []byte) error {
	if mv.Width != memory.U8 {
		return ErrUnknownType{Kind: "load width", Name: mv.Width.String()}
	}
	ld, ok := mv.U8.(loader)
	if !ok {
		return ErrUnknownType{Kind: "loadable memory", Name: mv.Name()}
	}
	return ld.Load(data, 0)
}

func initCPU(cv cpu.Variant) error {
	switch cv.Width {
	case memory.U8:
		return cv.U8.Init()
	case memory.U16:
		return cv.U16.Init()
	case memory.U32:
		return cv.U32.Init()
	case memory.U64:
		return cv.U64.Init()
	}
	return nil
}

// defaultIO returns the controller a CPU pre-attached at Init, if any.
func defaultIO(cv cpu.Variant) (io.Variant, bool) {
	switch cv.Width {
	case memory.U8:
		if ctl := cv.U8.DefaultIO(); ctl != nil {
			return io.V8(ctl), true
		}
	case memory.U16:
		if ctl := cv.U16.DefaultIO(); ctl != nil {
			return io.V16(ctl), true
		}
	case memory.U32:
		if ctl := cv.U32.DefaultIO(); ctl != nil {
			return io.V32(ctl), true
		}
	case memory.U64:
		if ctl := cv.U64.DefaultIO(); ctl != nil {
			return io.V64(ctl), true
		}
	}
	return io.Variant{}, false
}

// lifecycle is the common control surface of IO controllers.
type lifecycle interface {
	Start()
	Reset()
	Stop()
	Shutdown()
}

// runner is the control surface of CPUs.
type runner interface {
	lifecycle
	Run()
}

func cpuCall(cv cpu.Variant, fn func(runner)) {
	switch cv.Width {
	case memory.U8:
		fn(cv.U8)
	case memory.U16:
		fn(cv.U16)
	case memory.U32:
		fn(cv.U32)
	case memory.U64:
		fn(cv.U64)
	}
}

func initIO(iv io.Variant) error {
	switch iv.Width {
	case memory.U8:
		return iv.U8.Init()
	case memory.U16:
		return iv.U16.Init()
	case memory.U32:
		return iv.U32.Init()
	case memory.U64:
		return iv.U64.Init()
	}
	return nil
}

func ioCall(iv io.Variant, fn func(lifecycle)) {
	switch iv.Width {
	case memory.U8:
		fn(iv.U8)
	case memory.U16:
		fn(iv.U16)
	case memory.U32:
		fn(iv.U32)
	case memory.U64:
		fn(iv.U64)
	}
}
