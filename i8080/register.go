package i8080

import (
	"github.com/rcornwell/ts-sim/cpu"
	"github.com/rcornwell/ts-sim/io"
	"github.com/rcornwell/ts-sim/memory"
	"github.com/rcornwell/ts-sim/system"
)

// Register contributes the i8080 machine and its component factories
// to a registry.
func Register(reg *system.Registry) {
	st := reg.Machine("i8080", 1)
	st.CPU("i8080", func() cpu.Variant {
		return cpu.V8(New(I8080))
	})
	st.CPU("i8085", func() cpu.Variant {
		return cpu.V8(New(I8085))
	})
	st.Memory("ram", func(size, base uint) memory.Variant {
		return memory.V8(memory.NewRAM[uint8](size, base))
	})
	st.Memory("rom", func(size, base uint) memory.Variant {
		return memory.V8(memory.NewROM[uint8](size, base))
	})
	st.IO("ports", func() io.Variant {
		return io.V8(io.NewPortMap[uint8](256))
	})
	st.Device("2651", func() io.DevVariant {
		return io.DV8(NewConsole2651(nil))
	})
}
