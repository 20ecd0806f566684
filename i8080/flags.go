package i8080

import (
	"math/bits"
)

// flagTable maps a result byte to its sign, zero and even-parity
// flags. Every result-producing operation derives S/Z/P from this
// table and nothing else sets them.
var flagTable [256]uint8

func init() {
	for i := range flagTable {
		var v uint8
		if bits.OnesCount8(uint8(i))%2 == 0 {
			v |= PAR
		}
		if i == 0 {
			v |= ZERO
		}
		if i&0x80 != 0 {
			v |= SIGN
		}
		flagTable[i] = v
	}
}

// flagGen returns the S/Z/P flags for a result byte. On the 8080 the V
// bit reads as always set.
func (c *Core) flagGen(v uint8) uint8 {
	if c.model == I8085 {
		return flagTable[v]
	}
	return flagTable[v] | VFLG
}
