package i8080

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

// aluCPU is a bare processor for driving handlers directly.
func aluCPU(model Model) *Core {
	c := New(model)
	c.Reset()
	return c
}

// Even parity over the result byte, for every byte.
func TestFlags_ParityTable(t *testing.T) {
	assert := assert.New(t)

	for x := 0; x < 256; x++ {
		even := bits.OnesCount8(uint8(x))%2 == 0
		assert.Equal(even, flagTable[x]&PAR != 0, "x=%#x", x)
	}
}

func TestFlags_SignZero(t *testing.T) {
	assert := assert.New(t)

	assert.NotZero(flagTable[0] & ZERO)
	for x := 1; x < 256; x++ {
		assert.Zero(flagTable[x]&ZERO, "x=%#x", x)
		assert.Equal(x&0x80 != 0, flagTable[x]&SIGN != 0, "x=%#x", x)
	}
}

// Replaying an operation from the same inputs yields the same PSW.
func TestFlags_Purity(t *testing.T) {
	assert := assert.New(t)

	inputs := []struct{ a, v, carry uint8 }{
		{0x00, 0x00, 0}, {0xff, 0x01, 0}, {0x7f, 0x01, 1},
		{0x80, 0x80, 0}, {0x0f, 0x01, 1}, {0x3c, 0xc3, 0},
	}
	for _, in := range inputs {
		var words []uint8
		for i := 0; i < 2; i++ {
			c := aluCPU(I8085)
			c.regs[A] = in.a
			c.psw = in.carry & CARRY
			c.opAdc(in.v)
			words = append(words, c.psw)
		}
		assert.Equal(words[0], words[1], "a=%#x v=%#x", in.a, in.v)
	}
}

// The 8080 flag word always reads bit 1 set and bits 3 and 5 clear.
func TestFlags_FixedBits8080(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []uint8{0x00, 0x0f, 0x80, 0xff} {
		c := aluCPU(I8080)
		c.regs[A] = v
		c.opAdd(v)
		assert.NotZero(c.psw&VFLG, "v=%#x", v)
		assert.Zero(c.psw&0x08, "v=%#x", v)
		assert.Zero(c.psw&XFLG, "v=%#x", v)
	}
}

// Borrow follows the 8080 convention: the carry out of the
// complement-add is inverted.
func TestALU_SubBorrow(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.regs[A] = 0x05
	c.opSub(0x03)
	assert.Equal(uint8(0x02), c.regs[A])
	assert.Zero(c.psw & CARRY) // no borrow

	c.regs[A] = 0x03
	c.opSub(0x05)
	assert.Equal(uint8(0xfe), c.regs[A])
	assert.NotZero(c.psw & CARRY) // borrow
	assert.NotZero(c.psw & SIGN)
}

func TestALU_SbbUsesInvertedCarry(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.regs[A] = 0x10
	c.psw |= CARRY // borrow in
	c.opSbb(0x05)
	assert.Equal(uint8(0x0a), c.regs[A])
}

func TestALU_CmpLeavesA(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.regs[A] = 0x42
	c.opCmp(0x42)
	assert.Equal(uint8(0x42), c.regs[A])
	assert.NotZero(c.psw & ZERO)
	assert.Zero(c.psw & CARRY)

	c.opCmp(0x50)
	assert.NotZero(c.psw & CARRY)
}

func TestALU_AnaAuxCarry(t *testing.T) {
	assert := assert.New(t)

	// On the 8080 AC is bit 3 of (A | v).
	c := aluCPU(I8080)
	c.regs[A] = 0x08
	c.opAna(0x01)
	assert.NotZero(c.psw & AC)
	assert.Zero(c.psw & CARRY)

	c.regs[A] = 0x01
	c.opAna(0x02)
	assert.Zero(c.psw & AC)

	// The 8085 forces AC on.
	c = aluCPU(I8085)
	c.regs[A] = 0x01
	c.opAna(0x02)
	assert.NotZero(c.psw & AC)
}

func TestALU_XraOraClear(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.regs[A] = 0xf0
	c.psw |= CARRY | AC
	c.opXra(0x0f)
	assert.Equal(uint8(0xff), c.regs[A])
	assert.Zero(c.psw & CARRY)
	assert.Zero(c.psw & AC)

	c.psw |= CARRY
	c.opOra(0x00)
	assert.Zero(c.psw & CARRY)
	assert.NotZero(c.psw & SIGN)
}

func TestALU_IncrDecrPreserveCarry(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.psw |= CARRY
	c.regs[B] = 0x0f
	c.opInr(B)
	assert.Equal(uint8(0x10), c.regs[B])
	assert.NotZero(c.psw & AC)
	assert.NotZero(c.psw & CARRY)

	c.regs[B] = 0x10
	c.opDcr(B)
	assert.Equal(uint8(0x0f), c.regs[B])
	assert.Zero(c.psw & AC)
	assert.NotZero(c.psw & CARRY)

	c.regs[B] = 0x01
	c.opDcr(B)
	assert.NotZero(c.psw & ZERO)
}

func TestALU_Daa(t *testing.T) {
	assert := assert.New(t)

	// 0x15 + 0x27 = 0x3C, DAA corrects to 0x42.
	c := aluCPU(I8080)
	c.regs[A] = 0x15
	c.opAdd(0x27)
	c.opDaa()
	assert.Equal(uint8(0x42), c.regs[A])
	assert.Zero(c.psw & CARRY)

	// 0x99 + 0x01 rolls into the carry.
	c = aluCPU(I8080)
	c.regs[A] = 0x99
	c.opAdd(0x01)
	c.opDaa()
	assert.Equal(uint8(0x00), c.regs[A])
	assert.NotZero(c.psw & CARRY)
}

func TestALU_Rotates(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.regs[A] = 0x81
	c.opRlc()
	assert.Equal(uint8(0x03), c.regs[A])
	assert.NotZero(c.psw & CARRY)

	c.regs[A] = 0x01
	c.opRrc()
	assert.Equal(uint8(0x80), c.regs[A])
	assert.NotZero(c.psw & CARRY)

	c.regs[A] = 0x80
	c.psw &^= CARRY
	c.opRal()
	assert.Equal(uint8(0x00), c.regs[A])
	assert.NotZero(c.psw & CARRY)
	c.opRal() // carry rotates back in
	assert.Equal(uint8(0x01), c.regs[A])
	assert.Zero(c.psw & CARRY)

	c.regs[A] = 0x01
	c.psw &^= CARRY
	c.opRar()
	assert.Equal(uint8(0x00), c.regs[A])
	assert.NotZero(c.psw & CARRY)
	c.opRar()
	assert.Equal(uint8(0x80), c.regs[A])
	assert.Zero(c.psw & CARRY)
}

func TestALU_DadCarry(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.setPair(HL, 0xc000)
	c.setPair(DE, 0x5000)
	c.opDad(DE)
	assert.Equal(uint16(0x1000), c.pair(HL))
	assert.NotZero(c.psw & CARRY)

	c.setPair(HL, 0x1000)
	c.setPair(DE, 0x2000)
	c.opDad(DE)
	assert.Equal(uint16(0x3000), c.pair(HL))
	assert.Zero(c.psw & CARRY)
}

func TestALU_InxDcxLeaveFlags(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	before := c.psw
	c.setPair(BC, 0xffff)
	c.opInx(BC)
	assert.Equal(uint16(0x0000), c.pair(BC))
	assert.Equal(before, c.psw)

	c.opDcx(BC)
	assert.Equal(uint16(0xffff), c.pair(BC))
	assert.Equal(before, c.psw)
}

func TestALU_CmaStcCmc(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.regs[A] = 0x55
	before := c.psw
	c.opCma()
	assert.Equal(uint8(0xaa), c.regs[A])
	assert.Equal(before, c.psw)

	c.opStc()
	assert.NotZero(c.psw & CARRY)
	c.opCmc()
	assert.Zero(c.psw & CARRY)
}

// Loading PSW+A keeps only the bits the model defines.
func TestALU_PopPswMasks(t *testing.T) {
	assert := assert.New(t)

	c := aluCPU(I8080)
	c.setPair(PW, 0x12ff)
	assert.Equal(uint8(0x12), c.regs[A])
	assert.Equal(uint8(SIGN|ZERO|AC|PAR|CARRY|VFLG), c.psw)

	c = aluCPU(I8085)
	c.setPair(PW, 0x34ff)
	assert.Equal(uint8(0x34), c.regs[A])
	assert.Equal(uint8(SIGN|ZERO|XFLG|AC|PAR|VFLG|CARRY), c.psw)
	assert.Zero(c.psw & 0x08)
}
