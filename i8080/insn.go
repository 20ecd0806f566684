package i8080

// Instruction shapes. The shape tells how a descriptor's base opcode
// expands into dispatch entries and how operands print.
type shape int

const (
	sOPR  shape = iota // no operand
	sLXI               // register pair in bits 4-5, 16 bit immediate
	sREGX              // register pair in bits 4-5 (BC DE HL SP)
	sRP0               // register pair in bits 4-5 (BC DE HL PSW)
	sREG2              // register pair in bit 4 (BC DE)
	sABS               // 16 bit address operand
	sREG               // destination register in bits 3-5
	sIMMR              // register in bits 3-5, one immediate byte
	sMOV               // destination bits 3-5, source bits 0-2
	sSOPR              // source register in bits 0-2
	sIMM               // one immediate byte
	sRST               // vector number in bits 3-5
	sCCR               // condition in bits 3-5, return
	sCCJ               // condition in bits 3-5, absolute jump
	sCCC               // condition in bits 3-5, absolute call
)

// shapeMask selects the fixed opcode bits per shape.
var shapeMask = [...]uint8{
	sOPR: 0xff, sLXI: 0xcf, sREGX: 0xcf, sRP0: 0xcf, sREG2: 0xef,
	sABS: 0xff, sREG: 0xc7, sIMMR: 0xc7, sMOV: 0xc0, sSOPR: 0xf8,
	sIMM: 0xff, sRST: 0xc7, sCCR: 0xc7, sCCJ: 0xc7, sCCC: 0xc7,
}

// shapeLen is the instruction length per shape, in bytes.
var shapeLen = [...]int{
	sOPR: 1, sLXI: 3, sREGX: 1, sRP0: 1, sREG2: 1,
	sABS: 3, sREG: 1, sIMMR: 2, sMOV: 1, sSOPR: 1,
	sIMM: 2, sRST: 1, sCCR: 1, sCCJ: 3, sCCC: 3,
}

// insn describes one instruction family: its mnemonic, expansion
// shape, base opcode and the first model that defines it.
type insn struct {
	name  string
	shape shape
	base  uint8
	model Model
}

// insnTable is the full instruction set. Order matters for the
// disassembler: the first descriptor whose masked opcode matches wins,
// so HLT sits ahead of the MOV grid it punches a hole in.
var insnTable = []insn{
	{"nop", sOPR, 0x00, I8080},
	{"lxi", sLXI, 0x01, I8080},
	{"dad", sREGX, 0x09, I8080},
	{"stax", sREG2, 0x02, I8080},
	{"ldax", sREG2, 0x0a, I8080},
	{"shld", sABS, 0x22, I8080},
	{"lhld", sABS, 0x2a, I8080},
	{"sta", sABS, 0x32, I8080},
	{"lda", sABS, 0x3a, I8080},
	{"inr", sREG, 0x04, I8080},
	{"dcr", sREG, 0x05, I8080},
	{"inx", sREGX, 0x03, I8080},
	{"dcx", sREGX, 0x0b, I8080},
	{"mvi", sIMMR, 0x06, I8080},
	{"rlc", sOPR, 0x07, I8080},
	{"rrc", sOPR, 0x0f, I8080},
	{"ral", sOPR, 0x17, I8080},
	{"rar", sOPR, 0x1f, I8080},
	{"daa", sOPR, 0x27, I8080},
	{"cma", sOPR, 0x2f, I8080},
	{"stc", sOPR, 0x37, I8080},
	{"cmc", sOPR, 0x3f, I8080},
	{"hlt", sOPR, 0x76, I8080},
	{"mov", sMOV, 0x40, I8080},
	{"add", sSOPR, 0x80, I8080},
	{"adc", sSOPR, 0x88, I8080},
	{"sub", sSOPR, 0x90, I8080},
	{"sbb", sSOPR, 0x98, I8080},
	{"ana", sSOPR, 0xa0, I8080},
	{"xra", sSOPR, 0xa8, I8080},
	{"ora", sSOPR, 0xb0, I8080},
	{"cmp", sSOPR, 0xb8, I8080},
	{"r", sCCR, 0xc0, I8080},
	{"j", sCCJ, 0xc2, I8080},
	{"c", sCCC, 0xc4, I8080},
	{"pop", sRP0, 0xc1, I8080},
	{"ret", sOPR, 0xc9, I8080},
	{"pchl", sOPR, 0xe9, I8080},
	{"sphl", sOPR, 0xf9, I8080},
	{"adi", sIMM, 0xc6, I8080},
	{"aci", sIMM, 0xce, I8080},
	{"sui", sIMM, 0xd6, I8080},
	{"sbi", sIMM, 0xde, I8080},
	{"ani", sIMM, 0xe6, I8080},
	{"xri", sIMM, 0xee, I8080},
	{"ori", sIMM, 0xf6, I8080},
	{"cpi", sIMM, 0xfe, I8080},
	{"push", sRP0, 0xc5, I8080},
	{"call", sABS, 0xcd, I8080},
	{"jmp", sABS, 0xc3, I8080},
	{"out", sIMM, 0xd3, I8080},
	{"in", sIMM, 0xdb, I8080},
	{"di", sOPR, 0xf3, I8080},
	{"ei", sOPR, 0xfb, I8080},
	{"xthl", sOPR, 0xe3, I8080},
	{"xchg", sOPR, 0xeb, I8080},
	{"rst", sRST, 0xc7, I8080},
	{"rim", sOPR, 0x20, I8085},
	{"sim", sOPR, 0x30, I8085},
	{"dsub", sOPR, 0x08, I8085},
	{"arhl", sOPR, 0x10, I8085},
	{"rdel", sOPR, 0x18, I8085},
	{"ldhi", sIMM, 0x28, I8085},
	{"ldsi", sIMM, 0x38, I8085},
	{"rstv", sOPR, 0xcb, I8085},
	{"shlx", sOPR, 0xd9, I8085},
	{"jnx5", sABS, 0xdd, I8085},
	{"lhlx", sOPR, 0xed, I8085},
	{"jx5", sABS, 0xfd, I8085},
}

// noOperand maps the mnemonics of no-operand and immediate forms to
// their handlers.
var noOperand = map[string]func(*Core){
	"nop": (*Core).opNop, "rlc": (*Core).opRlc, "rrc": (*Core).opRrc,
	"ral": (*Core).opRal, "rar": (*Core).opRar, "daa": (*Core).opDaa,
	"cma": (*Core).opCma, "stc": (*Core).opStc, "cmc": (*Core).opCmc,
	"hlt": (*Core).opHlt, "ret": (*Core).opRet, "pchl": (*Core).opPchl,
	"sphl": (*Core).opSphl, "call": (*Core).opCall, "jmp": (*Core).opJmp,
	"out": (*Core).opOut, "in": (*Core).opIn, "di": (*Core).opDi,
	"ei": (*Core).opEi, "xthl": (*Core).opXthl, "xchg": (*Core).opXchg,
	"shld": (*Core).opShld, "lhld": (*Core).opLhld,
	"sta": (*Core).opSta, "lda": (*Core).opLda,
	"rim": (*Core).opRim, "sim": (*Core).opSim,
	"dsub": (*Core).opDsub, "arhl": (*Core).opArhl,
	"rdel": (*Core).opRdel, "ldhi": (*Core).opLdhi,
	"ldsi": (*Core).opLdsi, "rstv": (*Core).opRstv,
	"shlx": (*Core).opShlx, "lhlx": (*Core).opLhlx,
	"jnx5": (*Core).opJnx5, "jx5": (*Core).opJx5,
}

// immHandler maps immediate ALU mnemonics to the shared register
// handlers; the dispatch wrapper fetches the operand.
var immHandler = map[string]func(*Core, uint8){
	"adi": (*Core).opAdd, "aci": (*Core).opAdc,
	"sui": (*Core).opSub, "sbi": (*Core).opSbb,
	"ani": (*Core).opAna, "xri": (*Core).opXra,
	"ori": (*Core).opOra, "cpi": (*Core).opCmp,
}

// soprHandler maps register ALU mnemonics to their handlers.
var soprHandler = map[string]func(*Core, uint8){
	"add": (*Core).opAdd, "adc": (*Core).opAdc,
	"sub": (*Core).opSub, "sbb": (*Core).opSbb,
	"ana": (*Core).opAna, "xra": (*Core).opXra,
	"ora": (*Core).opOra, "cmp": (*Core).opCmp,
}

// pairHandler maps register pair mnemonics to their handlers.
var pairHandler = map[string]func(*Core, int){
	"lxi": (*Core).opLxi, "dad": (*Core).opDad,
	"inx": (*Core).opInx, "dcx": (*Core).opDcx,
	"stax": (*Core).opStax, "ldax": (*Core).opLdax,
	"pop": (*Core).opPop, "push": (*Core).opPush,
}

// Dispatch tables for the two models, built once at package load.
var (
	dispatch8080 [256]func(*Core)
	dispatch8085 [256]func(*Core)
)

func init() {
	buildDispatch(&dispatch8080, I8080)
	buildDispatch(&dispatch8085, I8085)
}

// buildDispatch expands the descriptor table into the 256 entry opcode
// dispatch for one model. Opcodes the model leaves undefined execute
// as NOP; the 8085 logs them when verbose.
func buildDispatch(table *[256]func(*Core), model Model) {
	for op := range 256 {
		op := uint8(op)
		table[op] = func(c *Core) { c.illegal(op) }
	}
	for _, ins := range insnTable {
		if ins.model > model {
			continue
		}
		expand(table, ins)
	}
}

func expand(table *[256]func(*Core), ins insn) {
	switch ins.shape {
	case sOPR, sABS, sIMM:
		fn := noOperand[ins.name]
		if imm, ok := immHandler[ins.name]; ok {
			fn = func(c *Core) { imm(c, c.fetch()) }
		}
		table[ins.base] = fn

	case sLXI, sREGX:
		fn := pairHandler[ins.name]
		for i, rp := range []int{BC, DE, HL, SP} {
			table[ins.base+uint8(i)<<4] = func(c *Core) { fn(c, rp) }
		}

	case sRP0:
		fn := pairHandler[ins.name]
		for i, rp := range []int{BC, DE, HL, PW} {
			table[ins.base+uint8(i)<<4] = func(c *Core) { fn(c, rp) }
		}

	case sREG2:
		fn := pairHandler[ins.name]
		for i, rp := range []int{BC, DE} {
			table[ins.base+uint8(i)<<4] = func(c *Core) { fn(c, rp) }
		}

	case sREG:
		var fn func(*Core, int)
		if ins.name == "inr" {
			fn = (*Core).opInr
		} else {
			fn = (*Core).opDcr
		}
		for r := B; r <= A; r++ {
			table[ins.base+uint8(r)<<3] = func(c *Core) { fn(c, r) }
		}

	case sIMMR:
		for r := B; r <= A; r++ {
			table[ins.base+uint8(r)<<3] = func(c *Core) { c.setReg(r, c.fetch()) }
		}

	case sMOV:
		for dst := B; dst <= A; dst++ {
			for src := B; src <= A; src++ {
				if dst == M && src == M {
					continue // that slot is HLT
				}
				op := ins.base + uint8(dst)<<3 + uint8(src)
				table[op] = func(c *Core) { c.setReg(dst, c.getReg(src)) }
			}
		}

	case sSOPR:
		fn := soprHandler[ins.name]
		for r := B; r <= A; r++ {
			table[ins.base+uint8(r)] = func(c *Core) { fn(c, c.getReg(r)) }
		}

	case sRST:
		for n := 0; n < 8; n++ {
			table[ins.base+uint8(n)<<3] = func(c *Core) { c.opRst(n) }
		}

	case sCCR, sCCJ, sCCC:
		var fn func(*Core, int)
		switch ins.shape {
		case sCCR:
			fn = (*Core).opRcc
		case sCCJ:
			fn = (*Core).opJcc
		default:
			fn = (*Core).opCcc
		}
		for n := 0; n < 8; n++ {
			table[ins.base+uint8(n)<<3] = func(c *Core) { fn(c, n) }
		}
	}
}

// insTime is the T-state cost per opcode. Taken conditional calls and
// returns add 6 on top of the table entry.
var insTime = [256]uint8{
	/*         0   1   2   3   4   5   6   7 */
	/* 00x */ 4, 10, 7, 5, 5, 5, 7, 4,
	/* 01x */ 4, 10, 7, 5, 5, 5, 7, 4,
	/* 02x */ 4, 10, 7, 5, 5, 5, 7, 4,
	/* 03x */ 4, 10, 7, 5, 5, 5, 7, 4,
	/* 04x */ 4, 10, 16, 5, 5, 5, 7, 4,
	/* 05x */ 4, 10, 16, 5, 5, 5, 7, 4,
	/* 06x */ 4, 10, 13, 5, 10, 10, 10, 4,
	/* 07x */ 4, 10, 13, 5, 5, 5, 7, 4,

	/* 10x */ 5, 5, 5, 5, 5, 5, 7, 5,
	/* 11x */ 5, 5, 5, 5, 5, 5, 7, 5,
	/* 12x */ 5, 5, 5, 5, 5, 5, 7, 5,
	/* 13x */ 5, 5, 5, 5, 5, 5, 7, 5,
	/* 14x */ 5, 5, 5, 5, 5, 5, 7, 5,
	/* 15x */ 5, 5, 5, 5, 5, 5, 7, 5,
	/* 16x */ 7, 7, 7, 7, 7, 7, 7, 7,
	/* 17x */ 5, 5, 5, 5, 5, 5, 7, 5,

	/* 20x */ 4, 4, 4, 4, 4, 4, 7, 4,
	/* 21x */ 4, 4, 4, 4, 4, 4, 7, 4,
	/* 22x */ 4, 4, 4, 4, 4, 4, 7, 4,
	/* 23x */ 4, 4, 4, 4, 4, 4, 7, 4,
	/* 24x */ 4, 4, 4, 4, 4, 4, 7, 4,
	/* 25x */ 4, 4, 4, 4, 4, 4, 7, 4,
	/* 26x */ 4, 4, 4, 4, 4, 4, 7, 4,
	/* 27x */ 4, 4, 4, 4, 4, 4, 7, 4,

	/* 30x */ 5, 10, 10, 10, 11, 11, 7, 11,
	/* 31x */ 5, 10, 10, 4, 11, 17, 7, 11,
	/* 32x */ 5, 10, 10, 10, 11, 11, 7, 11,
	/* 33x */ 5, 10, 10, 10, 11, 4, 7, 11,
	/* 34x */ 5, 10, 10, 18, 11, 11, 7, 11,
	/* 35x */ 5, 5, 10, 4, 11, 4, 7, 11,
	/* 36x */ 5, 10, 10, 4, 11, 11, 7, 11,
	/* 37x */ 5, 5, 10, 4, 11, 4, 7, 11,
}
