package config

import (
	"io"
)

// CPUStmt is one `cpu` statement.
type CPUStmt struct {
	Model   string
	Name    string
	Options []Option
}

// MemoryStmt is one `memory` statement.
type MemoryStmt struct {
	Model   string
	Name    string
	CPUs    []string // empty means every CPU
	Size    uint
	Base    uint
	HasBase bool
	Options []Option
	Load    string
}

// DeviceStmt is one `device` statement.
type DeviceStmt struct {
	Model      string
	Name       string
	IOs        []string // empty means every IO controller
	Address    uint
	HasAddress bool
	Size       uint
	HasSize    bool
	Units      uint
	Options    []Option
}

// File is the parsed form of a configuration: the system model plus the
// component statements in their original order. The binder consumes it.
type File struct {
	System   string
	CPUs     []CPUStmt
	Memories []MemoryStmt
	Devices  []DeviceStmt
}

// Parse reads a whole configuration. Newlines are ordinary whitespace;
// statements end where the next statement keyword begins.
func Parse(r io.Reader) (*File, error) {
	p := &parser{lx: NewLexer(r)}
	if err := p.lx.Advance(); err != nil {
		return nil, err
	}
	return p.parse()
}

// ParseString parses a configuration held in a string.
func ParseString(s string) (*File, error) {
	p := &parser{lx: NewLexerString(s)}
	if err := p.lx.Advance(); err != nil {
		return nil, err
	}
	return p.parse()
}

type parser struct {
	lx   *Lexer
	file File
}

func (p *parser) parse() (*File, error) {
	for {
		switch p.lx.Token() {
		case TokenEOF:
			return &p.file, nil
		case TokenSystem:
			if err := p.parseSystem(); err != nil {
				return nil, err
			}
		case TokenCPU:
			if err := p.parseCPU(); err != nil {
				return nil, err
			}
		case TokenMemory:
			if err := p.parseMemory(); err != nil {
				return nil, err
			}
		case TokenDevice:
			if err := p.parseDevice(); err != nil {
				return nil, err
			}
		default:
			return nil, ErrUnknownKey(p.lx.Text())
		}
	}
}

// system := "system" Id
func (p *parser) parseSystem() error {
	if p.file.System != "" {
		return ErrSystemOnce
	}
	if err := p.lx.AdvanceWord(); err != nil {
		return err
	}
	if p.lx.Token() != TokenID {
		return ErrSystemName
	}
	p.file.System = p.lx.Text()
	return p.lx.Advance()
}

// cpu := "cpu" Id [":" Id] [ "(" opts ")" ]
func (p *parser) parseCPU() error {
	if p.file.System == "" {
		return ErrSystemFirst
	}
	if err := p.lx.AdvanceWord(); err != nil {
		return err
	}
	if p.lx.Token() != TokenID {
		return ErrCpuModel
	}
	stmt := CPUStmt{Model: p.lx.Text()}

	if err := p.lx.Advance(); err != nil {
		return err
	}
	var err error
	if stmt.Name, err = p.parseName(); err != nil {
		return err
	}
	if stmt.Options, err = p.parseOptions(); err != nil {
		return err
	}
	p.file.CPUs = append(p.file.CPUs, stmt)
	return nil
}

// memory := "memory" Id [":" Id] [ "=" Id ("," Id)* ]
//           Number [ "," Number ] [ "(" opts ")" ] [ "load" "=" Str ]
func (p *parser) parseMemory() error {
	if p.file.System == "" {
		return ErrSystemFirst
	}
	if err := p.lx.AdvanceWord(); err != nil {
		return err
	}
	if p.lx.Token() != TokenID {
		return ErrMemModel
	}
	stmt := MemoryStmt{Model: p.lx.Text()}

	if err := p.lx.Advance(); err != nil {
		return err
	}
	var err error
	if stmt.Name, err = p.parseName(); err != nil {
		return err
	}

	// Which CPUs this region binds to.
	if p.lx.Token() == TokenEqual {
		for {
			if err = p.lx.AdvanceWord(); err != nil {
				return err
			}
			if p.lx.Token() != TokenID {
				return ErrMemModel
			}
			stmt.CPUs = append(stmt.CPUs, p.lx.Text())
			if err = p.lx.Advance(); err != nil {
				return err
			}
			if p.lx.Token() != TokenComma {
				break
			}
		}
	}

	if p.lx.Token() != TokenNumber {
		return ErrMemSize
	}
	stmt.Size = uint(p.lx.Value())
	if err = p.lx.Advance(); err != nil {
		return err
	}
	if p.lx.Token() == TokenComma {
		if err = p.lx.Advance(); err != nil {
			return err
		}
		if p.lx.Token() != TokenNumber {
			return ErrMemSize
		}
		stmt.Base = uint(p.lx.Value())
		stmt.HasBase = true
		if err = p.lx.Advance(); err != nil {
			return err
		}
	}

	if stmt.Options, err = p.parseOptions(); err != nil {
		return err
	}

	if p.lx.Token() == TokenLoad {
		if err = p.lx.Advance(); err != nil {
			return err
		}
		if p.lx.Token() != TokenEqual {
			return ErrLoadPath
		}
		if err = p.lx.Advance(); err != nil {
			return err
		}
		if p.lx.Token() != TokenString {
			return ErrLoadPath
		}
		stmt.Load = p.lx.Text()
		if err = p.lx.Advance(); err != nil {
			return err
		}
	}

	p.file.Memories = append(p.file.Memories, stmt)
	return nil
}

// device := "device" Id [":" Id] [ "=" Number [ "," Number ] ]
//           [ "(" opts ")" ] [ "units" "=" Number ]
func (p *parser) parseDevice() error {
	if p.file.System == "" {
		return ErrSystemFirst
	}
	if err := p.lx.AdvanceWord(); err != nil {
		return err
	}
	if p.lx.Token() != TokenID {
		return ErrDevModel
	}
	stmt := DeviceStmt{Model: p.lx.Text()}

	if err := p.lx.Advance(); err != nil {
		return err
	}
	var err error
	if stmt.Name, err = p.parseName(); err != nil {
		return err
	}

	if p.lx.Token() == TokenEqual {
		if err = p.lx.Advance(); err != nil {
			return err
		}
		if p.lx.Token() != TokenNumber {
			return ErrDevModel
		}
		stmt.Address = uint(p.lx.Value())
		stmt.HasAddress = true
		if err = p.lx.Advance(); err != nil {
			return err
		}
		if p.lx.Token() == TokenComma {
			if err = p.lx.Advance(); err != nil {
				return err
			}
			if p.lx.Token() != TokenNumber {
				return ErrDevModel
			}
			stmt.Size = uint(p.lx.Value())
			stmt.HasSize = true
			if err = p.lx.Advance(); err != nil {
				return err
			}
		}
	}

	if stmt.Options, err = p.parseOptions(); err != nil {
		return err
	}

	if p.lx.Token() == TokenUnits {
		if err = p.lx.Advance(); err != nil {
			return err
		}
		if p.lx.Token() != TokenEqual {
			return ErrDevModel
		}
		if err = p.lx.Advance(); err != nil {
			return err
		}
		if p.lx.Token() != TokenNumber {
			return ErrDevModel
		}
		stmt.Units = uint(p.lx.Value())
		if err = p.lx.Advance(); err != nil {
			return err
		}
	}

	p.file.Devices = append(p.file.Devices, stmt)
	return nil
}

// parseName consumes an optional ":" Id and leaves the lexer on the
// following token.
func (p *parser) parseName() (name string, err error) {
	if p.lx.Token() != TokenColon {
		return
	}
	if err = p.lx.AdvanceWord(); err != nil {
		return
	}
	if p.lx.Token() == TokenID {
		name = p.lx.Text()
	}
	err = p.lx.Advance()
	return
}

// parseOptions consumes an optional option list and leaves the lexer on
// the following token.
func (p *parser) parseOptions() (opts []Option, err error) {
	if p.lx.Token() != TokenLparen {
		return
	}
	if opts, err = ParseOptionList(p.lx); err != nil {
		return
	}
	err = p.lx.Advance()
	return
}
