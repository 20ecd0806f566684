package config

import (
	"strconv"
)

// ValueKind tags what followed an option's equal sign, if anything.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueWord
	ValueNumber
	ValueString
)

// Option is one raw `name` or `name = value` term from an option list.
// Options are captured during parsing and applied to a module once the
// module exists.
type Option struct {
	Name string
	Kind ValueKind
	Word string
	Num  uint64
}

// Options describes the option names a module recognizes and where
// their values land. Modules build one in their Options method; the
// binder applies the raw option list from the configuration to it.
type Options struct {
	Title string
	defs  map[string]optionDef
}

type optionDef struct {
	desc  string
	apply func(Option) error
}

// NewOptions creates an empty option set with a describing title.
func NewOptions(title string) *Options {
	return &Options{Title: title, defs: make(map[string]optionDef)}
}

// Uint registers a numeric option. Word values are accepted when they
// parse as decimal numbers.
func (o *Options) Uint(name, desc string, p *uint, def uint) *Options {
	*p = def
	o.defs[name] = optionDef{desc: desc, apply: func(opt Option) error {
		switch opt.Kind {
		case ValueNumber:
			*p = uint(opt.Num)
		case ValueWord:
			v, err := strconv.ParseUint(opt.Word, 10, 64)
			if err != nil {
				return ErrBadOption{Name: name, Want: "number"}
			}
			*p = uint(v)
		default:
			return ErrBadOption{Name: name, Want: "number"}
		}
		return nil
	}}
	return o
}

// Bool registers a flag option; naming it sets the target. A value of
// an identifier "on"/"off" or a number is also accepted.
func (o *Options) Bool(name, desc string, p *bool, def bool) *Options {
	*p = def
	o.defs[name] = optionDef{desc: desc, apply: func(opt Option) error {
		switch opt.Kind {
		case ValueNone:
			*p = true
		case ValueNumber:
			*p = opt.Num != 0
		case ValueWord:
			switch opt.Word {
			case "on", "true", "yes":
				*p = true
			case "off", "false", "no":
				*p = false
			default:
				return ErrBadOption{Name: name, Want: "flag"}
			}
		default:
			return ErrBadOption{Name: name, Want: "flag"}
		}
		return nil
	}}
	return o
}

// String registers a text option taking a word or quoted string.
func (o *Options) String(name, desc string, p *string, def string) *Options {
	*p = def
	o.defs[name] = optionDef{desc: desc, apply: func(opt Option) error {
		switch opt.Kind {
		case ValueWord, ValueString:
			*p = opt.Word
		default:
			return ErrBadOption{Name: name, Want: "string"}
		}
		return nil
	}}
	return o
}

// Apply walks a raw option list, applying each to its definition.
// Unknown names abort with ErrUnknownOption.
func (o *Options) Apply(opts []Option) error {
	for _, opt := range opts {
		def, ok := o.defs[opt.Name]
		if !ok {
			return ErrUnknownOption(opt.Name)
		}
		if err := def.apply(opt); err != nil {
			return err
		}
	}
	return nil
}

// Parse consumes a parenthesized option list from the lexer and applies
// it. The current token must be the opening parenthesis.
func (o *Options) Parse(lx *Lexer) error {
	opts, err := ParseOptionList(lx)
	if err != nil {
		return err
	}
	return o.Apply(opts)
}

// ParseOptionList captures a raw `( opt [= value] , ... )` list. The
// current token must be the opening parenthesis; on return the closing
// parenthesis has been consumed.
func ParseOptionList(lx *Lexer) (opts []Option, err error) {
	for {
		if err = lx.AdvanceWord(); err != nil {
			return
		}
		if lx.Token() == TokenRparen && len(opts) == 0 {
			return
		}
		if lx.Token() != TokenID {
			err = ErrOptionName
			return
		}
		opt := Option{Name: lx.Text()}

		if err = lx.Advance(); err != nil {
			return
		}
		if lx.Token() == TokenEqual {
			if err = lx.Advance(); err != nil {
				return
			}
			switch tok := lx.Token(); {
			case tok == TokenID || tok >= TokenSystem && tok <= TokenRO:
				// A keyword is an ordinary word in value position.
				opt.Kind = ValueWord
				opt.Word = lx.Text()
			case tok == TokenNumber:
				opt.Kind = ValueNumber
				opt.Num = lx.Value()
			case tok == TokenString:
				opt.Kind = ValueString
				opt.Word = lx.Text()
			default:
				err = ErrOptionValue
				return
			}
			if err = lx.Advance(); err != nil {
				return
			}
		}
		opts = append(opts, opt)

		switch lx.Token() {
		case TokenComma:
			continue
		case TokenRparen:
			return
		default:
			err = ErrOptionEnd
			return
		}
	}
}
