package config

import (
	"errors"

	"github.com/rcornwell/ts-sim/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrSystemFirst = errors.New(f("system must be defined first"))
	ErrSystemOnce  = errors.New(f("system can only be used once"))
	ErrSystemName  = errors.New(f("system must be followed by a name"))
	ErrCpuModel    = errors.New(f("cpu must be followed by a model"))
	ErrMemModel    = errors.New(f("memory must be followed by a model"))
	ErrMemSize     = errors.New(f("memory must be given a size"))
	ErrDevModel    = errors.New(f("device must be followed by a model"))
	ErrOptionName  = errors.New(f("option name expected"))
	ErrOptionValue = errors.New(f("option value expected"))
	ErrOptionEnd   = errors.New(f("missing ) after options"))
	ErrLoadPath    = errors.New(f("load must be followed by a quoted path"))
)

// ErrLexical indicates an unrecognized token in the configuration input.
type ErrLexical struct {
	Msg string
}

func (err ErrLexical) Error() string {
	return f("lexical error: %v", err.Msg)
}

// ErrUnknownKey indicates a statement keyword the parser does not support.
type ErrUnknownKey string

func (err ErrUnknownKey) Error() string {
	return f("unknown configuration keyword %q", string(err))
}

// ErrUnknownOption indicates an option name not recognized by the module
// the options were addressed to.
type ErrUnknownOption string

func (err ErrUnknownOption) Error() string {
	return f("unknown option %q", string(err))
}

// ErrBadOption indicates an option value of the wrong kind.
type ErrBadOption struct {
	Name string
	Want string
}

func (err ErrBadOption) Error() string {
	return f("option %q wants a %v value", err.Name, err.Want)
}

// ErrExpression indicates a $( ... ) expression that did not evaluate
// to an integer.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}
