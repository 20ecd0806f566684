package system

import (
	"errors"

	"github.com/rcornwell/ts-sim/memory"
	"github.com/rcornwell/ts-sim/translate"
)

var f = translate.From

var (
	ErrNoSystem    = errors.New(f("configuration defines no system"))
	ErrTooManyCPUs = errors.New(f("too many cpus defined"))
)

// ErrUnknownType reports a factory lookup that found nothing.
type ErrUnknownType struct {
	Kind string
	Name string
}

func (err ErrUnknownType) Error() string {
	return f("unknown %v type: %v", err.Kind, err.Name)
}

// ErrIncompatibleWidth reports an attempt to bind a peripheral to a
// CPU of a different cell width.
type ErrIncompatibleWidth struct {
	CPU        string
	Peripheral string
	CPUWidth   memory.Width
	PerWidth   memory.Width
}

func (err ErrIncompatibleWidth) Error() string {
	return f("cannot attach %v %v to %v cpu %v",
		err.PerWidth, err.Peripheral, err.CPUWidth, err.CPU)
}

// ErrLoad reports a failed memory load directive.
type ErrLoad struct {
	Path string
	Err  error
}

func (err ErrLoad) Error() string {
	return f("load %v: %v", err.Path, err.Err)
}

func (err ErrLoad) Unwrap() error {
	return err.Err
}
