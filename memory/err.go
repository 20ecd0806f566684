package memory

import (
	"errors"

	"github.com/rcornwell/ts-sim/translate"
)

var f = translate.From

var (
	ErrAccess     = errors.New(f("invalid memory location"))
	ErrReadOnly   = errors.New(f("memory is read only"))
	ErrNoChildren = errors.New(f("memory cannot hold regions"))
	ErrChunkSize  = errors.New(f("chunk size must be a power of two"))
	ErrTooBig     = errors.New(f("region does not fit the address space"))
)

// ErrOverlap reports two regions claiming the same chunk of an Array
// controller. The install still happens, last writer wins; the loader
// is expected to reject the configuration.
type ErrOverlap struct {
	Name string
	Base uint
}

func (err ErrOverlap) Error() string {
	return f("region %q overlaps existing memory at %#x", err.Name, err.Base)
}
