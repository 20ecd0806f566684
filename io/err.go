package io

import (
	"errors"

	"github.com/rcornwell/ts-sim/translate"
)

var f = translate.From

var (
	ErrPortRange = errors.New(f("device ports outside controller range"))
	ErrNoConsole = errors.New(f("console not available"))
)
