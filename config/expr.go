package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predeclared size constants available inside $( ... ) expressions.
var predeclared = starlark.StringDict{
	"KB": starlark.MakeInt(1024),
	"MB": starlark.MakeInt(1024 * 1024),
	"GB": starlark.MakeInt(1024 * 1024 * 1024),
}

// Eval computes the value of a $( ... ) configuration expression.
func Eval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, predeclared)
	if err != nil {
		err = ErrExpression{Expr: expr, Err: err}
		return
	}
	rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression{Expr: expr, Err: ErrOptionValue}
		return
	}
	rcInt, ok := rc.(starlark.Int)
	if !ok {
		err = ErrExpression{Expr: expr, Err: ErrOptionValue}
		return
	}
	rc64, ok := rcInt.Int64()
	if !ok {
		err = ErrExpression{Expr: expr, Err: ErrOptionValue}
		return
	}
	value = uint64(rc64)
	return
}
