package transform

import "errors"

var (
	ErrCompile = errors.New("expression compile error")
	ErrEval    = errors.New("expression evaluation error")
)
