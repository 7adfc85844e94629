package rvvm

import (
	"errors"
	"fmt"
)

var (
	ErrStackOverflow  = errors.New("Stack overflow")
	ErrStackUnderflow = errors.New("Stack underflow")
)

const (
	msgOperandsNotNumbers = "Unmatching type, operands must be numbers"
	msgOperandNotNumber   = "Unmatching type, operand must be a number"
	msgNoReturn           = "Program ended without OP_RETURN"
)

// RuntimeError aborts a run. Line is the source line of the instruction at
// Offset.
type RuntimeError struct {
	Message string
	Line    int
	Offset  int
	Err     error
}

func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%s\non line %d", r.Message, r.Line)
}

func (r *RuntimeError) Unwrap() error {
	return r.Err
}
