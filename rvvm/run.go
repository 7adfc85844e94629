package rvvm

import (
	"fmt"
	"strings"

	"github.com/reusee/rv/rvcode"
)

// Run executes program until OP_RETURN and returns the returned value.
// The stack is empty after Run returns.
func (v *VM) Run(program *rvcode.Program) (ret rvcode.Value, err error) {
	v.program = program
	v.ip = 0
	v.resetStack()
	defer v.resetStack()

	code := program.Code
	for {
		if v.ip >= len(code) {
			return rvcode.None, v.runtimeError(len(code)-1, msgNoReturn, nil)
		}
		if v.trace {
			v.traceInstruction()
		}

		offset := v.ip
		op := rvcode.OpCode(code[v.ip])
		v.ip++

		switch op {

		case rvcode.OpConst:
			if v.ip >= len(code) {
				return rvcode.None, v.runtimeError(offset, "Missing constant operand", nil)
			}
			idx := int(code[v.ip])
			v.ip++
			if idx >= len(program.Consts) {
				return rvcode.None, v.runtimeError(offset, fmt.Sprintf("Constant %d out of range", idx), nil)
			}
			err = v.push(program.Consts[idx])

		case rvcode.OpNone:
			err = v.push(rvcode.None)

		case rvcode.OpTrue:
			err = v.push(rvcode.True)

		case rvcode.OpFalse:
			err = v.push(rvcode.False)

		case rvcode.OpEqual:
			var a, b rvcode.Value
			if b, err = v.pop(); err == nil {
				if a, err = v.pop(); err == nil {
					err = v.push(rvcode.BoolValue(rvcode.Equal(a, b)))
				}
			}

		case rvcode.OpGreater, rvcode.OpLess,
			rvcode.OpAdd, rvcode.OpSubtract, rvcode.OpMultiply, rvcode.OpDivide:
			var a, b float64
			a, b, err = v.popNumbers()
			if err == nil {
				err = v.push(binary(op, a, b))
			}

		case rvcode.OpNot:
			var a rvcode.Value
			if a, err = v.pop(); err == nil {
				err = v.push(rvcode.BoolValue(a.Falsy()))
			}

		case rvcode.OpNegate:
			var a rvcode.Value
			if a, err = v.peek(0); err != nil {
				break
			}
			n, ok := a.Number()
			if !ok {
				return rvcode.None, v.runtimeError(offset, msgOperandNotNumber, nil)
			}
			v.stack[v.sp-1] = rvcode.NumberValue(-n)

		case rvcode.OpReturn:
			if ret, err = v.pop(); err != nil {
				break
			}
			return ret, nil

		default:
			return rvcode.None, v.runtimeError(offset, fmt.Sprintf("Unknown opcode %d", op), nil)
		}

		if err != nil {
			if typeErr, ok := err.(typeError); ok {
				return rvcode.None, v.runtimeError(offset, string(typeErr), nil)
			}
			return rvcode.None, v.runtimeError(offset, err.Error(), err)
		}
	}
}

type typeError string

func (t typeError) Error() string {
	return string(t)
}

// popNumbers pops b then a, both of which must be numbers.
// Nothing is popped on a type error.
func (v *VM) popNumbers() (a, b float64, err error) {
	vb, err := v.peek(0)
	if err != nil {
		return
	}
	va, err := v.peek(1)
	if err != nil {
		return
	}
	var okA, okB bool
	a, okA = va.Number()
	b, okB = vb.Number()
	if !okA || !okB {
		err = typeError(msgOperandsNotNumbers)
		return
	}
	v.sp -= 2
	return
}

func binary(op rvcode.OpCode, a, b float64) rvcode.Value {
	switch op {
	case rvcode.OpGreater:
		return rvcode.BoolValue(a > b)
	case rvcode.OpLess:
		return rvcode.BoolValue(a < b)
	case rvcode.OpAdd:
		return rvcode.NumberValue(a + b)
	case rvcode.OpSubtract:
		return rvcode.NumberValue(a - b)
	case rvcode.OpMultiply:
		return rvcode.NumberValue(a * b)
	case rvcode.OpDivide:
		return rvcode.NumberValue(a / b)
	}
	panic(fmt.Errorf("not a binary opcode: %v", op))
}

func (v *VM) runtimeError(offset int, msg string, cause error) *RuntimeError {
	line := v.program.Line(offset)
	v.resetStack()
	v.logger.Debug("runtime error",
		"message", msg,
		"line", line,
		"offset", offset,
	)
	return &RuntimeError{
		Message: msg,
		Line:    line,
		Offset:  offset,
		Err:     cause,
	}
}

func (v *VM) traceInstruction() {
	var b strings.Builder
	rvcode.DisassembleInstruction(&b, v.program, v.ip)
	v.logger.Info("trace",
		"stack", v.stackString(),
		"instruction", strings.TrimSuffix(b.String(), "\n"),
	)
}
