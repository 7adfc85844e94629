package rvcode

import "strconv"

type OpCode byte

const (
	OpConst OpCode = iota
	OpNone
	OpTrue
	OpFalse
	OpEqual
	OpGreater
	OpLess
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNot
	OpNegate
	OpReturn
)

var opNames = [...]string{
	OpConst:    "OP_CONST",
	OpNone:     "OP_NONE",
	OpTrue:     "OP_TRUE",
	OpFalse:    "OP_FALSE",
	OpEqual:    "OP_EQUAL",
	OpGreater:  "OP_GREATER",
	OpLess:     "OP_LESS",
	OpAdd:      "OP_ADD",
	OpSubtract: "OP_SUBTRACT",
	OpMultiply: "OP_MULTIPLY",
	OpDivide:   "OP_DIVIDE",
	OpNot:      "OP_NOT",
	OpNegate:   "OP_NEGATE",
	OpReturn:   "OP_RETURN",
}

func (o OpCode) Valid() bool {
	return int(o) < len(opNames)
}

func (o OpCode) String() string {
	if o.Valid() {
		return opNames[o]
	}
	return "OpCode(" + strconv.Itoa(int(o)) + ")"
}

// OperandWidth returns the number of operand bytes following o.
func (o OpCode) OperandWidth() int {
	if o == OpConst {
		return 1
	}
	return 0
}
