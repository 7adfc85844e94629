package rvcode

import (
	"math"
	"strconv"
)

type Kind uint8

const (
	KindBool Kind = iota
	KindNone
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a runtime value. The zero Value is false.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
}

var (
	None  = Value{kind: KindNone}
	True  = Value{kind: KindBool, boolean: true}
	False = Value{kind: KindBool}
)

func BoolValue(b bool) Value {
	return Value{
		kind:    KindBool,
		boolean: b,
	}
}

func NumberValue(n float64) Value {
	return Value{
		kind:   KindNumber,
		number: n,
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNone() bool {
	return v.kind == KindNone
}

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.number, true
}

// Falsy reports whether v counts as false in a logical context.
// Only none and false are falsy.
func (v Value) Falsy() bool {
	switch v.kind {
	case KindNone:
		return true
	case KindBool:
		return !v.boolean
	}
	return false
}

func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBool:
		return a.boolean == b.boolean
	case KindNone:
		return true
	case KindNumber:
		return a.number == b.number
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.boolean {
			return "true"
		}
		return "false"
	case KindNone:
		return "none"
	case KindNumber:
		return formatNumber(v.number)
	}
	return "<" + v.kind.String() + ">"
}

// formatNumber renders n the way printf %g does.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n, 'g', 6, 64)
}
