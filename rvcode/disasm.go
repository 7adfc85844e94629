package rvcode

import (
	"fmt"
	"io"
)

// Disassemble writes a listing of every instruction in p.
func Disassemble(w io.Writer, p *Program, name string) {
	fmt.Fprintf(w, "== %s ==\n", name)
	for offset := 0; offset < len(p.Code); {
		offset = DisassembleInstruction(w, p, offset)
	}
}

// DisassembleInstruction writes the instruction at offset and returns the
// offset of the next one.
func DisassembleInstruction(w io.Writer, p *Program, offset int) int {
	fmt.Fprintf(w, "%04d ", offset)
	if offset > 0 && p.Line(offset) == p.Line(offset-1) {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", p.Line(offset))
	}

	op := OpCode(p.Code[offset])
	switch {
	case op == OpConst:
		return constantInstruction(w, p, op, offset)
	case op.Valid():
		fmt.Fprintln(w, op)
		return offset + 1
	}
	fmt.Fprintf(w, "Unknown opcode %d\n", op)
	return offset + 1
}

func constantInstruction(w io.Writer, p *Program, op OpCode, offset int) int {
	if offset+1 >= len(p.Code) {
		fmt.Fprintf(w, "%-16s <truncated>\n", op)
		return offset + 1
	}
	idx := int(p.Code[offset+1])
	if idx >= len(p.Consts) {
		fmt.Fprintf(w, "%-16s %4d <missing>\n", op, idx)
		return offset + 2
	}
	fmt.Fprintf(w, "%-16s %4d '%s'\n", op, idx, p.Consts[idx])
	return offset + 2
}
