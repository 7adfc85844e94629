package rvcode

// MaxConsts is the size of the constant index space addressable by OpConst.
const MaxConsts = 256

const initialCapacity = 8

// Program is a compiled unit: instruction bytes, the source line of every
// byte, and the constant pool.
type Program struct {
	Code   []byte
	Lines  []int
	Consts []Value
}

func NewProgram() *Program {
	return &Program{}
}

func (p *Program) Len() int {
	return len(p.Code)
}

func (p *Program) Write(b byte, line int) {
	if len(p.Code) >= cap(p.Code) {
		p.grow()
	}
	p.Code = append(p.Code, b)
	p.Lines = append(p.Lines, line)
}

func (p *Program) WriteOp(op OpCode, line int) {
	p.Write(byte(op), line)
}

func (p *Program) grow() {
	newCap := growCapacity(cap(p.Code))
	code := make([]byte, len(p.Code), newCap)
	copy(code, p.Code)
	lines := make([]int, len(p.Lines), newCap)
	copy(lines, p.Lines)
	p.Code = code
	p.Lines = lines
}

// AddConst appends v to the constant pool and returns its index.
// The index may exceed the one-byte operand space; callers check MaxConsts.
func (p *Program) AddConst(v Value) int {
	if len(p.Consts) >= cap(p.Consts) {
		consts := make([]Value, len(p.Consts), growCapacity(cap(p.Consts)))
		copy(consts, p.Consts)
		p.Consts = consts
	}
	p.Consts = append(p.Consts, v)
	return len(p.Consts) - 1
}

// Line returns the source line of the byte at offset, or 0 if out of range.
func (p *Program) Line(offset int) int {
	if offset < 0 || offset >= len(p.Lines) {
		return 0
	}
	return p.Lines[offset]
}

// Reset empties p while keeping its buffers.
func (p *Program) Reset() {
	clear(p.Consts)
	p.Code = p.Code[:0]
	p.Lines = p.Lines[:0]
	p.Consts = p.Consts[:0]
}

func growCapacity(n int) int {
	if n < initialCapacity {
		return initialCapacity
	}
	return n * 2
}
