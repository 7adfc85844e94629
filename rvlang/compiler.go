package rvlang

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/reusee/rv/rvcode"
)

const DefaultMaxDepth = 256

const (
	msgExpectExpression = "Expression is expected"
	msgExpectRParen     = "Expected ')' after expression"
	msgExpectEOF        = "EOF is expected"
	msgTooManyConsts    = "Too many constants in one program"
	msgTooDeep          = "Expression nesting is too deep"
)

type Option func(*parser)

// WithDiagnostics sets where reported errors are written.
func WithDiagnostics(w io.Writer) Option {
	return func(p *parser) {
		p.diagnostics = w
	}
}

func WithMaxDepth(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// WithCodeDump disassembles successfully compiled programs to w.
func WithCodeDump(w io.Writer) Option {
	return func(p *parser) {
		p.codeDump = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

type parser struct {
	src     string
	scanner *Scanner
	program *rvcode.Program

	current  Token
	previous Token

	hadError  bool
	panicMode bool
	errs      []Diagnostic

	depth    int
	maxDepth int
	constMap map[rvcode.Value]int

	diagnostics io.Writer
	codeDump    io.Writer
	logger      *slog.Logger
}

// Compile compiles the single expression in src into program.
// On failure it returns a *CompileError and program must not be executed.
func Compile(src string, program *rvcode.Program, options ...Option) error {
	p := &parser{
		src:      src,
		scanner:  NewScanner(src),
		program:  program,
		maxDepth: DefaultMaxDepth,
		constMap: make(map[rvcode.Value]int),
	}
	for _, option := range options {
		option(p)
	}

	p.advance()
	p.expression()
	p.consume(TokenEOF, msgExpectEOF)
	p.emitOp(rvcode.OpReturn)

	if p.hadError {
		if p.logger != nil {
			p.logger.Debug("compile failed",
				"errors", len(p.errs),
			)
		}
		return &CompileError{
			Diagnostics: p.errs,
		}
	}

	if p.logger != nil {
		p.logger.Debug("compiled",
			"bytes", program.Len(),
			"consts", len(program.Consts),
		)
	}
	if p.codeDump != nil {
		rvcode.Disassemble(p.codeDump, program, "code")
	}
	return nil
}

func (p *parser) advance() {
	p.previous = p.current
	for {
		p.current = p.scanner.ScanToken()
		if p.current.Kind != TokenError {
			break
		}
		p.errorAtCurrent(p.current.Message)
	}
}

func (p *parser) consume(kind TokenKind, msg string) {
	if p.current.Kind == kind {
		p.advance()
		return
	}
	p.errorAtCurrent(msg)
}

func (p *parser) errorAtCurrent(msg string) {
	p.errorAt(p.current, msg)
}

func (p *parser) errorAt(token Token, msg string) {
	d := Diagnostic{
		Line:       token.Line,
		Message:    msg,
		Suppressed: p.panicMode,
	}
	switch token.Kind {
	case TokenEOF:
		d.Where = " at end"
	case TokenError:
	default:
		d.Where = fmt.Sprintf(" at '%s'", token.Text(p.src))
	}
	p.errs = append(p.errs, d)
	if p.panicMode {
		return
	}
	// no statement boundaries to resynchronize on, so this stays set
	p.panicMode = true
	p.hadError = true
	if p.diagnostics != nil {
		fmt.Fprintln(p.diagnostics, d)
	}
}

func (p *parser) emit(b byte) {
	p.program.Write(b, p.previous.Line)
}

func (p *parser) emitOp(op rvcode.OpCode) {
	p.emit(byte(op))
}

func (p *parser) emitOps(ops ...rvcode.OpCode) {
	for _, op := range ops {
		p.emitOp(op)
	}
}

func (p *parser) makeConst(v rvcode.Value) byte {
	idx, ok := p.constMap[v]
	if !ok {
		idx = p.program.AddConst(v)
		p.constMap[v] = idx
	}
	if idx >= rvcode.MaxConsts {
		p.errorAtCurrent(msgTooManyConsts)
		return 0
	}
	return byte(idx)
}

func (p *parser) emitConst(v rvcode.Value) {
	p.emitOp(rvcode.OpConst)
	p.emit(p.makeConst(v))
}

func (p *parser) expression() {
	p.parsePrecedence(PrecAssignment)
}

func (p *parser) parsePrecedence(prec Precedence) {
	p.depth++
	defer func() {
		p.depth--
	}()
	if p.depth > p.maxDepth {
		p.errorAtCurrent(msgTooDeep)
		return
	}

	p.advance()
	prefix := getRule(p.previous.Kind).prefix
	if prefix == noHandler {
		p.errorAtCurrent(msgExpectExpression)
		return
	}
	p.invoke(prefix)

	for prec <= getRule(p.current.Kind).precedence {
		p.advance()
		p.invoke(getRule(p.previous.Kind).infix)
	}
}

func (p *parser) invoke(h handler) {
	switch h {
	case groupHandler:
		p.group()
	case unaryHandler:
		p.unary()
	case binaryHandler:
		p.binary()
	case numberHandler:
		p.number()
	case literalHandler:
		p.literal()
	}
}

func (p *parser) group() {
	p.expression()
	p.consume(TokenRParen, msgExpectRParen)
}

func (p *parser) number() {
	// the scanner only produces digit runs with an optional fraction,
	// so the only possible error is ErrRange, where n is already ±Inf
	n, _ := strconv.ParseFloat(p.previous.Text(p.src), 64)
	p.emitConst(rvcode.NumberValue(n))
}

func (p *parser) literal() {
	switch p.previous.Kind {
	case TokenFalse:
		p.emitOp(rvcode.OpFalse)
	case TokenNone:
		p.emitOp(rvcode.OpNone)
	case TokenTrue:
		p.emitOp(rvcode.OpTrue)
	}
}

func (p *parser) unary() {
	operator := p.previous.Kind
	p.parsePrecedence(PrecUnary)
	switch operator {
	case TokenBang:
		p.emitOp(rvcode.OpNot)
	case TokenMinus:
		p.emitOp(rvcode.OpNegate)
	}
}

func (p *parser) binary() {
	operator := p.previous.Kind
	rule := getRule(operator)
	p.parsePrecedence(rule.precedence + 1)

	switch operator {
	case TokenBangEqual:
		p.emitOps(rvcode.OpEqual, rvcode.OpNot)
	case TokenDoubleEqual:
		p.emitOp(rvcode.OpEqual)
	case TokenGreater:
		p.emitOp(rvcode.OpGreater)
	case TokenGreaterEqual:
		p.emitOps(rvcode.OpLess, rvcode.OpNot)
	case TokenLess:
		p.emitOp(rvcode.OpLess)
	case TokenLessEqual:
		p.emitOps(rvcode.OpGreater, rvcode.OpNot)
	case TokenPlus:
		p.emitOp(rvcode.OpAdd)
	case TokenMinus:
		p.emitOp(rvcode.OpSubtract)
	case TokenAsterisk:
		p.emitOp(rvcode.OpMultiply)
	case TokenSlash:
		p.emitOp(rvcode.OpDivide)
	}
}
