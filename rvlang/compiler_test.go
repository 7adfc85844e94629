package rvlang

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reusee/rv/rvcode"
)

func compile(t *testing.T, src string) *rvcode.Program {
	t.Helper()
	program := rvcode.NewProgram()
	if err := Compile(src, program); err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return program
}

func ops(program *rvcode.Program) []rvcode.OpCode {
	var ret []rvcode.OpCode
	for offset := 0; offset < len(program.Code); {
		op := rvcode.OpCode(program.Code[offset])
		ret = append(ret, op)
		offset += 1 + op.OperandWidth()
	}
	return ret
}

func TestCompileEmits(t *testing.T) {
	cases := []struct {
		src  string
		want []rvcode.OpCode
	}{
		{"1", []rvcode.OpCode{rvcode.OpConst, rvcode.OpReturn}},
		{"true", []rvcode.OpCode{rvcode.OpTrue, rvcode.OpReturn}},
		{"false", []rvcode.OpCode{rvcode.OpFalse, rvcode.OpReturn}},
		{"none", []rvcode.OpCode{rvcode.OpNone, rvcode.OpReturn}},
		{"-1", []rvcode.OpCode{rvcode.OpConst, rvcode.OpNegate, rvcode.OpReturn}},
		{"!true", []rvcode.OpCode{rvcode.OpTrue, rvcode.OpNot, rvcode.OpReturn}},
		{"1 + 2 * 3", []rvcode.OpCode{
			rvcode.OpConst, rvcode.OpConst, rvcode.OpConst,
			rvcode.OpMultiply, rvcode.OpAdd, rvcode.OpReturn,
		}},
		{"(1 + 2) * 3", []rvcode.OpCode{
			rvcode.OpConst, rvcode.OpConst, rvcode.OpAdd,
			rvcode.OpConst, rvcode.OpMultiply, rvcode.OpReturn,
		}},
		{"1 - 2 - 3", []rvcode.OpCode{
			rvcode.OpConst, rvcode.OpConst, rvcode.OpSubtract,
			rvcode.OpConst, rvcode.OpSubtract, rvcode.OpReturn,
		}},
		{"1 / 2", []rvcode.OpCode{rvcode.OpConst, rvcode.OpConst, rvcode.OpDivide, rvcode.OpReturn}},
		{"1 == 2", []rvcode.OpCode{rvcode.OpConst, rvcode.OpConst, rvcode.OpEqual, rvcode.OpReturn}},
		{"1 != 2", []rvcode.OpCode{rvcode.OpConst, rvcode.OpConst, rvcode.OpEqual, rvcode.OpNot, rvcode.OpReturn}},
		{"1 > 2", []rvcode.OpCode{rvcode.OpConst, rvcode.OpConst, rvcode.OpGreater, rvcode.OpReturn}},
		{"1 >= 2", []rvcode.OpCode{rvcode.OpConst, rvcode.OpConst, rvcode.OpLess, rvcode.OpNot, rvcode.OpReturn}},
		{"1 < 2", []rvcode.OpCode{rvcode.OpConst, rvcode.OpConst, rvcode.OpLess, rvcode.OpReturn}},
		{"1 <= 2", []rvcode.OpCode{rvcode.OpConst, rvcode.OpConst, rvcode.OpGreater, rvcode.OpNot, rvcode.OpReturn}},
		{"- - 1", []rvcode.OpCode{rvcode.OpConst, rvcode.OpNegate, rvcode.OpNegate, rvcode.OpReturn}},
		{"1 == 1 == true", []rvcode.OpCode{
			rvcode.OpConst, rvcode.OpConst, rvcode.OpEqual,
			rvcode.OpTrue, rvcode.OpEqual, rvcode.OpReturn,
		}},
	}
	for _, c := range cases {
		got := ops(compile(t, c.src))
		if fmt.Sprint(got) != fmt.Sprint(c.want) {
			t.Errorf("%q: got %v, want %v", c.src, got, c.want)
		}
	}
}

func TestCompileConstants(t *testing.T) {
	program := compile(t, "1.5 + 2 * 1.5")
	if len(program.Consts) != 2 {
		t.Fatalf("got %d consts", len(program.Consts))
	}
	if n, _ := program.Consts[0].Number(); n != 1.5 {
		t.Fatalf("got %v", program.Consts[0])
	}
	// OP_CONST 0, OP_CONST 1, OP_CONST 0
	if program.Code[1] != 0 || program.Code[3] != 1 || program.Code[5] != 0 {
		t.Fatalf("got %v", program.Code)
	}
	if len(program.Code) != len(program.Lines) {
		t.Fatal("code and lines diverged")
	}
}

func TestCompileLines(t *testing.T) {
	program := compile(t, "1 +\n2\n*\n3")
	// each byte carries the line of the token before it was emitted
	want := []int{1, 1, 2, 2, 4, 4, 4, 4, 4}
	if fmt.Sprint(program.Lines) != fmt.Sprint(want) {
		t.Fatalf("got %v, want %v", program.Lines, want)
	}
}

func compileError(t *testing.T, src string) (*CompileError, string) {
	t.Helper()
	var buf bytes.Buffer
	err := Compile(src, rvcode.NewProgram(), WithDiagnostics(&buf))
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("%q: got %v", src, err)
	}
	return compileErr, buf.String()
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 +", "line 1: Error at end: Expression is expected\n"},
		{"", "line 1: Error at end: Expression is expected\n"},
		{"(1 + 2", "line 1: Error at end: Expected ')' after expression\n"},
		{"1 2", "line 1: Error at '2': EOF is expected\n"},
		{"'abc", "line 1: Error: Strings must begin and end with single quotes\n"},
		{"1 + #", "line 1: Error: Unrecognized character...\n"},
		{"\n\nfoo", "line 3: Error at end: Expression is expected\n"},
		{"'abc'", "line 1: Error at end: Expression is expected\n"},
		{"1 = 2", "line 1: Error at '=': EOF is expected\n"},
	}
	for _, c := range cases {
		_, out := compileError(t, c.src)
		if out != c.want {
			t.Errorf("%q: got %q, want %q", c.src, out, c.want)
		}
	}
}

func TestCompileErrorSuppression(t *testing.T) {
	err, out := compileError(t, "(1 + ) ) )")
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("only the first error should be reported, got %q", out)
	}
	if len(err.Diagnostics) < 2 {
		t.Fatalf("got %v", err.Diagnostics)
	}
	if err.First().Suppressed {
		t.Fatal("first diagnostic is reported")
	}
	for _, d := range err.Diagnostics[1:] {
		if !d.Suppressed {
			t.Fatalf("%v should be suppressed", d)
		}
	}
	if err.Error() != strings.TrimSuffix(out, "\n") {
		t.Fatalf("got %q", err.Error())
	}
}

func TestCompileTooManyConstants(t *testing.T) {
	var parts []string
	for i := range 257 {
		parts = append(parts, fmt.Sprint(i))
	}
	src := strings.Join(parts, " + ")
	err, _ := compileError(t, src)
	if !strings.Contains(err.First().Message, "Too many constants") {
		t.Fatalf("got %v", err)
	}

	// 256 distinct constants fit
	compile(t, strings.Join(parts[:256], " + "))

	// repeated literals share a slot
	var same []string
	for range 1000 {
		same = append(same, "1")
	}
	program := compile(t, strings.Join(same, " + "))
	if len(program.Consts) != 1 {
		t.Fatalf("got %d consts", len(program.Consts))
	}
}

func TestCompileMaxDepth(t *testing.T) {
	src := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)
	var buf bytes.Buffer
	err := Compile(src, rvcode.NewProgram(), WithDiagnostics(&buf))
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("got %v", err)
	}
	if compileErr.First().Message != msgTooDeep {
		t.Fatalf("got %v", compileErr.First())
	}

	if err := Compile(src, rvcode.NewProgram(), WithMaxDepth(400)); err != nil {
		t.Fatal(err)
	}

	deep := strings.Repeat("-", 100000) + "1"
	if err := Compile(deep, rvcode.NewProgram()); err == nil {
		t.Fatal("should fail")
	}
}

func TestCompileCodeDump(t *testing.T) {
	var buf bytes.Buffer
	if err := Compile("1 + 2", rvcode.NewProgram(), WithCodeDump(&buf)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "== code ==\n") || !strings.Contains(out, "OP_ADD") {
		t.Fatalf("got %q", out)
	}

	buf.Reset()
	if err := Compile("1 +", rvcode.NewProgram(), WithCodeDump(&buf)); err == nil {
		t.Fatal("should fail")
	}
	if buf.Len() != 0 {
		t.Fatal("failed compilations are not dumped")
	}
}

func TestRuleTable(t *testing.T) {
	for kind := TokenKind(0); kind < numTokenKinds; kind++ {
		rule := getRule(kind)
		if rule.precedence != PrecNone && rule.infix == noHandler {
			t.Fatalf("%v has precedence but no infix handler", kind)
		}
	}
	if getRule(numTokenKinds+1) != (parseRule{}) {
		t.Fatal()
	}
}
