package rvvm

import (
	"bytes"
	"io"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/rv/logs"
	"github.com/reusee/rv/modes"
	"github.com/reusee/rv/rvconfigs"
)

func TestModule(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(logs.Module),
		new(rvconfigs.Module),
		new(Module),
	).Call(func(
		newVM NewVM,
		interpret Interpret,
		interpretProgram InterpretProgram,
	) {
		stdout := new(bytes.Buffer)
		vm := newVM(stdout, io.Discard)

		if r := interpret(t.Context(), vm, "1 + 2 * 3"); r != ResultOK {
			t.Fatalf("got %v", r)
		}
		if r := interpret(t.Context(), vm, "none - 1"); r != ResultRuntimeError {
			t.Fatalf("got %v", r)
		}

		program, err := vm.Compile("2 * 2")
		if err != nil {
			t.Fatal(err)
		}
		if r := interpretProgram(t.Context(), vm, program); r != ResultOK {
			t.Fatalf("got %v", r)
		}

		if stdout.String() != "7\n4\n" {
			t.Fatalf("got %q", stdout.String())
		}
	})
}
