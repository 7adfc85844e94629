package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var depth int
	executor.Define("-default-depth", Func(func() {
		depth = 256
	}))
	executor.Define("-depth", Func(func(n int) {
		depth = n
	}))

	if err := executor.Execute([]string{
		"-default-depth",
	}); err != nil {
		t.Fatal(err)
	}
	if depth != 256 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"-depth", "8",
	}); err != nil {
		t.Fatal(err)
	}
	if depth != 8 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo.rv",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo.rv") {
		t.Fatalf("got %v", err)
	}
}

func TestBoolArgument(t *testing.T) {
	executor := NewExecutor()
	var trace bool
	executor.Define("-trace", Func(func(on bool) {
		trace = on
	}))

	if err := executor.Execute([]string{"-trace", "on"}); err != nil {
		t.Fatal(err)
	}
	if !trace {
		t.Fatal()
	}

	err := executor.Execute([]string{"-trace", "sometimes"})
	if err == nil || !strings.Contains(err.Error(), "-trace: not a boolean") {
		t.Fatalf("got %v", err)
	}
}

func TestErrorReturn(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-ok", Func(func() error {
		return nil
	}))
	executor.Define("-fail", Func(func(path string) error {
		return &usageError{path}
	}))

	if err := executor.Execute([]string{"-ok"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"-fail", "x.rvc"})
	if _, ok := err.(*usageError); !ok {
		t.Fatalf("got %v", err)
	}
}

type usageError struct {
	path string
}

func (u *usageError) Error() string {
	return "bad path: " + u.path
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var dump, depth int
	executor.Define("debug", Sub(map[string]*Command{
		"dump": Func(func() {
			dump = 1
		}),
		"depth": Func(func(i int) {
			depth = i
		}),
	}))

	if err := executor.Execute([]string{
		"debug",
		"dump",
		"depth", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if dump != 1 {
		t.Fatal()
	}
	if depth != 42 {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-o", Func(func(string) {}))
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("-o", Func(func(string) {}))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}
}
