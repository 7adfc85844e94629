package debugs

import (
	"testing"

	"github.com/reusee/rv/rvcode"
	"go.starlark.net/starlark"
)

func TestToStarlark(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"none", rvcode.None, starlark.None},
		{"true", rvcode.True, starlark.True},
		{"false", rvcode.False, starlark.False},
		{"number", rvcode.NumberValue(1.5), starlark.Float(1.5)},
		{"values", []rvcode.Value{rvcode.True, rvcode.NumberValue(2)}, starlark.NewList([]starlark.Value{starlark.True, starlark.Float(2)})},
		{"opcode", rvcode.OpAdd, starlark.String("OP_ADD")},
		{"code", []byte{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"lines", []int{1, 1}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(1)})},
		{"string", "foo", starlark.String("foo")},
		{"nil program", (*rvcode.Program)(nil), starlark.None},
		{"map", map[string]int{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ToStarlark(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("ToStarlark(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("ToStarlark did not panic on unsupported type")
			}
		}()
		ToStarlark(make(chan bool))
	})
}

func TestFromStarlark(t *testing.T) {
	cases := []struct {
		in   starlark.Value
		want rvcode.Value
	}{
		{starlark.None, rvcode.None},
		{starlark.True, rvcode.True},
		{starlark.Float(2.5), rvcode.NumberValue(2.5)},
		{starlark.MakeInt(7), rvcode.NumberValue(7)},
	}
	for _, c := range cases {
		got, err := FromStarlark(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if !rvcode.Equal(got, c.want) {
			t.Fatalf("got %v, want %v", got, c.want)
		}
	}
	if _, err := FromStarlark(starlark.String("x")); err == nil {
		t.Fatal("strings have no runtime value")
	}
}
