package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/rv/rvcode"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// ToStarlark converts runtime values, programs and plain Go values for use
// in starlark.
func ToStarlark(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case rvcode.Value:
		switch v.Kind() {
		case rvcode.KindBool:
			b, _ := v.Bool()
			return starlark.Bool(b)
		case rvcode.KindNumber:
			n, _ := v.Number()
			return starlark.Float(n)
		}
		return starlark.None

	case []rvcode.Value:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = ToStarlark(e)
		}
		return starlark.NewList(elems)

	case *rvcode.Program:
		if v == nil {
			return starlark.None
		}
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("code"), ToStarlark(v.Code))
		d.SetKey(starlark.String("lines"), ToStarlark(v.Lines))
		d.SetKey(starlark.String("consts"), ToStarlark(v.Consts))
		return d

	case rvcode.OpCode:
		return starlark.String(v.String())

	case []byte:
		// code bytes read better as numbers
		elems := make([]starlark.Value, len(v))
		for i, b := range v {
			elems[i] = starlark.MakeInt(int(b))
		}
		return starlark.NewList(elems)

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case float64:
		return starlark.Float(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = ToStarlark(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		entries := value.MapRange()
		for entries.Next() {
			d.SetKey(
				ToStarlark(entries.Key().Interface()),
				ToStarlark(entries.Value().Interface()),
			)
		}
		return d

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

// FromStarlark converts a starlark result back to a runtime value.
func FromStarlark(v starlark.Value) (rvcode.Value, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return rvcode.None, nil
	case starlark.Bool:
		return rvcode.BoolValue(bool(v)), nil
	case starlark.Float:
		return rvcode.NumberValue(float64(v)), nil
	case starlark.Int:
		f, ok := starlark.AsFloat(v)
		if !ok {
			return rvcode.None, fmt.Errorf("int out of range: %v", v)
		}
		return rvcode.NumberValue(f), nil
	}
	return rvcode.None, fmt.Errorf("no runtime value for starlark %s", v.Type())
}
