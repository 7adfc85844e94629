package configs

import (
	"errors"
	"fmt"
	"iter"
)

// First decodes the value at path from the most specific file defining it.
// Missing values decode to the zero value. Invalid values panic, since the
// schema has already been checked.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		return
	}
	if err != nil {
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return
}

// All decodes the value at path from every file defining it.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err == nil {
				err = value.Decode(&v)
			}
			if err != nil {
				yield(v, fmt.Errorf("config %s: %w", path, err))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
