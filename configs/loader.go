package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE config files lazily. Files listed first take precedence.
type Loader struct {
	roots func() ([]root, error)
}

type root struct {
	path  string
	value cue.Value
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		roots: sync.OnceValues(func() ([]root, error) {
			return loadRoots(filePaths, schemaSrc)
		}),
	}
}

func loadRoots(filePaths []string, schemaSrc string) (ret []root, err error) {
	// the schema only unifies with values of the same context
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile config schema: %w", err)
		}
	}

	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", filePath, err)
		}
		value := ctx.CompileBytes(content, cue.Filename(filePath))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("compile config %s: %w", filePath, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, fmt.Errorf("validate config %s: %w", filePath, err)
			}
		}
		ret = append(ret, root{
			path:  filePath,
			value: value,
		})
	}

	return ret, nil
}

// IterCueValues yields the value at path from every file that defines it.
// A load error is yielded once, with a nil value.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.roots()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			value := r.value.LookupPath(cuePath)
			if value.Err() != nil {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the first definition of path into target.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
