package rvlang

import (
	"fmt"
	"strings"
)

type Diagnostic struct {
	Line    int
	Where   string
	Message string

	// Suppressed marks errors detected after the first one in a compilation.
	// They are recorded but not reported.
	Suppressed bool
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: Error%s: %s", d.Line, d.Where, d.Message)
}

type CompileError struct {
	Diagnostics []Diagnostic
}

func (c *CompileError) Error() string {
	var reported []string
	for _, d := range c.Diagnostics {
		if d.Suppressed {
			continue
		}
		reported = append(reported, d.String())
	}
	if len(reported) == 0 {
		return "compile error"
	}
	return strings.Join(reported, "\n")
}

// First returns the diagnostic that stopped the compilation.
func (c *CompileError) First() Diagnostic {
	if len(c.Diagnostics) == 0 {
		return Diagnostic{}
	}
	return c.Diagnostics[0]
}
