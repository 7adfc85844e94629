package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is the mode of the rv binary.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// T is nil outside tests.
func (ModuleForProduction) T() *testing.T {
	return nil
}

// ModuleForTest keeps tests away from the user's environment.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}
