package cmds

// Var defines a global command that stores its argument.
func Var[T any](name string, desc string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))
	return &value
}

// Switch defines name to turn a setting on and !name to turn it off.
func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("turn off "+name))
	return &value
}
