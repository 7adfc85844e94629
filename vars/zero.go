package vars

// FirstNonZero returns the first value that is not the zero value of T,
// so a flag can shadow a config entry which shadows a default.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}

// DerefOrZero reads an optional value.
func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr != nil {
		ret = *ptr
	}
	return
}
