package testutils

// CheckPanic runs fun and reports whether it panicked. The panic argument itself is swallowed.
//
// This function is only used in testing.
func CheckPanic(fun func()) (didPanic bool) {
	didPanic = true
	defer func() {
		recover()
	}()
	fun()
	didPanic = false
	return
}
