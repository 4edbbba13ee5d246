package check

import (
	"fmt"
)

// These helpers are for programmer errors only: conditions that cannot occur
// unless the code itself is wrong. Anything caused by input data must be
// returned as an error instead.
//
// Prefer the plain versions; a panic dumps a stack trace, so a message
// without runtime-defined arguments adds nothing.

// PanicIfNot panics on false (use as simple assert).
func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}

// PanicIff panics on true with the given message.
func PanicIff(flag bool, format string, args ...any) {
	PanicIfNotf(!flag, format, args...)
}

// PanicIfNotf panics on false with the given message.
func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfErr calls panic(err) if err is not nil.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}
