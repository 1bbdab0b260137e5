package assert

import "github.com/gridnet-dev/gridnet/gerror"

// Enabled turns precondition checks on. Debug builds should set this so that
// caller misuse panics instead of silently corrupting state; with it off every
// check is a no-op.
var Enabled bool

func IsTrue(ok bool, message string, args ...interface{}) {
	if !Enabled || ok {
		return
	}
	panic(gerror.New(message, args...))
}
