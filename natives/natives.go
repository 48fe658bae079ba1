/*
File    : goloxmix/natives/natives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package natives registers the built-in functions goloxmix programs can
// call without a user-level declaration. The surface is deliberately
// small: `clock` is the only native, matching the reference
// implementation's minimal standard library.
package natives

import (
	"time"

	"github.com/akashmaji946/goloxmix/environment"
	"github.com/akashmaji946/goloxmix/value"
)

// Register defines every native function into globals.
func Register(globals *environment.Environment) {
	globals.Define("clock", &value.Native{
		Name:  "clock",
		Arity: 0,
		Fn: func(_ value.Caller, _ []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
