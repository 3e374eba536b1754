package vm

import (
	"netuno/rt"
	"netuno/strintern"
)

// rtStringObject interns chars and returns its runtime object header,
// ready to push onto the value stack as a reference.
func rtStringObject(strings *strintern.Table, chars string) *rt.Object {
	s := rt.NewString(strings, chars)
	return &s.Object
}
