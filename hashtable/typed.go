package hashtable

import (
	"github.com/on-the-ground/primetable/shared/helper"
)

// LookupAs returns the value stored under key asserted to T.
// ok is false if the key is absent or holds a value of another type.
func LookupAs[T any](t *Table, key string) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return t.Lookup(key)
	})
}
