// Package memo memoizes pure string-keyed functions in a hashtable.Table.
//
// The Tableize family wraps a function so that each distinct input is
// computed once and served from the table afterwards:
//   - TableizeS1O1: func(string) O
//   - TableizeS1O2: func(string) (O1, O2)
//   - TableizeS2O1: func(string, string) O
//
// The backing table grows like any other hashtable.Table. When it reaches
// its largest capacity new results are still returned, just not cached.
//
// WARNING: Do not tableize impure functions (e.g., those depending on time, I/O, etc).
// A wrapped function is not safe for concurrent use.
package memo
