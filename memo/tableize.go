package memo

import (
	"strconv"

	"github.com/on-the-ground/primetable/hashtable"
)

func TableizeS1O1[O1 any](
	pureFn func(string) O1,
	initialSize int,
	opts ...hashtable.Option,
) func(string) O1 {
	return tableize(pureFn, initialSize, opts...)
}

func TableizeS2O1[O1 any](
	pureFn func(string, string) O1,
	initialSize int,
	opts ...hashtable.Option,
) func(string, string) O1 {
	tableized := tableize(
		func(key string) O1 {
			a, b := splitPairKey(key)
			return pureFn(a, b)
		},
		initialSize,
		opts...,
	)
	return func(a, b string) O1 {
		return tableized(pairKey(a, b))
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func TableizeS1O2[O1, O2 any](
	pureFn func(string) (O1, O2),
	initialSize int,
	opts ...hashtable.Option,
) func(string) (O1, O2) {
	tableized := tableize(
		func(key string) result[O1, O2] {
			v1, v2 := pureFn(key)
			return result[O1, O2]{O1: v1, O2: v2}
		},
		initialSize,
		opts...,
	)
	return func(key string) (O1, O2) {
		res := tableized(key)
		return res.O1, res.O2
	}
}

// pairKey length-prefixes a so that no two pairs share an encoding.
func pairKey(a, b string) string {
	return strconv.Itoa(len(a)) + ":" + a + b
}

func splitPairKey(key string) (string, string) {
	i := 0
	for key[i] != ':' {
		i++
	}
	n, _ := strconv.Atoi(key[:i])
	rest := key[i+1:]
	return rest[:n], rest[n:]
}

// tableize memoizes pureFn in a hashtable.Table. Once the table can no
// longer grow, results are computed on every call without being stored.
func tableize[O any](
	pureFn func(string) O,
	initialSize int,
	opts ...hashtable.Option,
) func(string) O {
	memo := hashtable.New(initialSize, opts...)
	return func(key string) O {
		// Presence decides a hit: a nil interface result is stored as nil.
		if raw, ok := memo.Lookup(key); ok {
			v, _ := raw.(O)
			return v
		}
		v := pureFn(key)
		if err := memo.Insert(key, v); err != nil {
			switch hashtable.OutcomeOf(err) {
			case hashtable.DuplicateKey:
				// a recursive pureFn stored key first
			case hashtable.CapacityExhausted:
				// returned uncached
			}
		}
		return v
	}
}
