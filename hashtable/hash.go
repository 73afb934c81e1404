package hashtable

import (
	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 32-bit hash. The home index of a key is the
// hash modulo the table capacity, so a HashFunc must be pure.
type HashFunc func(key string) uint32

// Poly37 is the default HashFunc: a polynomial rolling hash over the key's
// bytes, acc = 37*acc + b, with uint32 wraparound. The empty key hashes to 0.
func Poly37(key string) uint32 {
	var acc uint32
	for i := 0; i < len(key); i++ {
		acc = 37*acc + uint32(key[i])
	}
	return acc
}

// XXHash folds the 64-bit xxhash of the key into 32 bits.
func XXHash(key string) uint32 {
	sum := xxhash.Sum64String(key)
	return uint32(sum>>32) ^ uint32(sum)
}

func (t *Table) home(key string, capacity uint32) int {
	return int(t.hasher(key) % capacity)
}
