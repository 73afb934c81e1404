// Package hashtable provides an open-addressing hash table from string keys
// to opaque values.
//
// Slots are probed linearly from a key's home index, the key's hash modulo
// the capacity. Capacity is always drawn from a fixed ascending list of
// primes, starting at 1949 and capped at 9001481. Before an insert that
// finds the table more than half full, the table is rehashed into the next
// prime at or above twice its capacity. Once the largest prime is reached
// and the table is over that threshold, Insert reports ErrCapacityExhausted
// instead of growing.
//
// Insert never overwrites: a second insert of the same key reports
// ErrDuplicateKey and leaves the stored value in place. There is no delete.
//
// Values are held as borrowed references. The table does not copy, inspect
// or release them; the caller keeps them alive for as long as the table
// may hand them back.
//
// A Table is not safe for concurrent use. Callers that share one must hold
// a single lock around every call, rehash included.
package hashtable
