package hashtable

// primes are the only capacities a table can take, in ascending order.
var primes = []uint32{
	1949, 7877, 11551, 52639, 220579, 500069,
	700319, 800647, 1000099, 3000073, 6000641, 9001481,
}

// selectPrime returns the first candidate >= n, or the largest candidate
// when n exceeds all of them.
func selectPrime(candidates []uint32, n int) uint32 {
	for _, p := range candidates {
		if n <= 0 || uint64(p) >= uint64(n) {
			return p
		}
	}
	return candidates[len(candidates)-1]
}

func isCandidate(candidates []uint32, capacity uint32) bool {
	for _, p := range candidates {
		if p == capacity {
			return true
		}
	}
	return false
}
