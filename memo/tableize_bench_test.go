package memo_test

import (
	"testing"

	"github.com/on-the-ground/primetable/memo"
)

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkTableizedLevenshtein(b *testing.B) {
	var lev func(string, string) int
	lev = memo.TableizeS2O1(func(x, y string) int {
		if len(x) == 0 {
			return len(y)
		}
		if len(y) == 0 {
			return len(x)
		}
		if x[0] == y[0] {
			return lev(x[1:], y[1:])
		}
		return 1 + min(
			lev(x[1:], y),
			lev(x, y[1:]),
			lev(x[1:], y[1:]),
		)
	}, 64)

	for i := 0; i < b.N; i++ {
		_ = lev("kitten", "sitting")
	}
}

func TestTableizedLevenshtein(t *testing.T) {
	var lev func(string, string) int
	lev = memo.TableizeS2O1(func(x, y string) int {
		if len(x) == 0 {
			return len(y)
		}
		if len(y) == 0 {
			return len(x)
		}
		if x[0] == y[0] {
			return lev(x[1:], y[1:])
		}
		return 1 + min(lev(x[1:], y), lev(x, y[1:]), lev(x[1:], y[1:]))
	}, 64)

	for _, pair := range [][2]string{{"kitten", "sitting"}, {"", "abc"}, {"flaw", "lawn"}} {
		if got, want := lev(pair[0], pair[1]), naiveLevenshtein(pair[0], pair[1]); got != want {
			t.Errorf("lev(%q, %q) = %d, want %d", pair[0], pair[1], got, want)
		}
	}
}
