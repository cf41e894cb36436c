package align_test

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/seqalign/align"
)

// randomDNA returns a deterministic pseudo-random nucleotide string.
func randomDNA(rng *rand.Rand, n int) string {
	const bases = "ACGT"
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[rng.Intn(len(bases))]
	}

	return string(b)
}

// pathKey flattens a path into a comparable string.
func pathKey(p align.Path) string {
	return p.A + "|" + p.B + "|" + p.ActionString()
}

func pathKeys(paths []align.Path) []string {
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = pathKey(p)
	}
	sort.Strings(keys)

	return keys
}

// bruteForce enumerates every global alignment of a and b without any DP
// and returns the best score together with the sorted keys of all
// alignments reaching it.
func bruteForce(a, b string, sc align.Scoring) (int, []string) {
	var (
		best  int
		keys  []string
		found bool
	)
	var rec func(i, j int, ta, tb, acts []byte, score int)
	rec = func(i, j int, ta, tb, acts []byte, score int) {
		if i == len(b) && j == len(a) {
			key := string(ta) + "|" + string(tb) + "|" + string(acts)
			switch {
			case !found || score > best:
				best, keys, found = score, []string{key}, true
			case score == best:
				keys = append(keys, key)
			}
			return
		}
		if i < len(b) {
			rec(i+1, j, append(clone(ta), '-'), append(clone(tb), b[i]), append(clone(acts), 'D'), score+sc.Gap)
		}
		if j < len(a) {
			rec(i, j+1, append(clone(ta), a[j]), append(clone(tb), '-'), append(clone(acts), 'I'), score+sc.Gap)
		}
		if i < len(b) && j < len(a) {
			act, step := byte('N'), sc.Mismatch
			if a[j] == b[i] {
				act, step = 'Y', sc.Match
			}
			rec(i+1, j+1, append(clone(ta), a[j]), append(clone(tb), b[i]), append(clone(acts), act), score+step)
		}
	}
	rec(0, 0, nil, nil, nil, 0)
	sort.Strings(keys)

	return best, keys
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
