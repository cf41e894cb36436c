package align

import "math/big"

// track is a path under construction. Tracks stored in the memo are shared
// between callers and must never be appended to in place.
type track struct {
	a, b []byte
	acts []Action
}

// extend returns a fresh track with one more column.
func (t track) extend(symA, symB byte, act Action) track {
	n := len(t.acts)
	out := track{
		a:    make([]byte, n+1),
		b:    make([]byte, n+1),
		acts: make([]Action, n+1),
	}
	copy(out.a, t.a)
	copy(out.b, t.b)
	copy(out.acts, t.acts)
	out.a[n], out.b[n], out.acts[n] = symA, symB, act

	return out
}

func (t track) path() Path {
	return Path{A: string(t.a), B: string(t.b), Actions: t.acts}
}

// tracer holds per-call memo state so a Grid stays free of mutation.
type tracer struct {
	g    *Grid
	memo [][]track // by cell index; nil = not yet visited
}

// Backtrace returns every optimal alignment from the origin to cell (i,j).
//
// Algorithm:
//   - (0,0) yields one empty path.
//   - Otherwise, for each predecessor p of (i,j), take all paths reaching p
//     and append one column:
//     (i-1,j-1) → (A[j-1], B[i-1], Match | Mismatch)
//     (i-1,j)   → ('-',    B[i-1], Deletion)
//     (i,j-1)   → (A[j-1], '-',    Insertion)
//   - The result is the concatenation over predecessors.
//
// Results are memoized per cell for the duration of the call, so shared
// sub-paths (diamonds in the predecessor DAG) are computed once.
// Order follows predecessor order and is deterministic, but carries no meaning.
//
// Errors:
//   - ErrOutOfRange if (i,j) is outside the grid.
//
// Complexity:
//
//	Time & Memory = O(P·L) where P is the number of optimal paths and
//	L ≤ i+j their length. P can be exponential in the number of tie cells.
func (g *Grid) Backtrace(i, j int) ([]Path, error) {
	if err := g.checkBounds(i, j); err != nil {
		return nil, err
	}
	t := &tracer{g: g, memo: make([][]track, len(g.cells))}
	tracks := t.walk(i, j)

	paths := make([]Path, len(tracks))
	for k, tr := range tracks {
		paths[k] = tr.path()
	}

	return paths, nil
}

// Paths returns every optimal global alignment, i.e. Backtrace(n, m).
func (g *Grid) Paths() []Path {
	paths, _ := g.Backtrace(g.rows-1, g.cols-1) // final cell is always in range

	return paths
}

func (t *tracer) walk(i, j int) []track {
	if i == 0 && j == 0 {
		return []track{{}}
	}
	idx := t.g.index(i, j)
	if t.memo[idx] != nil {
		return t.memo[idx]
	}

	var out []track
	for _, p := range t.g.cells[idx].Preds {
		symA, symB, act := t.g.column(p, i, j)
		for _, prev := range t.walk(p.I, p.J) {
			out = append(out, prev.extend(symA, symB, act))
		}
	}
	t.memo[idx] = out

	return out
}

// column describes the alignment column produced by stepping from p into (i,j).
func (g *Grid) column(p Coord, i, j int) (symA, symB byte, act Action) {
	switch {
	case p.I == i-1 && p.J == j-1:
		symA, symB = g.a[j-1], g.b[i-1]
		if symA == symB {
			return symA, symB, Match
		}
		return symA, symB, Mismatch
	case p.I == i-1:
		return GapSymbol, g.b[i-1], Deletion
	default:
		return g.a[j-1], GapSymbol, Insertion
	}
}

// CountPaths returns how many optimal alignments reach cell (i,j), without
// enumerating them. The count uses arbitrary precision because it can grow
// exponentially with the number of tie cells.
//
// Complexity: O(i·j) big-integer additions.
func (g *Grid) CountPaths(i, j int) (*big.Int, error) {
	if err := g.checkBounds(i, j); err != nil {
		return nil, err
	}
	// Only the (i+1)×(j+1) sub-rectangle can lie on a path into (i,j).
	w := j + 1
	counts := make([]*big.Int, (i+1)*w)
	for r := 0; r <= i; r++ {
		for c := 0; c <= j; c++ {
			n := new(big.Int)
			if r == 0 && c == 0 {
				n.SetInt64(1)
			}
			for _, p := range g.cells[g.index(r, c)].Preds {
				n.Add(n, counts[p.I*w+p.J])
			}
			counts[r*w+c] = n
		}
	}

	return counts[len(counts)-1], nil
}
