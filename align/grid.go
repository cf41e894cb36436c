package align

import "fmt"

// Grid is the filled (n+1)×(m+1) scoring table for sequences A (length m)
// and B (length n). Cells live in one row-major slice and predecessor links
// are coordinates, never pointers. A Grid is immutable once BuildGrid
// returns, so concurrent readers need no locking.
type Grid struct {
	a, b    string
	scoring Scoring
	rows    int // n+1
	cols    int // m+1
	cells   []Cell
}

// BuildGrid — Needleman–Wunsch grid construction with full tie retention.
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b). Allocate (n+1)·(m+1) cells.
//  2. For i = 0..n, for j = 0..m:
//     (0,0)        → score 0, no predecessors
//     deletion     (i>0)      : G[i-1][j].Score   + Gap
//     insertion    (j>0)      : G[i][j-1].Score   + Gap
//     match/mismat (i>0, j>0) : G[i-1][j-1].Score + Match or Mismatch
//     G[i][j].Score = max over applicable candidates,
//     G[i][j].Preds = every candidate reaching that max, in check order.
//
// Row-major order guarantees (i-1,j), (i,j-1) and (i-1,j-1) are final
// before (i,j) reads them.
//
// BuildGrid is total: empty sequences and any integer scoring are valid.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func BuildGrid(a, b string, sc Scoring) *Grid {
	g := &Grid{
		a:       a,
		b:       b,
		scoring: sc,
		rows:    len(b) + 1,
		cols:    len(a) + 1,
	}
	g.cells = make([]Cell, g.rows*g.cols)

	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if i == 0 && j == 0 {
				continue // zero value: score 0, no predecessors
			}
			var (
				best  int
				preds []Coord
				seen  bool
			)
			consider := func(score int, from Coord) {
				switch {
				case !seen || score > best:
					best, preds, seen = score, []Coord{from}, true
				case score == best:
					preds = append(preds, from)
				}
			}
			if i > 0 {
				consider(g.cells[g.index(i-1, j)].Score+sc.Gap, Coord{I: i - 1, J: j})
			}
			if j > 0 {
				consider(g.cells[g.index(i, j-1)].Score+sc.Gap, Coord{I: i, J: j - 1})
			}
			if i > 0 && j > 0 {
				step := sc.Mismatch
				if b[i-1] == a[j-1] {
					step = sc.Match
				}
				consider(g.cells[g.index(i-1, j-1)].Score+step, Coord{I: i - 1, J: j - 1})
			}
			g.cells[g.index(i, j)] = Cell{Score: best, Preds: preds}
		}
	}

	return g
}

// index maps (i,j) onto the flat cell slice.
func (g *Grid) index(i, j int) int {
	return i*g.cols + j
}

// inBounds reports whether (i,j) addresses a cell.
func (g *Grid) inBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

func (g *Grid) checkBounds(i, j int) error {
	if !g.inBounds(i, j) {
		return fmt.Errorf("%w: (%d,%d) not in [0,%d]×[0,%d]", ErrOutOfRange, i, j, g.rows-1, g.cols-1)
	}
	return nil
}

// Rows returns n+1.
func (g *Grid) Rows() int { return g.rows }

// Cols returns m+1.
func (g *Grid) Cols() int { return g.cols }

// SeqA returns sequence A (the column axis).
func (g *Grid) SeqA() string { return g.a }

// SeqB returns sequence B (the row axis).
func (g *Grid) SeqB() string { return g.b }

// Scoring returns the scoring the grid was built with.
func (g *Grid) Scoring() Scoring { return g.scoring }

// At returns a copy of cell (i,j). The Preds slice is cloned so callers
// cannot alter the grid.
func (g *Grid) At(i, j int) (Cell, error) {
	if err := g.checkBounds(i, j); err != nil {
		return Cell{}, err
	}
	c := g.cells[g.index(i, j)]
	if c.Preds != nil {
		c.Preds = append([]Coord(nil), c.Preds...)
	}
	return c, nil
}

// FinalScore returns the optimal global score, the score of cell (n,m).
func (g *Grid) FinalScore() int {
	return g.cells[len(g.cells)-1].Score
}
