// Package align defines the grid, path and scoring types for global alignment.
package align

// GapSymbol is written into a track where its sequence contributes nothing.
const GapSymbol = '-'

// Default scoring used by the reference scenario.
const (
	DefaultMatch    = 5
	DefaultMismatch = -3
	DefaultGap      = -4
)

// Action records the outcome of one alignment column.
//
//   - Match     — both tracks carry equal symbols.
//   - Mismatch  — both tracks carry different symbols.
//   - Deletion  — only B advances; the A track shows a gap.
//   - Insertion — only A advances; the B track shows a gap.
//
// The byte values are the single-letter codes used when rendering a path.
type Action byte

const (
	Match     Action = 'Y'
	Mismatch  Action = 'N'
	Deletion  Action = 'D'
	Insertion Action = 'I'
)

// String returns the action's name.
func (a Action) String() string {
	switch a {
	case Match:
		return "Match"
	case Mismatch:
		return "Mismatch"
	case Deletion:
		return "Deletion"
	case Insertion:
		return "Insertion"
	default:
		return "Unknown"
	}
}

// Coord addresses a grid cell: I is the row (prefix length of B),
// J is the column (prefix length of A).
type Coord struct {
	I, J int
}

// Cell holds the best score for aligning B[:I] against A[:J] and every
// neighbouring cell whose extension reaches that score.
//
// Preds is kept in check order: deletion (I-1,J), insertion (I,J-1),
// match/mismatch (I-1,J-1). The order carries no meaning beyond determinism.
type Cell struct {
	Score int
	Preds []Coord
}

// Scoring configures per-column scores. Gap applies to both insertion
// and deletion. Any integer values are accepted.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring returns {Match: 5, Mismatch: -3, Gap: -4}.
func DefaultScoring() Scoring {
	return Scoring{
		Match:    DefaultMatch,
		Mismatch: DefaultMismatch,
		Gap:      DefaultGap,
	}
}

// Path is one alignment from the origin to a target cell. A, B and Actions
// always have the same length.
type Path struct {
	A       string   // aligned A track, GapSymbol where A contributes nothing
	B       string   // aligned B track, GapSymbol where B contributes nothing
	Actions []Action // per-column outcome
}

// Result bundles the output of Align.
type Result struct {
	Score int    // optimal global score
	Paths []Path // every alignment reaching Score
	Grid  *Grid  // the filled grid, for further inspection
}
