package align

import "strings"

// StepScore returns the score contributed by one column with action a.
func StepScore(sc Scoring, a Action) int {
	switch a {
	case Match:
		return sc.Match
	case Mismatch:
		return sc.Mismatch
	default:
		return sc.Gap
	}
}

// Len returns the number of columns in p.
func (p Path) Len() int { return len(p.Actions) }

// Score sums StepScore over every column. For a path returned by a Grid
// this equals the score of the path's end cell under the same scoring.
func (p Path) Score(sc Scoring) int {
	total := 0
	for _, a := range p.Actions {
		total += StepScore(sc, a)
	}

	return total
}

// ActionString returns the action track as single-letter codes, e.g. "DDYNYIYN".
func (p Path) ActionString() string {
	b := make([]byte, len(p.Actions))
	for i, a := range p.Actions {
		b[i] = byte(a)
	}

	return string(b)
}

// String renders the three tracks one per line:
//
//	--CGTGAA
//	GACTT-AC
//	DDYNYIYN
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(3*len(p.Actions) + 2)
	sb.WriteString(p.A)
	sb.WriteByte('\n')
	sb.WriteString(p.B)
	sb.WriteByte('\n')
	sb.WriteString(p.ActionString())

	return sb.String()
}

// Ungap strips GapSymbol from an aligned track, recovering the source prefix.
func Ungap(track string) string {
	return strings.ReplaceAll(track, string(GapSymbol), "")
}
