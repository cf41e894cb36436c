package align

import "fmt"

// Align runs the whole pipeline for a and b: optional alphabet validation,
// grid construction, then backtrace of the final cell.
//
// Example:
//
//	res, err := align.Align("CGTGAA", "GACTTAC", align.WithAlphabet(align.DNA))
//	if err != nil {
//	  // errors.Is(err, align.ErrInvalidSymbol)
//	}
//	fmt.Println(res.Score, len(res.Paths))
//
// Errors:
//   - ErrInvalidSymbol (wrapped, one per offending symbol) when an alphabet
//     is configured and either sequence violates it.
func Align(a, b string, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if o.alphabet != "" {
		if err := o.alphabet.Validate(a); err != nil {
			return nil, fmt.Errorf("sequence A: %w", err)
		}
		if err := o.alphabet.Validate(b); err != nil {
			return nil, fmt.Errorf("sequence B: %w", err)
		}
	}

	g := BuildGrid(a, b, o.scoring)

	return &Result{
		Score: g.FinalScore(),
		Paths: g.Paths(),
		Grid:  g,
	}, nil
}
