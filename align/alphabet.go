package align

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
)

// Alphabet is the set of symbols a sequence may contain. Matching is
// case-sensitive, the same way grid comparisons are.
type Alphabet string

// Nucleotide alphabets.
const (
	DNA   Alphabet = "ACGT"
	RNA   Alphabet = "ACGU"
	IUPAC Alphabet = "ACGTURYSWKMBDHVN"
)

// SymbolError reports one symbol outside the alphabet.
type SymbolError struct {
	Pos    int  // byte offset in the sequence
	Symbol byte // offending symbol
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrInvalidSymbol, e.Symbol, e.Pos)
}

// Unwrap lets errors.Is(err, ErrInvalidSymbol) match.
func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }

// Validate checks every symbol of seq. All violations are reported together;
// each is a *SymbolError. An empty sequence is valid.
func (al Alphabet) Validate(seq string) error {
	errs := &errors.M{}
	for i := 0; i < len(seq); i++ {
		if strings.IndexByte(string(al), seq[i]) < 0 {
			errs.Append(&SymbolError{Pos: i, Symbol: seq[i]})
		}
	}

	return errs.Err()
}
