package align

import "errors"

// Every message is prefixed with "align: ". Callers match with errors.Is;
// context is added with fmt.Errorf("...: %w", ErrX).
var (
	// ErrOutOfRange indicates a cell coordinate outside 0 ≤ i ≤ n, 0 ≤ j ≤ m.
	ErrOutOfRange = errors.New("align: cell coordinate out of range")

	// ErrInvalidSymbol indicates a sequence symbol outside the configured alphabet.
	ErrInvalidSymbol = errors.New("align: symbol not in alphabet")
)
