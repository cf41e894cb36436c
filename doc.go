// Package seqalign is an in-memory toolkit for exhaustive global alignment
// of nucleotide sequences: score every prefix pair once, then recover every
// alignment that reaches the optimal score.
//
// 🚀 What is seqalign?
//
//	A small, dependency-light library built around one idea: ties matter.
//	Classic Needleman–Wunsch implementations keep a single traceback arrow
//	per cell; seqalign keeps all of them and walks every optimal path.
//		• Grid construction: (n+1)×(m+1) scores with full tie retention
//		• Backtrace: memoized enumeration of all optimal alignments
//		• Counting: arbitrary-precision path counts without enumeration
//		• Validation: DNA, RNA and IUPAC alphabets
//
// ✨ Why choose seqalign?
//
//   - Pure function of its inputs – no global state, no hidden config
//   - Immutable grids – safe for concurrent backtraces
//   - Deterministic output order – reproducible results and tests
//
// Layout:
//
//	align/    — Grid, Backtrace, CountPaths, Align, scoring & alphabets
//	examples/ — runnable end-to-end DNA alignment
//
// Quick ASCII example (A = "AC", B = "AC", match -6, mismatch/gap -3):
//
//	AC-      -AC
//	-AC      AC-
//	IND      DNI     both score -9
//
//	go get github.com/katalvlaran/seqalign
package seqalign
