// Package align computes optimal global alignments between two nucleotide
// sequences and enumerates every alignment that reaches the optimal score.
//
// 🚀 What is exhaustive global alignment?
//
//	A global alignment lines up two sequences end to end, inserting gap
//	symbols ('-') so that every column pairs a symbol of A with a symbol
//	of B, a symbol with a gap, or a gap with a symbol. Each column is
//	scored and the alignment with the highest total wins. Many different
//	alignments can share that best total; this package returns all of them.
//
// ✨ Key features:
//   - full (n+1)×(m+1) scoring grid stored as one flat arena, O(n·m)
//   - every tied predecessor retained per cell, none dropped
//   - memoized multi-path backtrace from any cell back to the origin
//   - arbitrary-precision path counting before enumeration
//   - optional alphabet validation (DNA, RNA, IUPAC)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	g := align.BuildGrid("CGTGAA", "GACTTAC", align.DefaultScoring())
//	paths := g.Paths()
//	fmt.Println("score:", g.FinalScore())
//	for _, p := range paths {
//	  fmt.Println(p)
//	}
//
// or, with options and validation:
//
//	res, err := align.Align(a, b,
//	  align.WithGap(-2),
//	  align.WithAlphabet(align.DNA),
//	)
//
// Grid orientation:
//
//	Rows index sequence B (i = 0..n), columns index sequence A (j = 0..m).
//	Moving down (i-1,j)→(i,j) is a Deletion: B advances, A shows a gap.
//	Moving right (i,j-1)→(i,j) is an Insertion: A advances, B shows a gap.
//	Moving diagonally is a Match or Mismatch.
//
// Performance:
//
//   - Build:     O(n·m) time and memory
//   - Backtrace: proportional to the number of optimal paths times their
//     length, which can grow exponentially with the number of tie cells.
//     Use CountPaths first when inputs are large or highly repetitive.
package align
