package align_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/align"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuildGrid
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Align two short DNA fragments under the default scoring
//	(match +5, mismatch -3, gap -4) and list every optimal alignment.
//	  A = CGTGAA
//	  B = GACTTAC
//
// Complexity: O(N·M) build, O(P·L) backtrace.
func ExampleBuildGrid() {
	g := align.BuildGrid("CGTGAA", "GACTTAC", align.DefaultScoring())

	for _, p := range g.Paths() {
		fmt.Printf("%s\n\n", p)
	}
	fmt.Println("score:", g.FinalScore())
	// Output:
	// --CGTGAA
	// GACTT-AC
	// DDYNYIYN
	//
	// CG--TGAA
	// -GACTTAC
	// IYDDYNYN
	//
	// --CGTGAA
	// GAC-TTAC
	// DDYIYNYN
	//
	// score: -3
}

// ExampleGrid_CountPaths sizes the optimal set before enumerating it.
func ExampleGrid_CountPaths() {
	g := align.BuildGrid("GATTACA", "GCATGCU", align.Scoring{Match: 1, Mismatch: -1, Gap: -1})

	n, err := g.CountPaths(g.Rows()-1, g.Cols()-1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d paths=%s\n", g.FinalScore(), n)
	// Output:
	// score=0 paths=3
}

// ExampleAlign shows alphabet validation rejecting a non-nucleotide symbol.
func ExampleAlign() {
	_, err := align.Align("ACXT", "ACGT", align.WithAlphabet(align.DNA))
	fmt.Println(err)

	res, err := align.Align("ACGT", "AGT", align.WithAlphabet(align.DNA))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d paths=%d\n", res.Score, len(res.Paths))
	// Output:
	// sequence A: align: symbol not in alphabet: 'X' at position 2
	// score=11 paths=1
}
