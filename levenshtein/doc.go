// Package levenshtein computes edit distances between generic sequences,
// derives minimal edit scripts, and applies them back to reconstruct the
// target sequence.
//
// 🚀 What is an edit distance?
//
//	The minimum number of unit-cost insertions, deletions and
//	substitutions that turn one sequence into another. It underpins:
//	  • Fuzzy search & spelling correction
//	  • Diff / patch tooling
//	  • Record deduplication & similarity scoring
//	  • DNA / protein sequence comparison
//
// The package is generic over the element type: []byte, []rune, []string
// or any []T with T comparable — equality is all it needs.
//
// ✨ Key features:
//   - three interchangeable engines: Tabulation (bottom-up), Memoization
//     (top-down), Naive (exhaustive recursion, testing oracle only)
//   - one shared artifact, the (m+1)×(n+1) distance Matrix, flows from
//     the engine into Generate and never gets mutated afterwards
//   - Generate backtracks the Matrix into a minimal Script of edits
//   - Apply replays a Script with a tombstone-and-compact buffer, so no
//     edit ever invalidates another edit's position
//   - optional common prefix/suffix trimming fast path (on by default),
//     invisible to everything downstream of the engine
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/levdiff/levenshtein"
//
//	src, dst := []byte("SATURDAY"), []byte("SUNDAY")
//
//	dist, mtx := levenshtein.Distance(src, dst, nil) // nil ⇒ DefaultOptions
//	script, err := levenshtein.Generate(src, dst, mtx)
//	out, err := levenshtein.Apply(src, script)
//	// dist == 3, string(out) == "SUNDAY", len(script) == dist
//
// Algorithm Outline (Tabulation):
//  1. Let m = len(source), n = len(target). Allocate (m+1)×(n+1) matrix D.
//  2. Initialize: D[i][0] = i, D[0][j] = j.
//  3. For i = 1..m, j = 1..n:
//     k      = 0 if source[i-1] == target[j-1], else 1
//     delete = D[i-1][j] + 1
//     insert = D[i][j-1] + 1
//     subst  = D[i-1][j-1] + k
//     D[i][j] = min(delete, insert, subst)
//  4. distance = D[m][n].
//  5. Generate backtracks from (m, n) to (0, 0), emitting one edit per
//     unit of cost; zero-cost diagonal steps emit nothing.
//
// Performance:
//
//   - Tabulation / Memoization: O(m·n) time, O(m·n) memory.
//     Memoization additionally needs O(m+n) stack; prefer Tabulation for
//     very long inputs.
//   - Naive: O(3^max(m,n)) time. A correctness oracle, nothing more.
//   - Trimming shared affixes shrinks m and n before the DP runs and
//     never changes the computed distance.
//
// Concurrency: every call owns its matrix and script outright; there is
// no package-level state, so independent calls are safe to run in
// parallel on disjoint inputs.
package levenshtein
