// Package levdiff is a generic sequence-diff toolkit: compute the
// Levenshtein (edit) distance between two comparable sequences, derive
// a minimal edit script, and replay it to reconstruct the target.
//
// 🚀 What is levdiff?
//
//	A small library that treats diffing as a three-stage pipeline:
//		• Distance engines: naive recursion (oracle), bottom-up tabulation,
//		  top-down memoization — all sharing one DP distance matrix
//		• Edit scripts: backtrack the matrix into a minimal Insert/Delete/
//		  Substitute sequence
//		• Patching: apply an edit script back onto the source without any
//		  index-shift bookkeeping (tombstone & compact)
//
// ✨ Why choose levdiff?
//
//   - Generic – works on []byte, []rune, []string, or any []T with T comparable
//   - Minimal API – one package, three verbs: Distance, Generate, Apply
//   - Pure Go – no cgo, no hidden runtime deps
//   - Deterministic – same inputs, same script, every time
//
// Everything lives in a single subpackage:
//
//	levenshtein/ — distance matrix, the three engines, edit-script
//	               generation and application
//
// Quick taste:
//
//	dist, mtx := levenshtein.Distance([]byte("SATURDAY"), []byte("SUNDAY"), nil)
//	script, _ := levenshtein.Generate([]byte("SATURDAY"), []byte("SUNDAY"), mtx)
//	out, _    := levenshtein.Apply([]byte("SATURDAY"), script)
//	// dist == 3, string(out) == "SUNDAY"
//
// See examples/ for end-to-end scenarios and the levenshtein package doc
// for the algorithmic details.
//
//	go get github.com/katalvlaran/levdiff/levenshtein
package levdiff
