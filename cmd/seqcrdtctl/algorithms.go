package main

import "github.com/kallisti-lab/seqcrdt/sequence"

// algorithmByName resolves one of the four named algorithms for the string
// content type the CLI operates on. The CLI never needs a generic T: every
// scenario file and fuzz run works over plain text.
func algorithmByName(name string) (sequence.Algorithm[string], bool) {
	alg, ok := sequence.Algorithms[string]()[name]
	return alg, ok
}
