// Command seqcrdtctl replays sequence-CRDT scenario files and drives the
// multidoc fuzz property against the engine in package sequence, for
// interactive and scripted exercise of all four integration algorithms.
package main

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitOnError(err)
	}
}
