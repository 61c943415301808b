package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProperty_VersionMonotonicity covers invariant 1: after integrating
// item (A, n), version[A] == n, and (A, n-1) must already be present.
func TestProperty_VersionMonotonicity(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			doc := NewDoc[string]()
			for i := 0; i < 10; i++ {
				_, err := alg.LocalInsert(doc, "A", i, "x")
				require.NoError(t, err)
				require.Equal(t, i, doc.Version.Highest("A"))
			}
		})
	}
}

// TestProperty_LengthCoherence covers invariant 2: doc.Length always
// equals the count of content-bearing, non-deleted items.
func TestProperty_LengthCoherence(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			doc := NewDoc[string]()
			for i := 0; i < 6; i++ {
				_, err := alg.LocalInsert(doc, "A", i, "x")
				require.NoError(t, err)
				requireLengthCoherent(t, doc)
			}
			require.NoError(t, LocalDelete(doc, 2))
			requireLengthCoherent(t, doc)
			require.NoError(t, LocalDelete(doc, 0))
			requireLengthCoherent(t, doc)
		})
	}
}

func requireLengthCoherent[T any](t *testing.T, doc *Document[T]) {
	t.Helper()
	count := 0
	for _, it := range doc.Content {
		if isVisible(it) {
			count++
		}
	}
	require.Equal(t, count, doc.Length)
}

// TestProperty_RoundTripMerge covers invariant 3: merging each replica
// into the other, in both directions, converges on equal content.
func TestProperty_RoundTripMerge(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			base := NewDoc[string]()
			branchA := cloneDoc(base)
			typeForward(t, alg, branchA, "A", "a", 4)
			branchB := cloneDoc(base)
			typeForward(t, alg, branchB, "B", "b", 4)

			mergeBoth(t, branchA, branchB, alg.Integrate)
		})
	}
}

// TestProperty_MergeIdempotence covers invariant 4: merging the same
// source twice is a no-op on the second application.
func TestProperty_MergeIdempotence(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			branchA := NewDoc[string]()
			typeForward(t, alg, branchA, "A", "a", 3)
			branchB := NewDoc[string]()
			typeForward(t, alg, branchB, "B", "b", 3)

			require.NoError(t, MergeInto(branchA, branchB, alg.Integrate))
			snapshot := append([]string{}, GetContent(branchA)...)
			versionBefore := branchA.Version.Clone()

			require.NoError(t, MergeInto(branchA, branchB, alg.Integrate))
			require.Equal(t, snapshot, GetContent(branchA))
			require.Equal(t, versionBefore, branchA.Version)
		})
	}
}

// TestProperty_OrderIndependence covers invariant 5: applying a causally
// valid operation set in two different orders yields the same content.
func TestProperty_OrderIndependence(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			base := NewDoc[string]()
			branchA := cloneDoc(base)
			typeForward(t, alg, branchA, "A", "a", 3)
			branchB := cloneDoc(base)
			typeForward(t, alg, branchB, "B", "b", 3)
			branchC := cloneDoc(base)
			typeForward(t, alg, branchC, "C", "c", 3)

			// Order 1: A, then B, then C.
			destOne := cloneDoc(base)
			require.NoError(t, MergeInto(destOne, branchA, alg.Integrate))
			require.NoError(t, MergeInto(destOne, branchB, alg.Integrate))
			require.NoError(t, MergeInto(destOne, branchC, alg.Integrate))

			// Order 2: C, then A, then B.
			destTwo := cloneDoc(base)
			require.NoError(t, MergeInto(destTwo, branchC, alg.Integrate))
			require.NoError(t, MergeInto(destTwo, branchA, alg.Integrate))
			require.NoError(t, MergeInto(destTwo, branchB, alg.Integrate))

			require.Equal(t, GetContent(destOne), GetContent(destTwo))
		})
	}
}

// TestProperty_NoInterleaving covers invariant 6: concurrent contiguous
// runs from distinct agents never interleave with each other.
func TestProperty_NoInterleaving(t *testing.T) {
	for _, alg := range allAlgorithms() {
		if skips(alg, "interleavingBackward") {
			continue
		}
		t.Run(alg.Name, func(t *testing.T) {
			base := NewDoc[string]()
			branchA := cloneDoc(base)
			typeBackward(t, alg, branchA, "A", "a", 4)
			branchB := cloneDoc(base)
			typeBackward(t, alg, branchB, "B", "b", 4)

			mergeBoth(t, branchA, branchB, alg.Integrate)

			requireContiguousRun(t, GetContent(branchA), "a", 4)
			requireContiguousRun(t, GetContent(branchA), "b", 4)
		})
	}
}

func requireContiguousRun(t *testing.T, content []string, char string, count int) {
	t.Helper()
	start := -1
	run := 0
	for i, c := range content {
		if c == char {
			if start == -1 {
				start = i
			}
			run++
		}
	}
	require.Equal(t, count, run, "expected %d copies of %q", count, char)
	require.Equal(t, char, content[start])
	for i := start; i < start+run; i++ {
		require.Equal(t, char, content[i], "run of %q must be contiguous", char)
	}
}
