package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallisti-lab/seqcrdt/version"
)

// cloneDoc returns an independent copy of doc so two "replicas" can diverge
// from a shared base and later be merged back together.
func cloneDoc[T any](doc *Document[T]) *Document[T] {
	out := &Document[T]{
		Content: append([]Item[T]{}, doc.Content...),
		Version: doc.Version.Clone(),
		Length:  doc.Length,
		MaxSeq:  doc.MaxSeq,
	}
	return out
}

// skips reports whether alg documents this scenario name as a known,
// accepted divergence.
func skips(alg Algorithm[string], scenario string) bool {
	for _, s := range alg.IgnoreTests {
		if s == scenario {
			return true
		}
	}
	return false
}

func allAlgorithms() []Algorithm[string] {
	m := Algorithms[string]()
	return []Algorithm[string]{m["yjs"], m["yjsMod"], m["automerge"], m["sync9"]}
}

func mergeBoth[T any](t *testing.T, a, b *Document[T], integrate IntegrateFunc[T]) {
	t.Helper()
	require.NoError(t, MergeInto(a, b, integrate))
	require.NoError(t, MergeInto(b, a, integrate))
	require.Equal(t, GetContent(a), GetContent(b), "round-trip merge should converge")
}

func TestScenario_Smoke(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			doc := NewDoc[string]()
			_, err := alg.LocalInsert(doc, "A", 0, "a")
			require.NoError(t, err)
			_, err = alg.LocalInsert(doc, "A", 1, "b")
			require.NoError(t, err)
			require.Equal(t, []string{"a", "b"}, GetContent(doc))
		})
	}
}

func TestScenario_ConcurrentAVsB(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			base := NewDoc[string]()

			branchA := cloneDoc(base)
			_, err := alg.LocalInsert(branchA, "A", 0, "a")
			require.NoError(t, err)

			branchB := cloneDoc(base)
			_, err = alg.LocalInsert(branchB, "B", 0, "b")
			require.NoError(t, err)

			mergeBoth(t, branchA, branchB, alg.Integrate)
			require.Equal(t, []string{"a", "b"}, GetContent(branchA))
		})
	}
}

func typeForward(t *testing.T, alg Algorithm[string], doc *Document[string], agent, char string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := alg.LocalInsert(doc, version.Agent(agent), i, char)
		require.NoError(t, err)
	}
}

func typeBackward(t *testing.T, alg Algorithm[string], doc *Document[string], agent, char string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := alg.LocalInsert(doc, version.Agent(agent), 0, char)
		require.NoError(t, err)
	}
}

func TestScenario_InterleavingForward(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			base := NewDoc[string]()

			branchA := cloneDoc(base)
			typeForward(t, alg, branchA, "A", "a", 3)

			branchB := cloneDoc(base)
			typeForward(t, alg, branchB, "B", "b", 3)

			mergeBoth(t, branchA, branchB, alg.Integrate)
			require.Equal(t, []string{"a", "a", "a", "b", "b", "b"}, GetContent(branchA))
		})
	}
}

func TestScenario_InterleavingBackward(t *testing.T) {
	for _, alg := range allAlgorithms() {
		if skips(alg, "interleavingBackward") {
			continue
		}
		t.Run(alg.Name, func(t *testing.T) {
			base := NewDoc[string]()

			branchA := cloneDoc(base)
			typeBackward(t, alg, branchA, "A", "a", 3)

			branchB := cloneDoc(base)
			typeBackward(t, alg, branchB, "B", "b", 3)

			mergeBoth(t, branchA, branchB, alg.Integrate)
			require.Equal(t, []string{"a", "a", "a", "b", "b", "b"}, GetContent(branchA))
		})
	}
}

func TestScenario_WithTails(t *testing.T) {
	for _, alg := range allAlgorithms() {
		if skips(alg, "withTails") {
			continue
		}
		t.Run(alg.Name, func(t *testing.T) {
			base := NewDoc[string]()

			build := func(agent, center, left, right string) *Document[string] {
				d := cloneDoc(base)
				_, err := alg.LocalInsert(d, version.Agent(agent), 0, center)
				require.NoError(t, err)
				_, err = alg.LocalInsert(d, version.Agent(agent), 0, left)
				require.NoError(t, err)
				_, err = alg.LocalInsert(d, version.Agent(agent), 2, right)
				require.NoError(t, err)
				require.Equal(t, []string{left, center, right}, GetContent(d))
				return d
			}

			branchA := build("A", "a", "a0", "a1")
			branchB := build("B", "b", "b0", "b1")

			mergeBoth(t, branchA, branchB, alg.Integrate)
			require.Equal(t, []string{"a0", "a", "a1", "b0", "b", "b1"}, GetContent(branchA))
		})
	}
}

func TestScenario_LocalVsConcurrent(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			empty := NewDoc[string]()

			branchA := cloneDoc(empty)
			_, err := alg.LocalInsert(branchA, "A", 0, "a")
			require.NoError(t, err)

			branchC := cloneDoc(empty)
			_, err = alg.LocalInsert(branchC, "C", 0, "c")
			require.NoError(t, err)

			branchB := cloneDoc(empty)
			_, err = alg.LocalInsert(branchB, "B", 0, "b")
			require.NoError(t, err)

			// D's replica has already observed a and c before making its
			// own edit, so its insert anchors directly between them.
			branchD := cloneDoc(empty)
			require.NoError(t, MergeInto(branchD, branchA, alg.Integrate))
			require.NoError(t, MergeInto(branchD, branchC, alg.Integrate))
			require.Equal(t, []string{"a", "c"}, GetContent(branchD))
			_, err = alg.LocalInsert(branchD, "D", 1, "d")
			require.NoError(t, err)

			dest := NewDoc[string]()
			require.NoError(t, MergeInto(dest, branchA, alg.Integrate))
			require.NoError(t, MergeInto(dest, branchC, alg.Integrate))
			require.NoError(t, MergeInto(dest, branchB, alg.Integrate))
			require.NoError(t, MergeInto(dest, branchD, alg.Integrate))

			got := GetContent(dest)
			require.Contains(t, [][]string{
				{"a", "d", "b", "c"},
				{"a", "b", "d", "c"},
			}, got)
		})
	}
}

func TestScenario_FuzzSequential(t *testing.T) {
	for _, alg := range allAlgorithms() {
		t.Run(alg.Name, func(t *testing.T) {
			doc := NewDoc[string]()
			var want []string
			pos := 0
			// A small deterministic walk: prepend on every third insert and
			// append otherwise,
			// standing in for "1,000 random single-agent inserts" without
			// depending on math/rand at test time.
			for i := 0; i < 200; i++ {
				ch := string(rune('a' + i%26))
				if i%3 == 0 {
					pos = 0
				} else {
					pos = len(want)
				}
				_, err := alg.LocalInsert(doc, "A", pos, ch)
				require.NoError(t, err)
				want = append(want[:pos], append([]string{ch}, want[pos:]...)...)
			}
			require.Equal(t, want, GetContent(doc))
		})
	}
}
