package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kallisti-lab/seqcrdt/sequence"
	"github.com/kallisti-lab/seqcrdt/version"
)

func newFuzzCmd() *cobra.Command {
	var pairs, rounds int

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Run the multidoc fuzz property: random edits and pairwise merges across independent document pairs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := mustCLIContext(cmd.Context())
			alg, ok := algorithmByName(cc.Algorithm)
			if !ok {
				return fmt.Errorf("unknown algorithm %q", cc.Algorithm)
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			for i := 0; i < pairs; i++ {
				i := i
				g.Go(func() error {
					return fuzzPair(ctx, i, rounds, alg, cc.Log)
				})
			}
			if err := g.Wait(); err != nil {
				cc.Log.Error("fuzz run failed", zap.Error(err))
				return err
			}

			fmt.Printf("ok: %d pair(s), %d round(s) each\n", pairs, rounds)
			return nil
		},
	}

	cmd.Flags().IntVar(&pairs, "pairs", 3, "number of independent document pairs to fuzz concurrently")
	cmd.Flags().IntVar(&rounds, "rounds", 1000, "number of rounds per pair; each round makes one random local edit per document, and every tenth round merges the pair")
	return cmd
}

// fuzzPair drives one independent two-agent document pair: two replicas
// (agentA, agentB) each take a random walk of local inserts and deletes,
// and every tenth round they are merged both ways and checked for equal
// content. Only this
// goroutine ever touches its own pair's documents, so no locking is needed
// (single goroutine per document).
func fuzzPair(ctx context.Context, index, rounds int, alg sequence.Algorithm[string], log *zap.Logger) error {
	rng := rand.New(rand.NewSource(int64(index) + 1))
	agentA := version.Agent(fmt.Sprintf("A%d", index))
	agentB := version.Agent(fmt.Sprintf("B%d", index))

	docA := sequence.NewDoc[string]().WithLogger(log)
	docB := sequence.NewDoc[string]().WithLogger(log)

	for round := 0; round < rounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := randomEdit(docA, agentA, rng, alg); err != nil {
			return fmt.Errorf("pair %d round %d: agent A edit: %w", index, round, err)
		}
		if err := randomEdit(docB, agentB, rng, alg); err != nil {
			return fmt.Errorf("pair %d round %d: agent B edit: %w", index, round, err)
		}

		if round%10 != 9 {
			continue
		}
		if err := sequence.MergeInto(docA, docB, alg.Integrate); err != nil {
			return fmt.Errorf("pair %d round %d: merge B into A: %w", index, round, err)
		}
		if err := sequence.MergeInto(docB, docA, alg.Integrate); err != nil {
			return fmt.Errorf("pair %d round %d: merge A into B: %w", index, round, err)
		}
		if strings.Join(sequence.GetContent(docA), "") != strings.Join(sequence.GetContent(docB), "") {
			return fmt.Errorf("pair %d round %d: documents diverged after merge", index, round)
		}
	}

	return nil
}

func randomEdit(doc *sequence.Document[string], agent version.Agent, rng *rand.Rand, alg sequence.Algorithm[string]) error {
	if doc.Length == 0 || rng.Intn(4) != 0 {
		pos := 0
		if doc.Length > 0 {
			pos = rng.Intn(doc.Length + 1)
		}
		ch := string(rune('a' + rng.Intn(26)))
		_, err := alg.LocalInsert(doc, agent, pos, ch)
		return err
	}

	return sequence.LocalDelete(doc, rng.Intn(doc.Length))
}
