package experiments

import (
	"fmt"
	"multiply/experiments/metrics"
	"multiply/game"
	"multiply/searcher"

	"github.com/rs/zerolog/log"
)

// MaxEquivalenceDepth runs the depth ladder past the longest possible
// game, so the top rungs search the full tree.
const MaxEquivalenceDepth = 12

// Equivalence searches every start number with both algorithms across the
// depth ladder and records move, score, node count and timing per search.
// A disagreement between the algorithms aborts the run.
func Equivalence(outDir string) error {
	writer, err := metrics.NewWriter(outDir, "equivalence")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	log.Info().Msgf("starting equivalence experiment in %s...", writer.Dir())

	algorithms := []searcher.Algorithm{searcher.Minimax, searcher.AlphaBeta}
	var records []metrics.SearchRecord
	for number := game.MinStartNumber; number <= game.MaxStartNumber; number++ {
		for depth := 0; depth <= MaxEquivalenceDepth; depth++ {
			state := game.New(number, game.Computer)

			results := make([]searcher.Result, len(algorithms))
			for i, algorithm := range algorithms {
				s := searcher.New(algorithm, searcher.WithDepth(depth), searcher.WithMetrics())
				result, metric := s.Search(state)
				results[i] = result
				records = append(records, metrics.SearchRecord{
					StartNumber: number,
					Algorithm:   string(algorithm),
					Depth:       depth,
					Move:        int(result.Move),
					Score:       result.Score,
					Nodes:       metric.Nodes,
					Duration:    metric.Duration,
				})
			}

			if results[0] != results[1] {
				return fmt.Errorf("algorithms disagree at number=%d depth=%d: minimax=%+v alpha-beta=%+v",
					number, depth, results[0], results[1])
			}
		}
		log.Info().Msgf("completed start number %d of %d", number, game.MaxStartNumber)
	}

	err = writer.WriteSearchRecords(records)
	if err != nil {
		return fmt.Errorf("failed to store search records: %w", err)
	}
	log.Info().Msg("stored search records")

	log.Info().Msg("completed equivalence experiment")
	return nil
}
