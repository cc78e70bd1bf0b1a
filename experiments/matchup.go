package experiments

import (
	"fmt"
	"multiply/experiments/metrics"
	"multiply/game"
	"multiply/searcher"

	"github.com/rs/zerolog/log"
)

const GamesPerMatchup = 20

// Matchup plays each search algorithm against the random baseline, the
// two search algorithms against each other, and the baseline against
// itself for reference, cycling through the start-number range and
// alternating the starting player. Each agent is built for the side it
// plays, so a human-side searcher minimizes where the computer side
// maximizes.
func Matchup(outDir string, seed uint64) error {
	writer, err := metrics.NewWriter(outDir, "matchup")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: seed}
	configs := []metrics.AgentConfig{
		baseline,
		{ID: 1, Kind: "search", Algorithm: string(searcher.Minimax), Depth: searcher.DefaultDepth},
		{ID: 2, Kind: "search", Algorithm: string(searcher.AlphaBeta), Depth: searcher.DefaultDepth},
	}
	// Human side first, computer side second.
	matchups := [][2]metrics.AgentConfig{
		{baseline, configs[1]},
		{baseline, configs[2]},
		{configs[1], configs[2]},
		{baseline, baseline},
	}

	log.Info().Msgf("starting matchup experiment in %s...", writer.Dir())

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchup := range matchups {
		humanConfig := matchup[0]
		computerConfig := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between human=%+v and computer=%+v...",
			mi+1, len(matchups), humanConfig, computerConfig)

		for i := 0; i < GamesPerMatchup; i++ {
			number := game.MinStartNumber + i%(game.MaxStartNumber-game.MinStartNumber+1)
			first := game.Human
			if i%2 == 1 {
				first = game.Computer
			}

			// Fresh agents per game; the baseline seeds come from the
			// game counter so games differ but the run reproduces.
			humanConfig.Seed, computerConfig.Seed = gameSeeds(seed, count)

			gameMetric, moveMetrics, err := runGame(
				buildAgent(humanConfig, game.Human), buildAgent(computerConfig, game.Computer), number, first)
			if err != nil {
				return fmt.Errorf("matchup %d game %d failed: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     humanConfig.ID,
				Agent2:     computerConfig.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d: %s",
				mi+1, len(matchups), i+1, GamesPerMatchup, gameMetric.Outcome)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchups))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	log.Info().Msg("completed matchup experiment")
	return nil
}

// gameSeeds derives two streams from the base seed recorded in the agent
// configs, disjoint from every other game's pair.
func gameSeeds(seed uint64, count int) (human, computer uint64) {
	return seed + 2*uint64(count), seed + 2*uint64(count) + 1
}
