package searcher

import (
	"multiply/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("minimax")
	require.NoError(t, err)
	require.Equal(t, Minimax, alg)

	alg, err = ParseAlgorithm("Alpha-Beta")
	require.NoError(t, err)
	require.Equal(t, AlphaBeta, alg)

	_, err = ParseAlgorithm("montecarlo")
	require.Error(t, err)
}

func TestSearchDepthZero(t *testing.T) {
	for _, algorithm := range []Algorithm{Minimax, AlphaBeta} {
		t.Run(string(algorithm), func(t *testing.T) {
			state := game.State{CurrentNumber: 50, HumanScore: 2, ComputerScore: 1, CurrentPlayer: game.Computer}
			s := New(algorithm, WithDepth(0), WithMetrics())

			result, metric := s.Search(state)

			require.Equal(t, game.Multiplier(0), result.Move, "a zero-depth search should not choose a move")
			require.Equal(t, state.Evaluate(), result.Score, "a zero-depth search should defer to the evaluation")
			require.Equal(t, 1, metric.Nodes, "only the root should be visited")
		})
	}
}

func TestSearchTerminalRoot(t *testing.T) {
	for _, algorithm := range []Algorithm{Minimax, AlphaBeta} {
		t.Run(string(algorithm), func(t *testing.T) {
			state := game.State{CurrentNumber: game.Target, HumanScore: 1, CurrentPlayer: game.Computer}
			s := New(algorithm, WithMetrics())

			result, metric := s.Search(state)

			require.Equal(t, game.Multiplier(0), result.Move, "a finished game offers no move")
			require.Equal(t, -game.WinScore, result.Score)
			require.Equal(t, 1, metric.Nodes)
		})
	}
}

func TestSearchDepthOne(t *testing.T) {
	t.Run("picks the child with the best evaluation", func(t *testing.T) {
		// From 400 with the human two points up, x3 and x4 end the game
		// with the human ahead; only x2 keeps the computer alive.
		state := game.State{CurrentNumber: 400, HumanScore: 2, CurrentPlayer: game.Computer}
		s := New(Minimax, WithDepth(1))

		result, _ := s.Search(state)

		require.Equal(t, game.Multiplier(2), result.Move)
		require.Equal(t, state.Apply(2).Evaluate(), result.Score)
	})

	t.Run("keeps the first move on a tie", func(t *testing.T) {
		// Every product from 9 scores +1 for the computer at depth one.
		state := game.New(9, game.Computer)

		for _, algorithm := range []Algorithm{Minimax, AlphaBeta} {
			s := New(algorithm, WithDepth(1), WithMetrics())

			result, metric := s.Search(state)

			require.Equal(t, game.Multiplier(2), result.Move, "%s should keep the first move on equal scores", algorithm)
			require.Equal(t, 1, result.Score)
			require.Equal(t, 4, metric.Nodes, "root plus three children")
		}
	})

	t.Run("node count is exact while no branch ends", func(t *testing.T) {
		// No product from 9 reaches the target within two moves, so the
		// full tree is 1 + 3 + 9 nodes.
		state := game.New(9, game.Computer)
		s := New(Minimax, WithDepth(2), WithMetrics())

		_, metric := s.Search(state)

		require.Equal(t, 13, metric.Nodes)
	})
}

func TestSearchPrefersWinningMove(t *testing.T) {
	// From 500 only x3 and x4 reach the target, both with the computer
	// ahead; x2 lets the human answer. The first winning move is kept.
	state := game.New(500, game.Computer)

	for _, algorithm := range []Algorithm{Minimax, AlphaBeta} {
		s := New(algorithm)

		result, _ := s.Search(state)

		require.Equal(t, game.Multiplier(3), result.Move, "%s should take the first winning move", algorithm)
		require.Equal(t, game.WinScore, result.Score)
	}
}

func TestSearchSides(t *testing.T) {
	// From 500 on the human's turn, x3 and x4 end the game at once with an
	// even product, putting the human ahead; x2 lets the computer level.
	state := game.New(500, game.Human)

	for _, algorithm := range []Algorithm{Minimax, AlphaBeta} {
		t.Run(string(algorithm), func(t *testing.T) {
			humanResult, _ := New(algorithm, WithSide(game.Human)).Search(state)

			require.Equal(t, game.Multiplier(3), humanResult.Move, "searching for the human should take the first winning move")
			require.Equal(t, -game.WinScore, humanResult.Score, "a human win carries the negative sentinel")

			computerResult, _ := New(algorithm, WithSide(game.Computer)).Search(state)
			defaultResult, _ := New(algorithm).Search(state)

			require.Equal(t, defaultResult, computerResult, "the computer side is the default")
			require.Equal(t, game.Multiplier(2), defaultResult.Move, "maximizing from the same root avoids the human win")
			require.Equal(t, 0, defaultResult.Score, "the computer can still force a tie")
		})
	}
}

func TestMinimaxAlphaBetaEquivalence(t *testing.T) {
	// Both recursions must agree on move and score everywhere, whichever
	// side they play for; pruning may only reduce the node count.
	for number := game.MinStartNumber; number <= game.MaxStartNumber; number++ {
		for depth := 0; depth <= 12; depth++ {
			for _, first := range []game.Player{game.Human, game.Computer} {
				for _, side := range []game.Player{game.Human, game.Computer} {
					state := game.New(number, first)

					mmResult, mmMetric := New(Minimax, WithDepth(depth), WithMetrics(), WithSide(side)).Search(state)
					abResult, abMetric := New(AlphaBeta, WithDepth(depth), WithMetrics(), WithSide(side)).Search(state)

					require.Equal(t, mmResult, abResult,
						"algorithms disagree at number=%d depth=%d first=%s side=%s", number, depth, first, side)
					require.LessOrEqual(t, abMetric.Nodes, mmMetric.Nodes,
						"pruning should never visit more nodes (number=%d depth=%d side=%s)", number, depth, side)
				}
			}
		}
	}
}

func TestEquivalenceAcrossAGame(t *testing.T) {
	// Walk one game so the compared positions cover uneven scores and both
	// turns, not just fresh starts.
	state := game.New(11, game.Human)
	for !state.IsTerminal() {
		mm, _ := New(Minimax).Search(state)
		ab, _ := New(AlphaBeta).Search(state)

		require.Equal(t, mm, ab, "algorithms disagree at %s", state)

		state = state.Apply(game.Multipliers[state.CurrentNumber%3])
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	state := game.New(game.MinStartNumber, game.Computer)

	_, mmMetric := New(Minimax, WithMetrics()).Search(state)
	_, abMetric := New(AlphaBeta, WithMetrics()).Search(state)

	require.Less(t, abMetric.Nodes, mmMetric.Nodes, "alpha-beta should cut at least one branch from the full tree")
}

func TestSearchResetsNodeCount(t *testing.T) {
	s := New(AlphaBeta, WithMetrics())
	state := game.New(12, game.Computer)

	_, first := s.Search(state)
	_, second := s.Search(state)

	require.Equal(t, first.Nodes, second.Nodes, "each search should count its own nodes only")
}

func TestOptions(t *testing.T) {
	state := game.New(15, game.Computer)

	t.Run("default depth matches an explicit DefaultDepth", func(t *testing.T) {
		defaultResult, defaultMetric := New(Minimax, WithMetrics()).Search(state)
		explicitResult, explicitMetric := New(Minimax, WithDepth(DefaultDepth), WithMetrics()).Search(state)

		require.Equal(t, explicitResult, defaultResult)
		require.Equal(t, explicitMetric.Nodes, defaultMetric.Nodes)
	})

	t.Run("negative depth is ignored", func(t *testing.T) {
		result, metric := New(Minimax, WithDepth(-3), WithMetrics()).Search(state)
		ref, refMetric := New(Minimax, WithMetrics()).Search(state)

		require.Equal(t, ref, result)
		require.Equal(t, refMetric.Nodes, metric.Nodes)
	})
}
