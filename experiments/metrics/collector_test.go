package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts nodes between start and complete", func(t *testing.T) {
		c := NewCollector()

		c.Start("minimax", 10)
		for i := 0; i < 5; i++ {
			c.AddNode()
		}
		metric := c.Complete()

		require.Equal(t, "minimax", metric.Algorithm)
		require.Equal(t, 10, metric.Depth)
		require.Equal(t, 5, metric.Nodes)
		require.Greater(t, metric.Duration, time.Duration(0))
	})

	t.Run("start resets the previous call's count", func(t *testing.T) {
		c := NewCollector()

		c.Start("minimax", 3)
		c.AddNode()
		c.AddNode()
		require.Equal(t, 2, c.Complete().Nodes)

		c.Start("alpha-beta", 4)
		c.AddNode()
		metric := c.Complete()

		require.Equal(t, 1, metric.Nodes, "counts should not carry over between searches")
		require.Equal(t, "alpha-beta", metric.Algorithm)
		require.Equal(t, 4, metric.Depth)
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()

	c.Start("minimax", 10)
	c.AddNode()

	require.Equal(t, SearchMetric{}, c.Complete())
}
