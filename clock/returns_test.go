package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnsAndDrawdown(t *testing.T) {
	levels := newSeries(100, 110, 99)
	performance := returnsAndDrawdown(levels)
	assert.Nil(t, performance.returns[0])
	require.NotNil(t, performance.returns[1])
	assert.InDelta(t, 0.1, *performance.returns[1], 1e-9)
	require.NotNil(t, performance.returns[2])
	assert.InDelta(t, -0.1, *performance.returns[2], 1e-9)
	require.NotNil(t, performance.growth[2])
	assert.InDelta(t, 0.99, *performance.growth[2], 1e-9)
	require.NotNil(t, performance.drawdown[1])
	assert.InDelta(t, 0.0, *performance.drawdown[1], 1e-9)
	require.NotNil(t, performance.drawdown[2])
	assert.InDelta(t, -0.1, *performance.drawdown[2], 1e-9)
}

func TestMonotonicRiseHasZeroDrawdown(t *testing.T) {
	levels := newSeries(100, 105, 110, 120, 121, 150)
	performance := returnsAndDrawdown(levels)
	for i := 1; i < len(levels); i++ {
		require.NotNil(t, performance.drawdown[i], "position %d", i)
		assert.InDelta(t, 0.0, *performance.drawdown[i], 1e-9, "position %d", i)
	}
	require.NotNil(t, performance.growth[5])
	assert.InDelta(t, 1.5, *performance.growth[5], 1e-9)
}

func TestDrawdownNeverPositive(t *testing.T) {
	levels := newSeries(100, 90, 120, 80, 130, 125, 140)
	performance := returnsAndDrawdown(levels)
	for i, pointer := range performance.drawdown {
		if pointer == nil {
			continue
		}
		assert.LessOrEqual(t, *pointer, 0.0, "position %d", i)
		newPeak := *performance.growth[i] >= peakAt(performance, i)
		if newPeak {
			assert.InDelta(t, 0.0, *pointer, 1e-9, "position %d", i)
		}
	}
}

func peakAt(performance instrumentPerformance, position int) float64 {
	peak := 0.0
	for i := 0; i <= position; i++ {
		if performance.growth[i] != nil && *performance.growth[i] > peak {
			peak = *performance.growth[i]
		}
	}
	return peak
}

func TestMissingLevelsPropagate(t *testing.T) {
	levels := newSeries(100, missing, 120, 132)
	performance := returnsAndDrawdown(levels)
	assert.Nil(t, performance.returns[1])
	assert.Nil(t, performance.returns[2])
	assert.Nil(t, performance.drawdown[2])
	require.NotNil(t, performance.returns[3])
	assert.InDelta(t, 0.1, *performance.returns[3], 1e-9)
}

func TestMaxDrawdown(t *testing.T) {
	levels := newSeries(100, 90, 80, 120)
	performance := returnsAndDrawdown(levels)
	worst, found := maxDrawdown(performance.drawdown, []int{1, 2, 3})
	require.True(t, found)
	assert.InDelta(t, -1.0 / 9.0, worst, 1e-9)
	worst, found = maxDrawdown(performance.drawdown, []int{3})
	require.True(t, found)
	assert.InDelta(t, 0.0, worst, 1e-9)
	_, found = maxDrawdown(performance.drawdown, []int{0})
	assert.False(t, found)
}
