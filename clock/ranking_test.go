package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankInstruments(t *testing.T) {
	avgReturn := map[string]float64{
		"XLK": 0.04,
		"XLF": 0.01,
		"XLE": -0.02,
		"XLU": 0.02,
		"XLV": 0.03,
		"XLP": -0.01,
	}
	avgDrawdown := map[string]float64{
		"XLK": -0.30,
		"XLF": -0.05,
		"XLE": -0.45,
		"XLU": -0.10,
		"XLV": -0.20,
		"XLP": -0.15,
	}
	ranking := rankInstruments(avgReturn, avgDrawdown, 4)
	assert.Equal(t, []string{"XLK", "XLV", "XLU", "XLF"}, ranking.FavoriteByReturn)
	assert.Equal(t, []string{"XLU", "XLF", "XLP", "XLE"}, ranking.UnfavoriteByReturn)
	assert.Equal(t, []string{"XLF", "XLU", "XLP", "XLV"}, ranking.FavoriteByDrawdown)
	assert.Equal(t, []string{"XLP", "XLV", "XLK", "XLE"}, ranking.UnfavoriteByDrawdown)
}

func TestRankInstrumentsBreadth(t *testing.T) {
	avgReturn := map[string]float64{
		"XLK": 0.04,
		"XLF": 0.01,
	}
	avgDrawdown := map[string]float64{
		"XLK": -0.30,
	}
	ranking := rankInstruments(avgReturn, avgDrawdown, 4)
	assert.Equal(t, []string{"XLK", "XLF"}, ranking.FavoriteByReturn)
	assert.Equal(t, []string{"XLK", "XLF"}, ranking.UnfavoriteByReturn)
	assert.Equal(t, []string{"XLK"}, ranking.FavoriteByDrawdown)
	assert.Equal(t, []string{"XLK"}, ranking.UnfavoriteByDrawdown)
	empty := rankInstruments(map[string]float64{}, map[string]float64{}, 4)
	assert.Empty(t, empty.FavoriteByReturn)
	assert.Empty(t, empty.UnfavoriteByDrawdown)
}

func TestRankInstrumentsTieBreak(t *testing.T) {
	avgReturn := map[string]float64{
		"XLV": 0.02,
		"XLB": 0.02,
		"XLK": 0.02,
	}
	ranking := rankInstruments(avgReturn, map[string]float64{}, 2)
	assert.Equal(t, []string{"XLB", "XLK"}, ranking.FavoriteByReturn)
	assert.Equal(t, []string{"XLK", "XLV"}, ranking.UnfavoriteByReturn)
}
