package clock

import "math"

type instrumentPerformance struct {
	returns []*float64
	growth []*float64
	drawdown []*float64
}

// Period returns, cumulative growth and peak-relative drawdown for one level
// series. A return exists only where the level is present at both t and t-1;
// positions without a return stay undefined while the cumulative state carries
// on with the next defined return.
func returnsAndDrawdown(levels []*float64) instrumentPerformance {
	performance := instrumentPerformance{
		returns: make([]*float64, len(levels)),
		growth: make([]*float64, len(levels)),
		drawdown: make([]*float64, len(levels)),
	}
	cumulative := 1.0
	peak := math.Inf(-1)
	for i := 1; i < len(levels); i++ {
		if levels[i] == nil || levels[i - 1] == nil {
			continue
		}
		returns, valid := getRateOfChange(*levels[i], *levels[i - 1])
		if !valid {
			continue
		}
		cumulative *= 1.0 + returns
		peak = max(peak, cumulative)
		drawdown := (cumulative - peak) / peak
		growth := cumulative
		performance.returns[i] = &returns
		performance.growth[i] = &growth
		performance.drawdown[i] = &drawdown
	}
	return performance
}

// Most negative drawdown among the selected rows.
func maxDrawdown(drawdown []*float64, rows []int) (float64, bool) {
	worst := 0.0
	found := false
	for _, row := range rows {
		pointer := drawdown[row]
		if pointer == nil {
			continue
		}
		if !found || *pointer < worst {
			worst = *pointer
			found = true
		}
	}
	return worst, found
}
