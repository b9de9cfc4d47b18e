package clock

import (
	"fmt"
)

type CurrentRegime struct {
	Date string `json:"date"`
	StressRatio float64 `json:"stressRatio"`
	CreditSpread float64 `json:"creditSpread"`
	StressClass string `json:"stressClass"`
	CreditClass string `json:"creditClass"`
	Quadrant Quadrant `json:"quadrant"`
	Label string `json:"label"`
	StressThreshold float64 `json:"stressThreshold"`
	CreditThreshold float64 `json:"creditThreshold"`
}

// Point read of the live regime at the latest timestamp carrying both
// indicators, using only history up to that point. The thresholds are the
// same rolling medians the classifier uses; when the rolling estimate is not
// yet eligible there, the full-history percentile fills in.
func evaluateCurrentRegime(table *IndicatorTable, window int) (*CurrentRegime, error) {
	last := -1
	for i := range table.Dates {
		if table.StressRatio[i] != nil && table.CreditSpread[i] != nil {
			last = i
		}
	}
	if last == -1 {
		return nil, fmt.Errorf("no timestamp carries both indicators (indicator table range: %s)", table.dateRange())
	}
	history := table.filter(func (i int) bool {
		return i <= last
	})
	stressThreshold := currentThreshold(history.StressRatio, window)
	creditThreshold := currentThreshold(history.CreditSpread, window)
	stressRatio := *table.StressRatio[last]
	creditSpread := *table.CreditSpread[last]
	high := stressRatio >= stressThreshold
	tight := creditSpread >= creditThreshold
	quadrant := newQuadrant(high, tight)
	current := &CurrentRegime{
		Date: getDateString(table.Dates[last]),
		StressRatio: stressRatio,
		CreditSpread: creditSpread,
		StressClass: quadrant.StressClass(),
		CreditClass: quadrant.CreditClass(),
		Quadrant: quadrant,
		Label: quadrant.Label(),
		StressThreshold: stressThreshold,
		CreditThreshold: creditThreshold,
	}
	return current, nil
}

func currentThreshold(values []*float64, window int) float64 {
	medians := rollingPercentile(values, window, medianPercentile)
	final := medians[len(medians) - 1]
	if final != nil {
		return *final
	}
	samples := []float64{}
	for _, pointer := range values {
		if pointer != nil {
			samples = append(samples, *pointer)
		}
	}
	return interpolatePercentile(samples, medianPercentile)
}
