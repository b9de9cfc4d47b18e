package clock

import (
	"encoding/json"
	"log"
	"slices"

	"gonum.org/v1/gonum/stat"
)

type QuadrantStats struct {
	Quadrant Quadrant `json:"quadrant"`
	Label string `json:"label"`
	Periods int `json:"periods"`
	AvgReturn map[string]float64 `json:"avgReturn"`
	AvgDrawdown map[string]float64 `json:"avgDrawdown"`
	WorstDrawdown map[string]float64 `json:"worstDrawdown"`
}

type QuadrantHistoryRecord struct {
	Date string `json:"date"`
	StressRatio *float64 `json:"stressRatio,omitempty"`
	CreditSpread *float64 `json:"creditSpread,omitempty"`
	StressClass string `json:"stressClass"`
	CreditClass string `json:"creditClass"`
	Quadrant Quadrant `json:"quadrant"`
	Label string `json:"label"`
}

type IndicatorSummary struct {
	Name string `json:"name"`
	Count int `json:"count"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Mean float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
}

type BacktestResult struct {
	RollingWindowMonths int `json:"rollingWindowMonths"`
	Instruments []string `json:"instruments"`
	MonthlyByQuadrant []QuadrantStats `json:"monthlyByQuadrant"`
	QuarterlyByQuadrant []QuadrantStats `json:"quarterlyByQuadrant"`
	MonthlyRankings map[string]QuadrantRanking `json:"monthlyRankings"`
	QuarterlyRankings map[string]QuadrantRanking `json:"quarterlyRankings"`
	MonthlyHistory []QuadrantHistoryRecord `json:"monthlyHistory"`
	QuarterlyHistory []QuadrantHistoryRecord `json:"quarterlyHistory"`
	Indicators []IndicatorSummary `json:"indicators"`
	CurrentRegime *CurrentRegime `json:"currentRegime"`
}

func newHistoryRecord(date string, record QuadrantRecord) QuadrantHistoryRecord {
	return QuadrantHistoryRecord{
		Date: date,
		StressRatio: record.StressRatio,
		CreditSpread: record.CreditSpread,
		StressClass: record.Quadrant.StressClass(),
		CreditClass: record.Quadrant.CreditClass(),
		Quadrant: record.Quadrant,
		Label: record.Quadrant.Label(),
	}
}

func getIndicatorSummaries(table *IndicatorTable) []IndicatorSummary {
	summaries := []IndicatorSummary{
		getIndicatorSummary("stress_ratio", table.StressRatio),
		getIndicatorSummary("credit_spread", table.CreditSpread),
	}
	return summaries
}

func getIndicatorSummary(name string, values []*float64) IndicatorSummary {
	samples := []float64{}
	for _, pointer := range values {
		if pointer != nil {
			samples = append(samples, *pointer)
		}
	}
	summary := IndicatorSummary{
		Name: name,
		Count: len(samples),
	}
	if len(samples) > 0 {
		summary.Min = slices.Min(samples)
		summary.Max = slices.Max(samples)
		summary.Mean = stat.Mean(samples, nil)
	}
	if len(samples) > 1 {
		summary.StdDev = stat.StdDev(samples, nil)
	}
	return summary
}

func writeResult(path string, result *BacktestResult) {
	data, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		log.Fatal("Failed to marshal backtest result:", err)
	}
	writeFile(path, string(data))
}
