package clock

import (
	"fmt"
	"log"
	"time"

	"github.com/cheggaaa/pb"
	"gonum.org/v1/gonum/stat"
)

const minQuadrantPeriods = 2

type cadenceResult struct {
	stats []QuadrantStats
	rankings map[string]QuadrantRanking
	history []QuadrantHistoryRecord
}

func RunBacktest(configPath string) {
	configuration := loadConfigurationFile(configPath)
	indicators, instruments := loadTables(configuration)
	start := time.Now()
	result, err := Run(configuration, indicators, instruments)
	if err != nil {
		log.Fatal(err)
	}
	delta := time.Since(start)
	fmt.Printf("Performed backtest in %.2f s\n", delta.Seconds())
	if configuration.OutputPath != "" {
		writeResult(configuration.OutputPath, result)
		fmt.Printf("Wrote results to %s\n", configuration.OutputPath)
	}
	if result.CurrentRegime != nil {
		fmt.Printf("Current regime: %s\n", result.CurrentRegime.Label)
	}
}

// Executes the full backtest: monthly classification and conditioning, the
// same pipeline re-run at quarterly cadence with a shortened window, and the
// live regime evaluation. Inputs are immutable; the result is a pure function
// of the tables and the configuration.
func Run(configuration Configuration, indicators *IndicatorTable, instruments *InstrumentTable) (*BacktestResult, error) {
	indicators, instruments, err := alignTables(indicators, instruments)
	if err != nil {
		return nil, err
	}
	window := configuration.RollingWindowMonths
	monthly := evaluateCadence(configuration, indicators, instruments, window)
	quarterly := evaluateCadence(
		configuration,
		resampleIndicators(indicators),
		resampleInstruments(instruments),
		coarseWindow(window),
	)
	current, err := evaluateCurrentRegime(indicators, window)
	if err != nil {
		return nil, err
	}
	result := &BacktestResult{
		RollingWindowMonths: window,
		Instruments: instruments.Symbols,
		MonthlyByQuadrant: monthly.stats,
		QuarterlyByQuadrant: quarterly.stats,
		MonthlyRankings: monthly.rankings,
		QuarterlyRankings: quarterly.rankings,
		MonthlyHistory: monthly.history,
		QuarterlyHistory: quarterly.history,
		Indicators: getIndicatorSummaries(indicators),
		CurrentRegime: current,
	}
	return result, nil
}

func evaluateCadence(
	configuration Configuration,
	indicators *IndicatorTable,
	instruments *InstrumentTable,
	window int,
) cadenceResult {
	quadrantRecords := classifyQuadrants(indicators, window)
	bar := pb.StartNew(len(instruments.Symbols))
	performances := parallelMap(instruments.Symbols, func (symbol string) instrumentPerformance {
		performance := returnsAndDrawdown(instruments.Levels[symbol])
		bar.Increment()
		return performance
	})
	bar.Finish()
	performanceMap := map[string]instrumentPerformance{}
	for i, symbol := range instruments.Symbols {
		performanceMap[symbol] = performances[i]
	}
	returnRows := getReturnRows(instruments, performanceMap)
	aligned := alignQuadrants(quadrantRecords, instruments.Dates, returnRows)
	partition := map[Quadrant][]int{}
	history := []QuadrantHistoryRecord{}
	for i, row := range returnRows {
		record := aligned[i]
		if record == nil {
			continue
		}
		partition[record.Quadrant] = append(partition[record.Quadrant], row)
		history = append(history, newHistoryRecord(getDateString(instruments.Dates[row]), *record))
	}
	result := cadenceResult{
		rankings: map[string]QuadrantRanking{},
		history: history,
	}
	for _, quadrant := range quadrants {
		rows := partition[quadrant]
		if len(rows) < minQuadrantPeriods {
			continue
		}
		stats := getQuadrantStats(quadrant, rows, instruments.Symbols, performanceMap)
		result.stats = append(result.stats, stats)
		result.rankings[quadrant.Code()] = rankInstruments(stats.AvgReturn, stats.AvgDrawdown, configuration.RankingBreadth)
	}
	return result
}

// Rows of the instrument table where at least one instrument has a defined
// period return.
func getReturnRows(instruments *InstrumentTable, performanceMap map[string]instrumentPerformance) []int {
	rows := []int{}
	for i := range instruments.Dates {
		for _, symbol := range instruments.Symbols {
			if performanceMap[symbol].returns[i] != nil {
				rows = append(rows, i)
				break
			}
		}
	}
	return rows
}

// Forward-fill alignment: each return row receives the latest defined
// quadrant record at or before its date, never a later one.
func alignQuadrants(quadrantRecords []QuadrantRecord, dates []time.Time, returnRows []int) []*QuadrantRecord {
	aligned := make([]*QuadrantRecord, len(returnRows))
	next := 0
	var lastDefined *QuadrantRecord
	for i, row := range returnRows {
		date := dates[row]
		for next < len(quadrantRecords) && !quadrantRecords[next].Date.After(date) {
			if quadrantRecords[next].Quadrant.Defined() {
				lastDefined = &quadrantRecords[next]
			}
			next++
		}
		aligned[i] = lastDefined
	}
	return aligned
}

func getQuadrantStats(
	quadrant Quadrant,
	rows []int,
	symbols []string,
	performanceMap map[string]instrumentPerformance,
) QuadrantStats {
	stats := QuadrantStats{
		Quadrant: quadrant,
		Label: quadrant.Label(),
		Periods: len(rows),
		AvgReturn: map[string]float64{},
		AvgDrawdown: map[string]float64{},
		WorstDrawdown: map[string]float64{},
	}
	for _, symbol := range symbols {
		performance := performanceMap[symbol]
		returns := collectRows(performance.returns, rows)
		if len(returns) > 0 {
			stats.AvgReturn[symbol] = stat.Mean(returns, nil)
		}
		drawdowns := collectRows(performance.drawdown, rows)
		if len(drawdowns) > 0 {
			stats.AvgDrawdown[symbol] = stat.Mean(drawdowns, nil)
		}
		worst, found := maxDrawdown(performance.drawdown, rows)
		if found {
			stats.WorstDrawdown[symbol] = worst
		}
	}
	return stats
}

func collectRows(values []*float64, rows []int) []float64 {
	output := []float64{}
	for _, row := range rows {
		if values[row] != nil {
			output = append(output, *values[row])
		}
	}
	return output
}

func PrintCurrentRegime(configPath string) {
	configuration := loadConfigurationFile(configPath)
	indicators := loadIndicatorTable(configuration.IndicatorPath)
	indicators = indicators.restrict(configuration.DateMin, configuration.DateMax)
	current, err := evaluateCurrentRegime(indicators, configuration.RollingWindowMonths)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Date: %s\n", current.Date)
	fmt.Printf("Stress ratio: %.4f (median %.4f, %s)\n", current.StressRatio, current.StressThreshold, current.StressClass)
	fmt.Printf("Credit spread: %.4f (median %.4f, %s)\n", current.CreditSpread, current.CreditThreshold, current.CreditClass)
	fmt.Printf("Regime: %s\n", current.Label)
}
