package clock

import "time"

type quarterKey struct {
	year int
	quarter int
}

type quarterSlice struct {
	key quarterKey
	start int
	end int
}

func newQuarterKey(date time.Time) quarterKey {
	return quarterKey{
		year: date.Year(),
		quarter: (int(date.Month()) - 1) / 3 + 1,
	}
}

func (k quarterKey) endDate() time.Time {
	lastMonth := time.Month(k.quarter * 3)
	return time.Date(k.year, lastMonth + 1, 0, 0, 0, 0, 0, time.UTC)
}

func quarterSlices(dates []time.Time) []quarterSlice {
	output := []quarterSlice{}
	for i, date := range dates {
		key := newQuarterKey(date)
		length := len(output)
		if length > 0 && output[length - 1].key == key {
			output[length - 1].end = i + 1
			continue
		}
		output = append(output, quarterSlice{
			key: key,
			start: i,
			end: i + 1,
		})
	}
	return output
}

// Last non-missing value within the row range, or nil.
func lastKnown(values []*float64, start, end int) *float64 {
	for i := end - 1; i >= start; i-- {
		if values[i] != nil {
			return values[i]
		}
	}
	return nil
}

// Coarsens a monthly indicator table to quarter ends, taking the last known
// value of each column within the quarter.
func resampleIndicators(table *IndicatorTable) *IndicatorTable {
	output := &IndicatorTable{}
	for _, slice := range quarterSlices(table.Dates) {
		output.Dates = append(output.Dates, slice.key.endDate())
		output.StressRatio = append(output.StressRatio, lastKnown(table.StressRatio, slice.start, slice.end))
		output.CreditSpread = append(output.CreditSpread, lastKnown(table.CreditSpread, slice.start, slice.end))
	}
	return output
}

func resampleInstruments(table *InstrumentTable) *InstrumentTable {
	output := &InstrumentTable{
		Symbols: table.Symbols,
		Levels: map[string][]*float64{},
	}
	for _, slice := range quarterSlices(table.Dates) {
		output.Dates = append(output.Dates, slice.key.endDate())
		for _, symbol := range table.Symbols {
			output.Levels[symbol] = append(output.Levels[symbol], lastKnown(table.Levels[symbol], slice.start, slice.end))
		}
	}
	return output
}

func coarseWindow(window int) int {
	return max(4, window / 3)
}
