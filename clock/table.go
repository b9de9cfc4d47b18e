package clock

import (
	"fmt"
	"time"
)

type IndicatorTable struct {
	Dates []time.Time
	StressRatio []*float64
	CreditSpread []*float64
}

type InstrumentTable struct {
	Dates []time.Time
	Symbols []string
	Levels map[string][]*float64
}

func (t *IndicatorTable) filter(keep func(int) bool) *IndicatorTable {
	output := &IndicatorTable{}
	for i, date := range t.Dates {
		if !keep(i) {
			continue
		}
		output.Dates = append(output.Dates, date)
		output.StressRatio = append(output.StressRatio, t.StressRatio[i])
		output.CreditSpread = append(output.CreditSpread, t.CreditSpread[i])
	}
	return output
}

func (t *InstrumentTable) filter(keep func(int) bool) *InstrumentTable {
	output := &InstrumentTable{
		Symbols: t.Symbols,
		Levels: map[string][]*float64{},
	}
	for i, date := range t.Dates {
		if !keep(i) {
			continue
		}
		output.Dates = append(output.Dates, date)
		for _, symbol := range t.Symbols {
			output.Levels[symbol] = append(output.Levels[symbol], t.Levels[symbol][i])
		}
	}
	return output
}

func (t *IndicatorTable) dateRange() string {
	if len(t.Dates) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%s to %s", getDateString(t.Dates[0]), getDateString(t.Dates[len(t.Dates) - 1]))
}

func (t *InstrumentTable) dateRange() string {
	if len(t.Dates) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%s to %s", getDateString(t.Dates[0]), getDateString(t.Dates[len(t.Dates) - 1]))
}

// Restricts both tables to the timestamps they share, dropping indicator rows
// that carry neither indicator value first.
func alignTables(indicators *IndicatorTable, instruments *InstrumentTable) (*IndicatorTable, *InstrumentTable, error) {
	indicators = indicators.filter(func (i int) bool {
		return indicators.StressRatio[i] != nil || indicators.CreditSpread[i] != nil
	})
	instrumentDates := map[time.Time]struct{}{}
	for _, date := range instruments.Dates {
		instrumentDates[date] = struct{}{}
	}
	common := map[time.Time]struct{}{}
	for _, date := range indicators.Dates {
		_, exists := instrumentDates[date]
		if exists {
			common[date] = struct{}{}
		}
	}
	if len(common) == 0 {
		format := "no overlapping timestamps between the indicator table (%s) and the instrument table (%s)"
		return nil, nil, fmt.Errorf(format, indicators.dateRange(), instruments.dateRange())
	}
	alignedIndicators := indicators.filter(func (i int) bool {
		_, exists := common[indicators.Dates[i]]
		return exists
	})
	alignedInstruments := instruments.filter(func (i int) bool {
		_, exists := common[instruments.Dates[i]]
		return exists
	})
	return alignedIndicators, alignedInstruments, nil
}

func (t *IndicatorTable) restrict(dateMin, dateMax *SerializableDate) *IndicatorTable {
	return t.filter(func (i int) bool {
		return isValidDate(t.Dates[i], dateMin, dateMax)
	})
}

func (t *InstrumentTable) restrict(dateMin, dateMax *SerializableDate) *InstrumentTable {
	return t.filter(func (i int) bool {
		return isValidDate(t.Dates[i], dateMin, dateMax)
	})
}

func isValidDate(date time.Time, dateMin, dateMax *SerializableDate) bool {
	if dateMin != nil && date.Before(dateMin.Time) {
		return false
	}
	if dateMax != nil && !date.Before(dateMax.Time) {
		return false
	}
	return true
}
