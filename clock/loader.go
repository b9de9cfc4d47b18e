package clock

import (
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const dateColumn = "date"
const stressRatioColumn = "stress_ratio"
const creditSpreadColumn = "credit_spread"

func loadIndicatorTable(path string) *IndicatorTable {
	columns := []string{
		dateColumn,
		stressRatioColumn,
		creditSpreadColumn,
	}
	table := &IndicatorTable{}
	readCsv(path, columns, func (values []string) {
		date := getRowDate(values[0], path)
		table.Dates = append(table.Dates, date)
		table.StressRatio = append(table.StressRatio, parseCell(values[1], path))
		table.CreditSpread = append(table.CreditSpread, parseCell(values[2], path))
	})
	return table
}

func loadInstrumentTable(path string, instruments []Instrument) *InstrumentTable {
	columns := []string{dateColumn}
	symbols := []string{}
	for _, instrument := range instruments {
		columns = append(columns, instrument.Symbol)
		symbols = append(symbols, instrument.Symbol)
	}
	table := &InstrumentTable{
		Symbols: symbols,
		Levels: map[string][]*float64{},
	}
	readCsv(path, columns, func (values []string) {
		date := getRowDate(values[0], path)
		table.Dates = append(table.Dates, date)
		for i, symbol := range symbols {
			table.Levels[symbol] = append(table.Levels[symbol], parseLevelCell(values[i + 1], path))
		}
	})
	return table
}

func getRowDate(value string, path string) time.Time {
	date, err := getDate(value)
	if err != nil {
		log.Fatalf("Invalid date in CSV file (%s): %v", path, err)
	}
	return date
}

func parseCell(value string, path string) *float64 {
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Failed to parse value \"%s\" in CSV file (%s): %v", value, path, err)
	}
	return &parsed
}

func parseLevelCell(value string, path string) *float64 {
	if value == "" {
		return nil
	}
	level, err := decimal.NewFromString(value)
	if err != nil {
		log.Fatalf("Failed to parse level \"%s\" in CSV file (%s): %v", value, path, err)
	}
	parsed := level.InexactFloat64()
	return &parsed
}

func loadTables(configuration Configuration) (*IndicatorTable, *InstrumentTable) {
	indicators := loadIndicatorTable(configuration.IndicatorPath)
	instruments := loadInstrumentTable(configuration.InstrumentPath, configuration.Instruments)
	indicators = indicators.restrict(configuration.DateMin, configuration.DateMax)
	instruments = instruments.restrict(configuration.DateMin, configuration.DateMax)
	return indicators, instruments
}
