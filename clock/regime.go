package clock

import (
	"encoding/json"
	"fmt"
	"time"
)

type Quadrant int

const (
	QuadrantUndefined Quadrant = iota
	QuadrantLowEasy
	QuadrantLowTight
	QuadrantHighEasy
	QuadrantHighTight
)

const medianPercentile = 50.0

var quadrants = []Quadrant{
	QuadrantLowEasy,
	QuadrantLowTight,
	QuadrantHighEasy,
	QuadrantHighTight,
}

type QuadrantRecord struct {
	Date time.Time
	StressRatio *float64
	CreditSpread *float64
	Quadrant Quadrant
}

func newQuadrant(high, tight bool) Quadrant {
	switch {
	case !high && !tight:
		return QuadrantLowEasy
	case !high && tight:
		return QuadrantLowTight
	case high && !tight:
		return QuadrantHighEasy
	default:
		return QuadrantHighTight
	}
}

func (q Quadrant) Defined() bool {
	return q != QuadrantUndefined
}

func (q Quadrant) StressClass() string {
	switch q {
	case QuadrantLowEasy, QuadrantLowTight:
		return "Low"
	case QuadrantHighEasy, QuadrantHighTight:
		return "High"
	default:
		return ""
	}
}

func (q Quadrant) CreditClass() string {
	switch q {
	case QuadrantLowEasy, QuadrantHighEasy:
		return "Easy"
	case QuadrantLowTight, QuadrantHighTight:
		return "Tight"
	default:
		return ""
	}
}

func (q Quadrant) Code() string {
	if !q.Defined() {
		return ""
	}
	return fmt.Sprintf("%s_%s", q.StressClass(), q.CreditClass())
}

func (q Quadrant) Label() string {
	switch q {
	case QuadrantLowEasy:
		return "Stable expansion (Risk-on)"
	case QuadrantLowTight:
		return "Late cycle (Selective)"
	case QuadrantHighEasy:
		return "Shock regime (Buy recovery)"
	case QuadrantHighTight:
		return "Structural stress (Capital preservation)"
	default:
		return ""
	}
}

func (q Quadrant) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Code())
}

func (q *Quadrant) UnmarshalJSON(data []byte) error {
	var code string
	err := json.Unmarshal(data, &code)
	if err != nil {
		return err
	}
	if code == "" {
		*q = QuadrantUndefined
		return nil
	}
	for _, quadrant := range quadrants {
		if quadrant.Code() == code {
			*q = quadrant
			return nil
		}
	}
	return fmt.Errorf("invalid quadrant code: %s", code)
}

// Classifies every timestamp of one cadence against rolling median thresholds.
// Ties resolve to the High/Tight side. The quadrant stays undefined wherever a
// raw value or a rolling median is unavailable.
func classifyQuadrants(table *IndicatorTable, window int) []QuadrantRecord {
	stressMedian := rollingPercentile(table.StressRatio, window, medianPercentile)
	creditMedian := rollingPercentile(table.CreditSpread, window, medianPercentile)
	records := make([]QuadrantRecord, len(table.Dates))
	for i, date := range table.Dates {
		record := QuadrantRecord{
			Date: date,
			StressRatio: table.StressRatio[i],
			CreditSpread: table.CreditSpread[i],
		}
		defined := record.StressRatio != nil &&
			record.CreditSpread != nil &&
			stressMedian[i] != nil &&
			creditMedian[i] != nil
		if defined {
			high := *record.StressRatio >= *stressMedian[i]
			tight := *record.CreditSpread >= *creditMedian[i]
			record.Quadrant = newQuadrant(high, tight)
		}
		records[i] = record
	}
	return records
}
