package clock

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type YearlyTicks struct{}

func RenderPlots(configPath string) {
	configuration := loadConfigurationFile(configPath)
	if configuration.PlotPath == "" {
		log.Fatal("No plotPath configured")
	}
	instruments := loadInstrumentTable(configuration.InstrumentPath, configuration.Instruments)
	instruments = instruments.restrict(configuration.DateMin, configuration.DateMax)
	start := time.Now()
	parallelMap(instruments.Symbols, func (symbol string) struct{} {
		performance := returnsAndDrawdown(instruments.Levels[symbol])
		plotInstrument(symbol, instruments.Dates, performance, configuration.PlotPath)
		return struct{}{}
	})
	delta := time.Since(start)
	fmt.Printf("Rendered plots for %d instruments in %.2f s\n", len(instruments.Symbols), delta.Seconds())
}

func plotInstrument(symbol string, dates []time.Time, performance instrumentPerformance, plotPath string) {
	growthPath := filepath.Join(plotPath, fmt.Sprintf("%s.png", symbol))
	plotSeries("Growth", dates, performance.growth, growthPath)
	drawdownPath := filepath.Join(plotPath, fmt.Sprintf("%s_drawdown.png", symbol))
	plotSeries("Drawdown", dates, performance.drawdown, drawdownPath)
}

func plotSeries(yLabel string, dates []time.Time, values []*float64, path string) {
	plotterData := plotter.XYs{}
	for i, value := range values {
		if value == nil {
			continue
		}
		plotterData = append(plotterData, plotter.XY{
			X: timeToFloat(dates[i]),
			Y: *value,
		})
	}
	p := plot.New()
	p.X.Label.Text = "Date"
	p.Y.Label.Text = yLabel
	p.X.Padding = -1
	p.Y.Padding = -1
	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = dashes
	grid.Vertical.Dashes = dashes
	p.Add(grid)
	p.X.Tick.Marker = YearlyTicks{}
	line, err := plotter.NewLine(plotterData)
	if err != nil {
		log.Fatal("Failed to create line plot:", err)
	}
	line.LineStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(line)
	err = p.Save(12 * vg.Inch, 8 * vg.Inch, path)
	if err != nil {
		log.Fatalf("Failed to save plot (%s): %v", path, err)
	}
}

func (YearlyTicks) Ticks(min, max float64) []plot.Tick {
	timeMin := time.Unix(int64(min), 0).UTC()
	timeMax := time.Unix(int64(max), 0).UTC()
	year := timeMin.Year()
	ticks := []plot.Tick{}
	for y := year + 1; y <= timeMax.Year(); y += 2 {
		tickTime := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		x := timeToFloat(tickTime)
		label := tickTime.Format("2006")
		ticks = append(ticks, plot.Tick{Value: x, Label: label})
	}
	return ticks
}

func timeToFloat(t time.Time) float64 {
	return float64(t.Unix())
}
