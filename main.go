package main

import (
	"flag"
	"invclock/clock"
)

func main() {
	configPath := flag.String("config", "configuration/configuration.yaml", "Path to the YAML configuration file")
	backtest := flag.Bool("backtest", false, "Run the regime backtest and write the JSON results")
	current := flag.Bool("current", false, "Evaluate the current regime only")
	plot := flag.Bool("plot", false, "Render cumulative growth and drawdown plots per instrument")
	flag.Parse()
	switch {
	case *backtest:
		clock.RunBacktest(*configPath)
	case *current:
		clock.PrintCurrentRegime(*configPath)
	case *plot:
		clock.RenderPlots(*configPath)
	default:
		flag.Usage()
	}
}
