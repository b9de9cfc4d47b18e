package clock

import (
	"log"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	IndicatorPath string `yaml:"indicatorPath"`
	InstrumentPath string `yaml:"instrumentPath"`
	OutputPath string `yaml:"outputPath"`
	PlotPath string `yaml:"plotPath"`
	RollingWindowMonths int `yaml:"rollingWindowMonths"`
	RankingBreadth int `yaml:"rankingBreadth"`
	DateMin *SerializableDate `yaml:"dateMin"`
	DateMax *SerializableDate `yaml:"dateMax"`
	Instruments []Instrument `yaml:"instruments"`
}

type Instrument struct {
	Symbol string `yaml:"symbol"`
	Name string `yaml:"name"`
}

const defaultRollingWindowMonths = 60
const defaultRankingBreadth = 4

func loadConfigurationFile(path string) Configuration {
	yamlData := readFile(path)
	configuration := new(Configuration)
	err := yaml.Unmarshal(yamlData, configuration)
	if err != nil {
		log.Fatal("Failed to unmarshal YAML:", err)
	}
	configuration.applyDefaults()
	configuration.validate()
	return *configuration
}

func (c *Configuration) applyDefaults() {
	if c.RollingWindowMonths == 0 {
		c.RollingWindowMonths = defaultRollingWindowMonths
	}
	if c.RankingBreadth == 0 {
		c.RankingBreadth = defaultRankingBreadth
	}
}

func (c *Configuration) validate() {
	if c.IndicatorPath == "" || c.InstrumentPath == "" {
		log.Fatal("Both indicatorPath and instrumentPath must be set")
	}
	if c.RollingWindowMonths < 2 {
		log.Fatalf("Invalid rolling window: %d", c.RollingWindowMonths)
	}
	if c.RankingBreadth < 1 {
		log.Fatalf("Invalid ranking breadth: %d", c.RankingBreadth)
	}
	if c.DateMin != nil && c.DateMax != nil && !c.DateMin.Before(c.DateMax.Time) {
		format := "Invalid dates in configuration: dateMin = %s, dateMax = %s"
		log.Fatalf(format, getDateString(c.DateMin.Time), getDateString(c.DateMax.Time))
	}
	if len(c.Instruments) == 0 {
		log.Fatal("No instruments configured")
	}
	symbols := map[string]struct{}{}
	for _, instrument := range c.Instruments {
		if instrument.Symbol == "" {
			log.Fatal("Encountered an instrument with an empty symbol")
		}
		_, duplicate := symbols[instrument.Symbol]
		if duplicate {
			log.Fatalf("Duplicate instrument symbol: %s", instrument.Symbol)
		}
		symbols[instrument.Symbol] = struct{}{}
	}
}

func (c *Configuration) symbols() []string {
	symbols := make([]string, len(c.Instruments))
	for i, instrument := range c.Instruments {
		symbols[i] = instrument.Symbol
	}
	return symbols
}
