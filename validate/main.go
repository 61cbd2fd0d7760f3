package validate

import (
	"fmt"
	"log/slog"

	"aep/energy"
	"aep/portal"
)

type Config struct {
	In         string           `arg:"-i,--in" default:"formatted_africa_energy_data.json" help:"Formatted wide record file to validate"`
	Out        string           `arg:"-o,--out" default:"validation_report.json" help:"Destination file for the validation report"`
	Years      energy.YearRange `arg:"--years" default:"2000-2022" help:"Year window covered by the missing-year check"`
	Subsectors []string         `arg:"--subsectors" help:"Sub-sectors every country is expected to report. By default Access, Supply and Technical"`
}

func (Config) Description() string {
	return `Checks the formatted records for missing years, duplicate (country, metric)
keys, and countries that fail to report all expected sub-sectors.`
}

func (config *Config) Execute() error {
	records, err := energy.ReadRecords(config.In)
	if err != nil {
		return fmt.Errorf("could not read formatted data from '%s': %w", config.In, err)
	}

	subsectors := config.Subsectors
	if subsectors == nil {
		subsectors = portal.Subsectors
	}

	report := Check(records, config.Years, subsectors)
	slog.Info(fmt.Sprintf(
		"Found %d records with missing years, %d duplicate keys, %d countries with missing sub-sectors",
		len(report.MissingYears), len(report.Duplicates), len(report.MissingSubsectors),
	))

	if err := energy.WriteJSON(config.Out, report); err != nil {
		return fmt.Errorf("could not save validation report to '%s': %w", config.Out, err)
	}

	fmt.Printf("Validation report saved to %s\n", config.Out)
	return nil
}
