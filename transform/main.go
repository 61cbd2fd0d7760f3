package transform

import (
	"fmt"
	"log/slog"

	"aep/energy"
	"aep/portal"
)

type Config struct {
	In    string           `arg:"-i,--in" default:"africa_energy_data.json" help:"Raw observation file to reshape"`
	Out   string           `arg:"-o,--out" default:"formatted_africa_energy_data.json" help:"Destination file for the wide records"`
	Years energy.YearRange `arg:"--years" default:"2000-2024" help:"Range of year columns each record carries"`
}

func (Config) Description() string {
	return `Reshapes raw portal observations into wide records.
Each (country, metric) pair becomes one record with one value column per year.`
}

func (config *Config) Execute() error {
	observations, err := portal.ReadObservations(config.In)
	if err != nil {
		return fmt.Errorf("could not read raw data from '%s': %w", config.In, err)
	}

	records := Reshape(observations, config.Years)
	slog.Info(fmt.Sprintf("Reshaped %d observations into %d records", len(observations), len(records)))

	if err := energy.WriteJSON(config.Out, records); err != nil {
		return fmt.Errorf("could not save formatted data to '%s': %w", config.Out, err)
	}

	fmt.Printf("Formatted data saved to %s\n", config.Out)
	return nil
}
