package export

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"aep/energy"
)

type Config struct {
	In  string `arg:"-i,--in" default:"formatted_africa_energy_data.json" help:"Formatted wide record file to export"`
	Out string `arg:"-o,--out" default:"africa_energy_data.csv" help:"Destination CSV file"`
}

func (Config) Description() string {
	return `Exports the wide records to a tidy CSV with one row per record and year.
Spreadsheet and dataframe tools deal better with the long format than with a
column per year.`
}

func (config *Config) Execute() error {
	records, err := energy.ReadRecords(config.In)
	if err != nil {
		return fmt.Errorf("could not read formatted data from '%s': %w", config.In, err)
	}

	rows := Rows(records)

	file, err := os.Create(config.Out)
	if err != nil {
		return fmt.Errorf("could not create '%s': %w", config.Out, err)
	}
	defer file.Close()

	if err := gocsv.Marshal(rows, file); err != nil {
		return fmt.Errorf("could not write CSV to '%s': %w", config.Out, err)
	}

	slog.Info(fmt.Sprintf("Exported %d records as %d CSV rows", len(records), len(rows)))
	fmt.Printf("CSV export saved to %s\n", config.Out)
	return nil
}
