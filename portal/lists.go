package portal

import (
	"os"

	"github.com/gocarina/gocsv"
)

type listRow struct {
	Name string `csv:"name"`
}

// LoadNames reads a single-column CSV file (header "name") holding
// replacement country or indicator names. Smaller lists keep test fixtures
// and partial runs manageable; the built-in lists stay the default.
func LoadNames(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*listRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}
