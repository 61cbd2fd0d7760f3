package export

import (
	"fmt"
	"strconv"

	"aep/energy"
)

// Row is one (record, year) observation of the long format
type Row struct {
	Country       string `csv:"country"`
	CountrySerial string `csv:"country_serial"`
	Metric        string `csv:"metric"`
	Unit          string `csv:"unit"`
	Sector        string `csv:"sector"`
	SubSector     string `csv:"sub_sector"`
	Year          string `csv:"year"`
	Value         string `csv:"value"`
}

// Rows melts the wide records back into long form, one row per year column,
// years in ascending order within each record
func Rows(records []*energy.Record) []*Row {
	rows := make([]*Row, 0, len(records))
	for _, record := range records {
		for _, year := range record.YearKeys() {
			rows = append(rows, &Row{
				Country:       record.Country,
				CountrySerial: record.CountrySerial,
				Metric:        record.Metric,
				Unit:          record.Unit,
				Sector:        record.Sector,
				SubSector:     record.SubSector,
				Year:          year,
				Value:         formatValue(record.Years[year]),
			})
		}
	}
	return rows
}

// formatValue renders a year value as a CSV cell. All the missing-value
// encodings collapse to an empty cell.
func formatValue(v any) string {
	if energy.NoValue(v) {
		return ""
	}

	switch value := v.(type) {
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}
