package transform

import (
	"strconv"

	"aep/energy"
	"aep/portal"
)

// Reshape folds the flat observation list into one wide record per
// (country, metric) pair, preserving the order pairs first appear in.
//
// The fixed fields of a record come from the first observation of its pair.
// Scores land in the year column they belong to; repeated observations of the
// same (pair, year) overwrite each other, last one wins. Years outside the
// configured range are dropped.
func Reshape(observations []portal.Observation, years energy.YearRange) []*energy.Record {
	// Kept non-nil so an empty input still serializes as a list
	records := make([]*energy.Record, 0)
	byKey := make(map[energy.Key]*energy.Record)

	for _, obs := range observations {
		key := energy.Key{Country: obs.Name, Metric: obs.IndicatorName}

		record, ok := byKey[key]
		if !ok {
			record = newRecord(obs, years)
			byKey[key] = record
			records = append(records, record)
		}

		if !years.Contains(obs.Year) {
			continue
		}
		record.Years[strconv.Itoa(obs.Year)] = obs.Score
	}

	return records
}

// newRecord fills in the fixed fields and presets every year column to null,
// so that years the portal never reported stay visible downstream
func newRecord(obs portal.Observation, years energy.YearRange) *energy.Record {
	record := &energy.Record{
		Country:       obs.Name,
		CountrySerial: obs.ID,
		Metric:        obs.IndicatorName,
		Unit:          obs.Unit,
		Sector:        obs.IndicatorGroup,
		SubSector:     obs.IndicatorTopic,
		SourceLink:    portal.BaseURL + obs.URL,
		Source:        portal.SourceName,
		Years:         make(map[string]any, years.Last-years.First+1),
	}

	for _, year := range years.Strings() {
		record.Years[year] = nil
	}
	return record
}
