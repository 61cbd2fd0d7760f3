package validate

import (
	"slices"

	"aep/energy"
)

// Check runs the three quality checks over the formatted records and collects
// the findings in a single report. The checks are independent: a record can
// show up in more than one of them.
func Check(records []*energy.Record, years energy.YearRange, subsectors []string) energy.Report {
	return energy.Report{
		MissingYears:      missingYears(records, years),
		Duplicates:        duplicateKeys(records),
		MissingSubsectors: missingSubsectors(records, subsectors),
	}
}

// missingYears reports, for every record, the years of the window whose value
// is one of the missing-value encodings. Records with a full window are left
// out of the report.
func missingYears(records []*energy.Record, years energy.YearRange) []energy.MissingYears {
	window := years.Strings()

	findings := make([]energy.MissingYears, 0)
	for _, record := range records {
		var missing []string
		for _, year := range window {
			if energy.NoValue(record.Years[year]) {
				missing = append(missing, year)
			}
		}

		if len(missing) > 0 {
			findings = append(findings, energy.MissingYears{
				Country:      record.Country,
				Metric:       record.Metric,
				MissingYears: missing,
			})
		}
	}
	return findings
}

// duplicateKeys reports every (country, metric) pair that occurs more than
// once, each pair at most once. The reshaper guarantees unique keys, so
// findings here point at a corrupted or hand-edited input file.
func duplicateKeys(records []*energy.Record) []energy.Key {
	seen := make(map[energy.Key]bool, len(records))
	reported := make(map[energy.Key]bool)

	duplicates := make([]energy.Key, 0)
	for _, record := range records {
		key := record.Key()
		if seen[key] && !reported[key] {
			duplicates = append(duplicates, key)
			reported[key] = true
		}
		seen[key] = true
	}
	return duplicates
}

// missingSubsectors reports the countries whose records do not span all the
// expected sub-sectors. Records without a country or sub-sector name do not
// count towards the coverage.
func missingSubsectors(records []*energy.Record, expected []string) []energy.MissingSubsector {
	coverage := make(map[string]map[string]bool)
	var countries []string

	for _, record := range records {
		if record.Country == "" || record.SubSector == "" {
			continue
		}

		found, ok := coverage[record.Country]
		if !ok {
			found = make(map[string]bool, len(expected))
			coverage[record.Country] = found
			countries = append(countries, record.Country)
		}
		found[record.SubSector] = true
	}

	findings := make([]energy.MissingSubsector, 0)
	for _, country := range countries {
		var missing []string
		for _, subsector := range expected {
			if !coverage[country][subsector] {
				missing = append(missing, subsector)
			}
		}

		if len(missing) > 0 {
			slices.Sort(missing)
			findings = append(findings, energy.MissingSubsector{
				Country:           country,
				MissingSubsectors: missing,
			})
		}
	}
	return findings
}
