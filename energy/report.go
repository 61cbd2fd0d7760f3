package energy

// Report collects the findings of the three data-quality passes. All three
// lists are always present in the JSON output; no findings means an empty
// list, never a missing key.
type Report struct {
	MissingYears      []MissingYears     `json:"missing_years"`
	Duplicates        []Key              `json:"duplicates"`
	MissingSubsectors []MissingSubsector `json:"missing_subsectors"`
}

// MissingYears flags a record with unreported years inside the checked window
type MissingYears struct {
	Country      string   `json:"country"`
	Metric       string   `json:"metric"`
	MissingYears []string `json:"missing_years"`
}

// MissingSubsector flags a country none of whose records carry one of the
// expected sub-sector labels
type MissingSubsector struct {
	Country           string   `json:"country"`
	MissingSubsectors []string `json:"missing_subsectors"`
}
