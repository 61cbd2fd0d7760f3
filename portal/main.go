package portal

import (
	"net/url"
	"slices"
)

// The Africa Energy Portal serves its electricity database through a single
// form endpoint. One POST with the full payload below returns every
// observation as a flat JSON list (sometimes wrapped in a {"data": [...]}
// envelope), one item per (country, indicator, year).
const (
	BaseURL  = "https://africa-energy-portal.org"
	Endpoint = "/get-database-data"

	// Label stamped on every formatted record
	SourceName = "Africa Energy Portal"

	// Top-level indicator group of everything we pull
	MainGroup = "Electricity"
)

// Sub-sector categories the portal files every indicator under. The same
// three labels double as the expected set of the validation stage: a country
// reporting no indicator of some category is flagged.
var Subsectors = []string{"Access", "Supply", "Technical"}

// The 34 electricity indicators tracked by the portal
var Indicators = []string{
	"Population access to electricity-National (% of population)",
	"Population access to electricity-Rural (% of population)",
	"Population access to electricity-Urban (% of population)",
	"Population with access to electricity-National (millions of people)",
	"Population with access to electricity-Rural (millions of people)",
	"Population with access to electricity-Urban (millions of people)",
	"Population without access to electricity-National (millions of people)",
	"Population without access to electricity-Rural (millions of people)",
	"Population without access to electricity-Urban (millions of people)",
	"Electricity export (GWh)",
	"Electricity final consumption (GWh)",
	"Electricity final consumption per capita (KWh)",
	"Electricity generated from biofuels and waste (GWh)",
	"Electricity generated from fossil fuels (GWh)",
	"Electricity generated from geothermal energy (GWh)",
	"Electricity generated from hydropower (GWh)",
	"Electricity generated from nuclear power (GWh)",
	"Electricity generated from renewable sources (GWh)",
	"Electricity generated from solar, wind, tide, wave and other sources (GWh)",
	"Electricity generation per capita (KWh)",
	"Electricity generation, Total (GWh)",
	"Electricity import (GWh)",
	"Electricity: Net imports (+ GWh)",
	"Electricity installed capacity in Bioenergy (MW)",
	"Electricity installed capacity in Fossil fuels (MW)",
	"Electricity installed capacity in Geothermal (MW)",
	"Electricity installed capacity in Hydropower (MW)",
	"Electricity installed capacity in Non-renewable energy (MW)",
	"Electricity installed capacity in Nuclear (MW)",
	"Electricity installed capacity in Solar (MW)",
	"Electricity installed capacity in Total renewable energy (MW)",
	"Electricity installed capacity in Wind (MW)",
	"Electricity installed capacity in other Non-renewable energy (MW)",
	"Electricity installed capacity, Total (MW)",
}

// The 54 country names the portal knows, spelled the way its form expects
var Countries = []string{
	"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso", "Burundi",
	"Cameroon", "Cape Verde", "Central African Republic", "Chad",
	"Comoros", "Congo Democratic Republic", "Congo Republic", "Cote d'Ivoire",
	"Djibouti", "Egypt", "Equatorial Guinea", "Eritrea", "Eswatini",
	"Ethiopia", "Gabon", "Gambia", "Ghana", "Guinea", "Guinea Bissau",
	"Kenya", "Lesotho", "Liberia", "Libya", "Madagascar", "Malawi",
	"Mali", "Mauritania", "Mauritius", "Morocco", "Mozambique",
	"Namibia", "Niger", "Nigeria", "Rwanda", "Sao Tome and Principe",
	"Senegal", "Seychelles", "Sierra Leone", "Somalia", "South Africa",
	"South Sudan", "Sudan", "Tanzania", "Togo", "Tunisia", "Uganda",
	"Zambia", "Zimbabwe",
}

// Payload builds the form body of the database query. The portal expects
// repeated "[]" keys for every list-valued field.
func Payload(indicators, countries, years []string) url.Values {
	return url.Values{
		"mainGroup":            {MainGroup},
		"mainIndicator[]":      slices.Clone(Subsectors),
		"mainIndicatorValue[]": indicators,
		"year[]":               years,
		"name[]":               countries,
	}
}
