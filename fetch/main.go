package fetch

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rickb777/period"

	"aep/energy"
	"aep/portal"
	"aep/utils"
)

type Config struct {
	Out           string           `arg:"-o,--out" default:"africa_energy_data.json" help:"Destination file for the raw observations"`
	Years         energy.YearRange `arg:"--years" default:"2000-2022" help:"Range of years requested from the portal"`
	Countries     []string         `arg:"-c" help:"Optional comma separated list of country names. By default all portal countries are requested"`
	Indicators    []string         `arg:"-e" help:"Optional comma separated list of indicator names. By default all portal indicators are requested"`
	CountryFile   string           `arg:"--country-file" help:"CSV file with a single 'name' column replacing the built-in country list"`
	IndicatorFile string           `arg:"--indicator-file" help:"CSV file with a single 'name' column replacing the built-in indicator list"`
	MaxAge        string           `arg:"--max-age" help:"Skip the download if the raw file is younger than this ISO 8601 period (e.g. P1D)"`

	// Portal address override, set only in tests
	baseURL string
}

func (Config) Description() string {
	return `Downloads electricity observations from the Africa Energy Portal.
A failed download is not fatal: the raw file is written out regardless, empty
if need be, so the rest of the pipeline keeps working.`
}

func (config *Config) Execute() {
	if config.fresh() {
		slog.Info(fmt.Sprintf("'%s' is younger than %s, skipping download", config.Out, config.MaxAge))
		return
	}

	countries, indicators, err := config.lists()
	if err != nil {
		slog.Error(fmt.Sprint("Could not load list overrides: ", err))
		return
	}

	baseURL := config.baseURL
	if baseURL == "" {
		baseURL = portal.BaseURL
	}

	// Failures past this point still write out the (empty) raw file
	observations := downloadObservations(baseURL, countries, indicators, config.Years)
	slog.Info(fmt.Sprintf("Fetched %d observations from the portal", len(observations)))

	if err := energy.WriteJSON(config.Out, observations); err != nil {
		slog.Error(fmt.Sprint("Could not save raw data: ", err))
		return
	}
	fmt.Printf("Raw data saved to %s\n", config.Out)
}

func downloadObservations(baseURL string, countries, indicators []string, years energy.YearRange) []portal.Observation {
	// Non-nil, so that nothing was fetched serializes as [] and the
	// transform stage still finds a readable file
	observations := make([]portal.Observation, 0)

	client, err := NewClient(baseURL)
	if err != nil {
		slog.Error(fmt.Sprint("Could not set up the portal client: ", err))
		return observations
	}

	payload := portal.Payload(indicators, countries, years.Strings())
	fetched, err := Download(client, payload)
	if err != nil {
		slog.Error(fmt.Sprint("Download failed: ", err))
		return observations
	}
	return append(observations, fetched...)
}

// lists resolves the country and indicator lists the payload is built from:
// built-in portal lists, optionally replaced by CSV override files,
// optionally narrowed down by command line selections
func (config *Config) lists() (countries, indicators []string, err error) {
	countries = portal.Countries
	if config.CountryFile != "" {
		if countries, err = portal.LoadNames(config.CountryFile); err != nil {
			return nil, nil, err
		}
	}

	indicators = portal.Indicators
	if config.IndicatorFile != "" {
		if indicators, err = portal.LoadNames(config.IndicatorFile); err != nil {
			return nil, nil, err
		}
	}

	countries = utils.FilterSlice(config.Countries, countries, "Country '%s' is not known to the portal, skipping")
	indicators = utils.FilterSlice(config.Indicators, indicators, "Indicator '%s' is not known to the portal, skipping")
	return countries, indicators, nil
}

// fresh reports whether the raw file already on disk is younger than the
// requested max age, in which case the download is skipped entirely
func (config *Config) fresh() bool {
	if config.MaxAge == "" {
		return false
	}

	maxAge, err := period.Parse(config.MaxAge)
	if err != nil {
		slog.Warn(fmt.Sprintf("Ignoring malformed max age '%s': %s", config.MaxAge, err))
		return false
	}

	info, err := os.Stat(config.Out)
	if err != nil {
		return false
	}

	// The imprecise result for month/year periods is good enough here
	expiry, _ := maxAge.AddTo(info.ModTime())
	return time.Now().Before(expiry)
}
