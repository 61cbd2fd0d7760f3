package portal

import (
	"encoding/json"
	"os"
)

// Observation is one fact as extracted from the portal: the value of one
// indicator for one country in one year. The same (country, indicator, year)
// triple can show up more than once in a response.
type Observation struct {
	Name           string `json:"name"`
	ID             string `json:"id"`
	IndicatorName  string `json:"indicator_name"`
	Unit           string `json:"unit"`
	IndicatorGroup string `json:"indicator_group"`
	IndicatorTopic string `json:"indicator_topic"`
	Year           int    `json:"year"`
	// Numeric when reported, but the feed also emits null, "" and "NaN"
	Score any    `json:"score"`
	URL   string `json:"url"`
}

// DecodeObservations accepts the two response shapes the portal is known to
// answer with, a bare list or an object carrying the list under a "data"
// key. An object without that key decodes to zero observations; anything
// else is an error.
func DecodeObservations(body []byte) ([]Observation, error) {
	var list []Observation
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var envelope struct {
		Data []Observation `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// ReadObservations loads a raw dump written by the fetch stage
func ReadObservations(filename string) ([]Observation, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var observations []Observation
	if err := json.Unmarshal(data, &observations); err != nil {
		return nil, err
	}
	return observations, nil
}
