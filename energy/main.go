package energy

import (
	"bytes"
	"encoding/json"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
)

// A Record is one row of the wide table: fixed descriptive fields plus one
// value column per year of the reshaped range. Year columns are always
// present, holding nil until a value is folded in, so "not reported" stays
// distinguishable from a real zero.
//
// On the wire the record is flat: year keys sit next to the fixed fields,
//
//	{ "country": ..., "metric": ..., ..., "2000": null, ..., "2024": 42.5 }
//
// which is why (un)marshalling is implemented by hand below.
type Record struct {
	Country       string
	CountrySerial string
	Metric        string
	Unit          string
	Sector        string
	SubSector     string
	SourceLink    string
	Source        string
	// Values keyed by year ("2000".."2024"), each nil, float64 or string
	Years map[string]any
}

// Key identifies a record by its (country, metric) pair
type Key struct {
	Country string
	Metric  string
}

func (r *Record) Key() Key {
	return Key{Country: r.Country, Metric: r.Metric}
}

// YearKeys returns the record's year columns in ascending order
func (r *Record) YearKeys() []string {
	years := make([]string, 0, len(r.Years))
	for year := range r.Years {
		years = append(years, year)
	}
	// Four-digit years sort the same lexically and numerically
	slices.Sort(years)
	return years
}

// Names of the fixed fields, in output order
var fixedFields = []string{
	"country",
	"country_serial",
	"metric",
	"unit",
	"sector",
	"sub_sector",
	"source_link",
	"source",
}

func (r *Record) fixedValues() []string {
	return []string{
		r.Country,
		r.CountrySerial,
		r.Metric,
		r.Unit,
		r.Sector,
		r.SubSector,
		r.SourceLink,
		r.Source,
	}
}

func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	values := r.fixedValues()
	for i, name := range fixedFields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, name, values[i]); err != nil {
			return nil, err
		}
	}

	for _, year := range r.YearKeys() {
		buf.WriteByte(',')
		if err := writeMember(&buf, year, r.Years[year]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.Country = stringField(fields, "country")
	r.CountrySerial = stringField(fields, "country_serial")
	r.Metric = stringField(fields, "metric")
	r.Unit = stringField(fields, "unit")
	r.Sector = stringField(fields, "sector")
	r.SubSector = stringField(fields, "sub_sector")
	r.SourceLink = stringField(fields, "source_link")
	r.Source = stringField(fields, "source")

	r.Years = make(map[string]any)
	for name, value := range fields {
		if !slices.Contains(fixedFields, name) {
			r.Years[name] = value
		}
	}
	return nil
}

// Document flattens the record to an ordered BSON document with the same
// field set as the formatted JSON
func (r *Record) Document() bson.D {
	doc := make(bson.D, 0, len(fixedFields)+len(r.Years))

	values := r.fixedValues()
	for i, name := range fixedFields {
		doc = append(doc, bson.E{Key: name, Value: values[i]})
	}
	for _, year := range r.YearKeys() {
		doc = append(doc, bson.E{Key: year, Value: r.Years[year]})
	}
	return doc
}

// NoValue reports whether v is one of the recognized missing-value encodings:
// JSON null, the empty string, or the literal "NaN"
func NoValue(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return s == "" || s == "NaN"
	}
	return false
}

// Duplicate keys serialize as ["country", "metric"] pairs in the report
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{k.Country, k.Metric})
}

func (k *Key) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	k.Country, k.Metric = pair[0], pair[1]
	return nil
}

func stringField(fields map[string]any, name string) string {
	s, _ := fields[name].(string)
	return s
}

// writeMember appends `"name":<value>` to buf with HTML escaping turned off,
// so that query separators in source links stay readable
func writeMember(buf *bytes.Buffer, name string, value any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(name); err != nil {
		return err
	}
	trimNewline(buf)
	buf.WriteByte(':')
	if err := enc.Encode(value); err != nil {
		return err
	}
	trimNewline(buf)
	return nil
}

// Encoder.Encode terminates every value with a newline
func trimNewline(buf *bytes.Buffer) {
	b := buf.Bytes()
	if len(b) > 0 && b[len(b)-1] == '\n' {
		buf.Truncate(len(b) - 1)
	}
}
