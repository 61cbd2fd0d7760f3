package energy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRecord() *Record {
	return &Record{
		Country:       "Kenya",
		CountrySerial: "KE",
		Metric:        "Electricity export (GWh)",
		Unit:          "GWh",
		Sector:        "Electricity",
		SubSector:     "Supply",
		SourceLink:    "https://africa-energy-portal.org/database?id=1&country=KE",
		Source:        "Africa Energy Portal",
		Years: map[string]any{
			"2000": nil,
			"2001": 12.5,
			"2002": "NaN",
		},
	}
}

// Calls MarshalJSON directly: the top level json.Marshal re-escapes HTML
// characters in the output, while the file writing path does not
func TestRecordMarshalIsFlatAndOrdered(t *testing.T) {
	data, err := testRecord().MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	want := `{"country":"Kenya","country_serial":"KE","metric":"Electricity export (GWh)",` +
		`"unit":"GWh","sector":"Electricity","sub_sector":"Supply",` +
		`"source_link":"https://africa-energy-portal.org/database?id=1&country=KE",` +
		`"source":"Africa Energy Portal","2000":null,"2001":12.5,"2002":"NaN"}`
	require.Equal(t, want, string(data))
}

func TestRecordRoundTrip(t *testing.T) {
	record := testRecord()

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	require.Equal(t, record.Country, decoded.Country)
	require.Equal(t, record.SubSector, decoded.SubSector)
	require.Equal(t, record.SourceLink, decoded.SourceLink)
	require.Equal(t, record.Years, decoded.Years)
}

func TestRecordDocumentKeepsFieldOrder(t *testing.T) {
	doc := testRecord().Document()

	keys := make([]string, 0, len(doc))
	for _, e := range doc {
		keys = append(keys, e.Key)
	}
	require.Equal(t, []string{
		"country", "country_serial", "metric", "unit", "sector", "sub_sector",
		"source_link", "source", "2000", "2001", "2002",
	}, keys)
}

func TestKeyMarshalsAsPair(t *testing.T) {
	key := Key{Country: "Kenya", Metric: "Electricity export (GWh)"}

	data, err := json.Marshal(key)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, `["Kenya","Electricity export (GWh)"]`, string(data))

	var decoded Key
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	require.Equal(t, key, decoded)
}

func TestNoValue(t *testing.T) {
	cases := []struct {
		value any
		want  bool
	}{
		{value: nil, want: true},
		{value: "", want: true},
		{value: "NaN", want: true},
		{value: 0.0, want: false},
		{value: 42.5, want: false},
		{value: "42.5", want: false},
		{value: false, want: false},
	}

	for _, c := range cases {
		require.Equal(t, c.want, NoValue(c.value), "value %#v", c.value)
	}
}
