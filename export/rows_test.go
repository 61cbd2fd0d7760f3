package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aep/energy"
)

func TestRowsMeltOneRowPerYear(t *testing.T) {
	records := []*energy.Record{
		{
			Country: "Kenya", CountrySerial: "KE", Metric: "X", Unit: "%",
			Sector: "Electricity", SubSector: "Access",
			Years: map[string]any{"2001": 42.5, "2000": nil, "2002": "NaN"},
		},
	}

	rows := Rows(records)
	require.Len(t, rows, 3)

	// Years come out ascending regardless of map iteration order
	require.Equal(t, "2000", rows[0].Year)
	require.Equal(t, "", rows[0].Value)
	require.Equal(t, "2001", rows[1].Year)
	require.Equal(t, "42.5", rows[1].Value)
	require.Equal(t, "2002", rows[2].Year)
	require.Equal(t, "", rows[2].Value)

	require.Equal(t, "Kenya", rows[0].Country)
	require.Equal(t, "KE", rows[0].CountrySerial)
	require.Equal(t, "Access", rows[0].SubSector)
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{value: nil, want: ""},
		{value: "", want: ""},
		{value: "NaN", want: ""},
		{value: 42.5, want: "42.5"},
		{value: 0.0, want: "0"},
		{value: 1234567.0, want: "1234567"},
		{value: 0.001, want: "0.001"},
		{value: "free text", want: "free text"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, formatValue(c.value), "value %#v", c.value)
	}
}
