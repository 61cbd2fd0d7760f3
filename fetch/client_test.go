package fetch

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"aep/energy"
	"aep/portal"
)

func TestDownloadPostsThePayloadAndDecodes(t *testing.T) {
	var form url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != portal.Endpoint {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"name":"Kenya","id":"KE","indicator_name":"X",` +
			`"unit":"%","indicator_group":"Access","indicator_topic":"Access",` +
			`"year":2020,"score":42.5,"url":"/x"}]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	payload := portal.Payload(portal.Indicators, portal.Countries, energy.NewYearRange(2000, 2022).Strings())
	observations, err := Download(client, payload)
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, observations, 1)
	require.Equal(t, "Kenya", observations[0].Name)
	require.Equal(t, 42.5, observations[0].Score)

	require.Equal(t, portal.MainGroup, form.Get("mainGroup"))
	require.Len(t, form["mainIndicator[]"], 3)
	require.Len(t, form["mainIndicatorValue[]"], 34)
	require.Len(t, form["year[]"], 23)
	require.Len(t, form["name[]"], 54)
}

func TestDownloadTreatsErrorStatusAsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// What the portal answers when the bypass does not take
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Download(client, portal.Payload(nil, nil, nil))
	require.Error(t, err)
}

func TestExecuteWritesEmptyListWhenTheDownloadFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	config := Config{
		Out:     filepath.Join(t.TempDir(), "raw.json"),
		Years:   energy.NewYearRange(2000, 2022),
		baseURL: server.URL,
	}
	config.Execute()

	contents, err := os.ReadFile(config.Out)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "[]\n", string(contents))

	// The transform stage must be able to pick the file up as usual
	observations, err := portal.ReadObservations(config.Out)
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, observations)

	// Same when the portal cannot be reached at all
	gone := httptest.NewServer(http.NotFoundHandler())
	gone.Close()

	config.Out = filepath.Join(t.TempDir(), "raw.json")
	config.baseURL = gone.URL
	config.Execute()

	contents, err = os.ReadFile(config.Out)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "[]\n", string(contents))
}

func TestListsOverridesAndFilters(t *testing.T) {
	countryFile := filepath.Join(t.TempDir(), "countries.csv")
	err := os.WriteFile(countryFile, []byte("name\nKenya\nGhana\nTogo\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	config := Config{
		CountryFile: countryFile,
		Countries:   []string{"Kenya", "Atlantis"},
	}

	countries, indicators, err := config.lists()
	if err != nil {
		t.Fatal(err)
	}

	// Selection is filtered against the override list, unknown names dropped
	require.Equal(t, []string{"Kenya"}, countries)
	// No flags given, so the built-in indicator list stands
	require.Equal(t, portal.Indicators, indicators)

	config = Config{CountryFile: filepath.Join(t.TempDir(), "missing.csv")}
	if _, _, err := config.lists(); err == nil {
		t.Fatal("expected an error for a missing override file")
	}
}

func TestFreshSkipsRecentFiles(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "raw.json")
	if err := os.WriteFile(filename, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	config := Config{Out: filename, MaxAge: "P1D"}
	require.True(t, config.fresh())

	config.MaxAge = "PT0S"
	require.False(t, config.fresh())

	// Malformed periods never block the download
	config.MaxAge = "yesterday"
	require.False(t, config.fresh())

	config = Config{Out: filepath.Join(t.TempDir(), "missing.json"), MaxAge: "P1D"}
	require.False(t, config.fresh())
}
