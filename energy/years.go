package energy

import (
	"fmt"
	"strconv"
	"strings"
)

// YearRange is an inclusive span of calendar years. The reshaper and the
// validator each carry their own range: the portal publishes columns for
// 2000-2024 while the quality checks only cover 2000-2022, and the two are
// kept independently configurable on purpose.
type YearRange struct {
	First int
	Last  int
}

func NewYearRange(first, last int) YearRange {
	return YearRange{First: first, Last: last}
}

// UnmarshalText parses ranges given on the command line
func (r *YearRange) UnmarshalText(b []byte) error {
	first, last, found := strings.Cut(string(b), "-")
	if !found {
		return fmt.Errorf("Only the \"<first>-<last>\" format is allowed. Got %s", b)
	}

	var err error
	if r.First, err = strconv.Atoi(first); err != nil {
		return fmt.Errorf("Invalid first year %q: %w", first, err)
	}
	if r.Last, err = strconv.Atoi(last); err != nil {
		return fmt.Errorf("Invalid last year %q: %w", last, err)
	}
	if r.Last < r.First {
		return fmt.Errorf("Invalid year range: %d comes after %d", r.First, r.Last)
	}
	return nil
}

func (r YearRange) String() string {
	return fmt.Sprintf("%d-%d", r.First, r.Last)
}

func (r YearRange) Contains(year int) bool {
	return year >= r.First && year <= r.Last
}

// Strings enumerates the range as the string keys used for year columns
func (r YearRange) Strings() []string {
	years := make([]string, 0, r.Last-r.First+1)
	for year := r.First; year <= r.Last; year++ {
		years = append(years, strconv.Itoa(year))
	}
	return years
}
