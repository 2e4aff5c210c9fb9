package models

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
)

// TitlesByYear maps release years to titles, remembering the order in which years were first seen.
type TitlesByYear struct {
	years  []float64
	titles map[float64][]string
}

// NewTitlesByYear returns an empty mapping.
func NewTitlesByYear() *TitlesByYear {
	return &TitlesByYear{titles: make(map[float64][]string)}
}

// Add appends title to the bucket for year, creating the bucket on first use.
func (g *TitlesByYear) Add(year float64, title string) {
	if _, ok := g.titles[year]; !ok {
		g.years = append(g.years, year)
	}
	g.titles[year] = append(g.titles[year], title)
}

// Len returns the number of years.
func (g *TitlesByYear) Len() int {
	return len(g.years)
}

// Count returns the number of titles across all years.
func (g *TitlesByYear) Count() int {
	n := 0
	for _, titles := range g.titles {
		n += len(titles)
	}
	return n
}

// Years returns the years in first-insertion order.
func (g *TitlesByYear) Years() []float64 {
	return slices.Clone(g.years)
}

// Titles returns a copy of the titles recorded for year, or nil.
func (g *TitlesByYear) Titles(year float64) []string {
	return slices.Clone(g.titles[year])
}

// SortTitles sorts every bucket with cmp. Equal titles keep their input order.
func (g *TitlesByYear) SortTitles(cmp func(a, b string) int) {
	for _, titles := range g.titles {
		slices.SortStableFunc(titles, cmp)
	}
}

// MarshalJSON encodes the mapping as a JSON object keyed by year, in first-insertion order.
func (g *TitlesByYear) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, year := range g.years {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(FormatYear(year))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		titles, err := json.Marshal(g.titles[year])
		if err != nil {
			return nil, err
		}
		buf.Write(titles)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FormatYear renders a year as its shortest decimal form; negative zero prints as "0".
func FormatYear(year float64) string {
	if year == 0 {
		year = 0
	}
	return strconv.FormatFloat(year, 'f', -1, 64)
}
