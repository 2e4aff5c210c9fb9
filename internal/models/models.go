// package models defines the data model for track transforms
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/desertthunder/tracks/internal/shared"
)

// Track is a validated track record.
type Track struct {
	Title  string  `json:"title" yaml:"title"`
	Artist string  `json:"artist" yaml:"artist"`
	Year   float64 `json:"year" yaml:"year"`
}

// EnrichedTrack is a [Track] with its decade label, e.g. "1970s".
type EnrichedTrack struct {
	Title  string  `json:"title" yaml:"title"`
	Artist string  `json:"artist" yaml:"artist"`
	Year   float64 `json:"year" yaml:"year"`
	Decade string  `json:"decade" yaml:"decade"`
}

// Release is the part of a record needed for grouping: a finite year and a display title.
type Release struct {
	Year  float64
	Title string
}

// Fields returns the named fields of a structured record.
//
// Decoded maps are returned as-is; typed tracks are exposed through the same keys.
// Anything else (nil, scalars, slices, nil pointers) is not a record.
func Fields(v any) (map[string]any, bool) {
	switch r := v.(type) {
	case map[string]any:
		return r, r != nil
	case Track:
		return map[string]any{"title": r.Title, "artist": r.Artist, "year": r.Year}, true
	case *Track:
		if r == nil {
			return nil, false
		}
		return Fields(*r)
	case EnrichedTrack:
		return map[string]any{"title": r.Title, "artist": r.Artist, "year": r.Year, "decade": r.Decade}, true
	case *EnrichedTrack:
		if r == nil {
			return nil, false
		}
		return Fields(*r)
	default:
		return nil, false
	}
}

// ParseYear reports whether v is a finite number and returns it as a float64.
//
// Strings are never coerced, but [json.Number] counts as a number since it is how
// decoders hand over numeric literals.
func ParseYear(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case nil:
		return 0, false
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			f = float64(rv.Uint())
		default:
			return 0, false
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseTrack validates a raw record into a [Track].
func ParseTrack(v any) (Track, error) {
	fields, ok := Fields(v)
	if !ok {
		return Track{}, fmt.Errorf("%w: %T", shared.ErrNotRecord, v)
	}

	title, ok := fields["title"].(string)
	if !ok {
		return Track{}, fmt.Errorf("%w: got %T", shared.ErrInvalidTitle, fields["title"])
	}

	artist, ok := fields["artist"].(string)
	if !ok {
		return Track{}, fmt.Errorf("%w: got %T", shared.ErrInvalidArtist, fields["artist"])
	}

	year, ok := ParseYear(fields["year"])
	if !ok {
		return Track{}, fmt.Errorf("%w: got %v", shared.ErrInvalidYear, fields["year"])
	}

	return Track{Title: title, Artist: artist, Year: year}, nil
}

// ParseRelease validates only the year of a raw record.
//
// The title is not checked: a missing title becomes "" and non-string titles are rendered with [fmt.Sprint].
func ParseRelease(v any) (Release, error) {
	fields, ok := Fields(v)
	if !ok {
		return Release{}, fmt.Errorf("%w: %T", shared.ErrNotRecord, v)
	}

	year, ok := ParseYear(fields["year"])
	if !ok {
		return Release{}, fmt.Errorf("%w: got %v", shared.ErrInvalidYear, fields["year"])
	}

	var title string
	switch t := fields["title"].(type) {
	case string:
		title = t
	case nil:
	default:
		title = fmt.Sprint(t)
	}

	return Release{Year: year, Title: title}, nil
}

// Criteria narrows a track listing. A nil bound or blank artist applies no filter.
type Criteria struct {
	MinYear *float64 `json:"minYear,omitempty"`
	MaxYear *float64 `json:"maxYear,omitempty"`
	Artist  string   `json:"artist,omitempty"`
}

// HasArtist reports whether the artist filter is set (non-blank after trimming).
func (c Criteria) HasArtist() bool {
	return strings.TrimSpace(c.Artist) != ""
}

// IsEmpty reports whether no filter is set.
func (c Criteria) IsEmpty() bool {
	return c.MinYear == nil && c.MaxYear == nil && !c.HasArtist()
}

// ParseCriteria reads filter criteria from a decoded map or a [Criteria] value.
//
// Malformed input yields empty criteria; individual malformed fields are dropped.
func ParseCriteria(v any) Criteria {
	var c Criteria
	switch r := v.(type) {
	case map[string]any:
		c.MinYear = finiteYear(r["minYear"])
		c.MaxYear = finiteYear(r["maxYear"])
		if artist, ok := r["artist"].(string); ok {
			c.Artist = artist
		}
	case Criteria:
		c = r
		c.MinYear = finiteYearPtr(r.MinYear)
		c.MaxYear = finiteYearPtr(r.MaxYear)
	case *Criteria:
		if r != nil {
			return ParseCriteria(*r)
		}
	}

	if !c.HasArtist() {
		c.Artist = ""
	}
	return c
}

func finiteYear(v any) *float64 {
	if y, ok := ParseYear(v); ok {
		return &y
	}
	return nil
}

func finiteYearPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return finiteYear(*p)
}
