package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/desertthunder/tracks/internal/shared"
)

type catalogYear int

func TestParseYear(t *testing.T) {
	tc := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{name: "float64", value: 2020.0, want: 2020, ok: true},
		{name: "fractional", value: 1999.5, want: 1999.5, ok: true},
		{name: "int", value: 1982, want: 1982, ok: true},
		{name: "int64", value: int64(-5), want: -5, ok: true},
		{name: "uint16", value: uint16(1975), want: 1975, ok: true},
		{name: "named int", value: catalogYear(2016), want: 2016, ok: true},
		{name: "float32", value: float32(2001), want: 2001, ok: true},
		{name: "json.Number", value: json.Number("2015"), want: 2015, ok: true},
		{name: "NaN", value: math.NaN(), ok: false},
		{name: "+Inf", value: math.Inf(1), ok: false},
		{name: "-Inf", value: math.Inf(-1), ok: false},
		{name: "numeric string", value: "2020", ok: false},
		{name: "bad json.Number", value: json.Number("twenty"), ok: false},
		{name: "nil", value: nil, ok: false},
		{name: "bool", value: true, ok: false},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseYear(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParseYear(%v) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseYear(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseTrack(t *testing.T) {
	t.Run("valid map", func(t *testing.T) {
		got, err := ParseTrack(map[string]any{"title": "Thriller", "artist": "Michael Jackson", "year": 1982.0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Track{Title: "Thriller", Artist: "Michael Jackson", Year: 1982}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("typed track and pointer", func(t *testing.T) {
		track := Track{Title: "Starboy", Artist: "The Weeknd", Year: 2016}
		for _, v := range []any{track, &track} {
			got, err := ParseTrack(v)
			if err != nil {
				t.Fatalf("unexpected error for %T: %v", v, err)
			}
			if got != track {
				t.Errorf("got %+v, want %+v", got, track)
			}
		}
	})

	t.Run("rejections", func(t *testing.T) {
		var nilTrack *Track
		tc := []struct {
			name  string
			value any
			want  error
		}{
			{name: "nil", value: nil, want: shared.ErrNotRecord},
			{name: "nil pointer", value: nilTrack, want: shared.ErrNotRecord},
			{name: "string", value: "Thriller", want: shared.ErrNotRecord},
			{name: "slice", value: []any{"Thriller"}, want: shared.ErrNotRecord},
			{name: "nil map", value: map[string]any(nil), want: shared.ErrNotRecord},
			{name: "missing title", value: map[string]any{"artist": "A", "year": 2000}, want: shared.ErrInvalidTitle},
			{name: "numeric title", value: map[string]any{"title": 7, "artist": "A", "year": 2000}, want: shared.ErrInvalidTitle},
			{name: "missing artist", value: map[string]any{"title": "T", "year": 2000}, want: shared.ErrInvalidArtist},
			{name: "string year", value: map[string]any{"title": "T", "artist": "A", "year": "2000"}, want: shared.ErrInvalidYear},
			{name: "NaN year", value: map[string]any{"title": "T", "artist": "A", "year": math.NaN()}, want: shared.ErrInvalidYear},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := ParseTrack(tt.value); !errors.Is(err, tt.want) {
					t.Errorf("ParseTrack() error = %v, want %v", err, tt.want)
				}
			})
		}
	})
}

func TestParseRelease(t *testing.T) {
	tc := []struct {
		name  string
		value any
		want  Release
	}{
		{name: "string title", value: map[string]any{"title": "Levitating", "year": 2021}, want: Release{Year: 2021, Title: "Levitating"}},
		{name: "missing title", value: map[string]any{"year": 2021}, want: Release{Year: 2021, Title: ""}},
		{name: "numeric title", value: map[string]any{"title": 1999, "year": 1982}, want: Release{Year: 1982, Title: "1999"}},
		{name: "artist not required", value: map[string]any{"title": "X", "artist": 42, "year": 1.0}, want: Release{Year: 1, Title: "X"}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelease(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("invalid year", func(t *testing.T) {
		if _, err := ParseRelease(map[string]any{"title": "A", "year": math.NaN()}); !errors.Is(err, shared.ErrInvalidYear) {
			t.Errorf("expected ErrInvalidYear, got %v", err)
		}
	})
}

func TestParseCriteria(t *testing.T) {
	year := func(v float64) *float64 { return &v }

	t.Run("non-record criteria are empty", func(t *testing.T) {
		for _, v := range []any{nil, "artist", 42, []any{}, (*Criteria)(nil)} {
			if c := ParseCriteria(v); !c.IsEmpty() {
				t.Errorf("ParseCriteria(%#v) = %+v, want empty", v, c)
			}
		}
	})

	t.Run("map with all fields", func(t *testing.T) {
		c := ParseCriteria(map[string]any{"minYear": 2010, "maxYear": 2020.0, "artist": "The Weeknd"})
		if c.MinYear == nil || *c.MinYear != 2010 {
			t.Errorf("expected minYear 2010, got %v", c.MinYear)
		}
		if c.MaxYear == nil || *c.MaxYear != 2020 {
			t.Errorf("expected maxYear 2020, got %v", c.MaxYear)
		}
		if c.Artist != "The Weeknd" {
			t.Errorf("expected artist The Weeknd, got %q", c.Artist)
		}
	})

	t.Run("malformed fields are dropped", func(t *testing.T) {
		c := ParseCriteria(map[string]any{"minYear": "2010", "maxYear": math.Inf(1), "artist": "   "})
		if !c.IsEmpty() {
			t.Errorf("expected empty criteria, got %+v", c)
		}
	})

	t.Run("artist is kept untrimmed", func(t *testing.T) {
		c := ParseCriteria(map[string]any{"artist": " Dua Lipa "})
		if c.Artist != " Dua Lipa " {
			t.Errorf("expected untrimmed artist, got %q", c.Artist)
		}
	})

	t.Run("typed criteria are copied", func(t *testing.T) {
		in := Criteria{MinYear: year(1970), MaxYear: year(math.NaN())}
		c := ParseCriteria(&in)
		if c.MinYear == nil || *c.MinYear != 1970 {
			t.Errorf("expected minYear 1970, got %v", c.MinYear)
		}
		if c.MinYear == in.MinYear {
			t.Error("expected criteria to be copied, not aliased")
		}
		if c.MaxYear != nil {
			t.Errorf("expected NaN maxYear to be dropped, got %v", *c.MaxYear)
		}
	})
}

func TestTitlesByYear(t *testing.T) {
	t.Run("keeps first-insertion order", func(t *testing.T) {
		g := NewTitlesByYear()
		g.Add(2020, "B")
		g.Add(2019, "C")
		g.Add(2020, "A")

		years := g.Years()
		if len(years) != 2 || years[0] != 2020 || years[1] != 2019 {
			t.Errorf("unexpected years %v", years)
		}
		if g.Count() != 3 {
			t.Errorf("expected 3 titles, got %d", g.Count())
		}

		got, err := json.Marshal(g)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != `{"2020":["B","A"],"2019":["C"]}` {
			t.Errorf("unexpected JSON %s", got)
		}
	})

	t.Run("SortTitles", func(t *testing.T) {
		g := NewTitlesByYear()
		g.Add(2020, "B")
		g.Add(2020, "A")
		g.SortTitles(func(a, b string) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		})

		titles := g.Titles(2020)
		if len(titles) != 2 || titles[0] != "A" || titles[1] != "B" {
			t.Errorf("unexpected titles %v", titles)
		}
	})

	t.Run("empty marshals to object", func(t *testing.T) {
		got, err := json.Marshal(NewTitlesByYear())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != "{}" {
			t.Errorf("expected {}, got %s", got)
		}
	})

	t.Run("FormatYear", func(t *testing.T) {
		tc := map[float64]string{2020: "2020", 1999.5: "1999.5", -10: "-10", math.Copysign(0, -1): "0"}
		for in, want := range tc {
			if got := FormatYear(in); got != want {
				t.Errorf("FormatYear(%v) = %q, want %q", in, got, want)
			}
		}
	})
}
