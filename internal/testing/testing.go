// package testing contains shared testing utilities
package testing

import (
	"errors"
	"os"
	"testing"

	"github.com/desertthunder/tracks/internal/models"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// FReader always returns an error on Read
type FReader struct{}

func (f *FReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

// SampleTracksJSON is a small catalog in the shape the CLI reads from stdin.
const SampleTracksJSON = `[
  {"title": "Blinding Lights", "artist": "The Weeknd", "year": 2020},
  {"title": "Starboy", "artist": "The Weeknd", "year": 2016},
  {"title": "Levitating", "artist": "Dua Lipa", "year": 2021},
  {"title": "Thriller", "artist": "Michael Jackson", "year": 1982},
  {"title": "Save Your Tears", "artist": "The Weeknd", "year": 2020},
  {"title": "Untitled", "artist": "Unknown", "year": "someday"}
]`

// SampleEnriched returns enriched tracks for formatter tests.
func SampleEnriched() []models.EnrichedTrack {
	return []models.EnrichedTrack{
		{Title: "Blinding Lights", Artist: "The Weeknd", Year: 2020, Decade: "2020s"},
		{Title: "Thriller", Artist: "Michael Jackson", Year: 1982, Decade: "1980s"},
	}
}

// SampleGroups returns grouped titles for formatter tests.
func SampleGroups() *models.TitlesByYear {
	g := models.NewTitlesByYear()
	g.Add(2020, "Blinding Lights")
	g.Add(2020, "Save Your Tears")
	g.Add(1982, "Thriller")
	return g
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
