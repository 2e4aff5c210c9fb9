package catalog

import (
	"math"

	"github.com/desertthunder/tracks/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterAndTransformTracks returns the tracks that pass criteria, each with its decade label.
//
// criteria may be a decoded map, a [models.Criteria], or anything else (treated as no criteria).
// Checks run in order minYear, maxYear, artist; the artist comparison is case-insensitive.
// Records missing a string title, string artist, or finite year are skipped. Output keeps input order.
func (t *Transformer) FilterAndTransformTracks(tracks any, criteria any) []models.EnrichedTrack {
	out := []models.EnrichedTrack{}

	items, ok := elements(tracks)
	if !ok {
		t.logger.Debug("tracks is not a list", "type", typeName(tracks))
		return out
	}
	if len(items) == 0 {
		return out
	}

	c := models.ParseCriteria(criteria)
	lower := cases.Lower(language.Und)
	artist := ""
	if c.HasArtist() {
		artist = lower.String(c.Artist)
	}

	skipped, excluded := 0, 0
	for i, item := range items {
		track, err := models.ParseTrack(item)
		if err != nil {
			t.logger.Debug("skipping track", "index", i, "err", err)
			skipped++
			continue
		}

		if c.MinYear != nil && track.Year < *c.MinYear {
			excluded++
			continue
		}
		if c.MaxYear != nil && track.Year > *c.MaxYear {
			excluded++
			continue
		}
		if artist != "" && lower.String(track.Artist) != artist {
			excluded++
			continue
		}

		out = append(out, models.EnrichedTrack{
			Title:  track.Title,
			Artist: track.Artist,
			Year:   track.Year,
			Decade: Decade(track.Year),
		})
	}

	t.logger.Debug("filtered tracks", "tracks", len(items), "kept", len(out), "excluded", excluded, "skipped", skipped)
	return out
}

// Decade labels the decade containing year: floor(year/10)*10 followed by "s".
//
// Negative years floor toward negative infinity, so -5 is "-10s".
func Decade(year float64) string {
	return models.FormatYear(math.Floor(year/10)*10) + "s"
}
