package catalog

import (
	"github.com/desertthunder/tracks/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GroupTitlesByYear returns the titles of tracks keyed by release year.
//
// Records that are not structured or lack a finite year are skipped. Titles are collected in input
// order, then each year's list is sorted once with root-locale collation. Years keep first-seen order.
func (t *Transformer) GroupTitlesByYear(tracks any) *models.TitlesByYear {
	groups := models.NewTitlesByYear()

	items, ok := elements(tracks)
	if !ok {
		t.logger.Debug("tracks is not a list", "type", typeName(tracks))
		return groups
	}
	if len(items) == 0 {
		return groups
	}

	skipped := 0
	for i, item := range items {
		release, err := models.ParseRelease(item)
		if err != nil {
			t.logger.Debug("skipping track", "index", i, "err", err)
			skipped++
			continue
		}
		groups.Add(release.Year, release.Title)
	}

	groups.SortTitles(collate.New(language.Und).CompareString)

	t.logger.Debug("grouped titles", "tracks", len(items), "years", groups.Len(), "skipped", skipped)
	return groups
}
