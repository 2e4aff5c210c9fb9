package catalog

import (
	"fmt"
	"io"
	"reflect"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tracks/internal/models"
)

// Transformer runs the track transforms and logs each skipped record at debug level.
type Transformer struct {
	logger *log.Logger
}

// NewTransformer creates a Transformer. A nil logger discards output.
func NewTransformer(logger *log.Logger) *Transformer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Transformer{logger: logger}
}

var std = NewTransformer(nil)

// GroupTitlesByYear groups titles by release year; see [Transformer.GroupTitlesByYear].
func GroupTitlesByYear(tracks any) *models.TitlesByYear {
	return std.GroupTitlesByYear(tracks)
}

// FilterAndTransformTracks filters and enriches tracks; see [Transformer.FilterAndTransformTracks].
func FilterAndTransformTracks(tracks any, criteria any) []models.EnrichedTrack {
	return std.FilterAndTransformTracks(tracks, criteria)
}

// elements unpacks any slice or array into its items. ok is false for every other kind.
func elements(tracks any) ([]any, bool) {
	if items, ok := tracks.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(tracks)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
