// package formatter renders transform results as JSON, CSV, TOON, or plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/tracks/internal/models"
	"github.com/desertthunder/tracks/internal/shared"
	"github.com/dustin/go-humanize"
	toon "github.com/toon-format/toon-go"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatTOON Format = "toon"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatText, FormatCSV, FormatTOON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
	}
}

// WriteGroups renders grouped titles to w.
func WriteGroups(w io.Writer, groups *models.TitlesByYear, format Format, pretty bool) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = shared.MarshalJSON(groups, pretty)
	case FormatText:
		data, err = GroupsToText(groups, lipgloss.NewRenderer(w))
	case FormatCSV:
		data, err = GroupsToCSV(groups)
	case FormatTOON:
		data, err = GroupsToTOON(groups)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	return write(w, data)
}

// WriteTracks renders enriched tracks to w.
func WriteTracks(w io.Writer, tracks []models.EnrichedTrack, format Format, pretty bool) error {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = shared.MarshalJSON(tracks, pretty)
	case FormatText:
		data, err = TracksToText(tracks, lipgloss.NewRenderer(w))
	case FormatCSV:
		data, err = TracksToCSV(tracks)
	case FormatTOON:
		data, err = TracksToTOON(tracks)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	return write(w, data)
}

func write(w io.Writer, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// GroupsToCSV writes one row per title with columns: Year, Title
func GroupsToCSV(groups *models.TitlesByYear) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Year", "Title"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, year := range groups.Years() {
		for _, title := range groups.Titles(year) {
			if err := writer.Write([]string{models.FormatYear(year), title}); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// TracksToCSV writes enriched tracks with columns: Title, Artist, Year, Decade
func TracksToCSV(tracks []models.EnrichedTrack) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Title", "Artist", "Year", "Decade"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{track.Title, track.Artist, models.FormatYear(track.Year), track.Decade}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// GroupsToTOON renders grouped titles as a TOON table: titles[N]{year,title}:
func GroupsToTOON(groups *models.TitlesByYear) ([]byte, error) {
	var rows []toon.Object
	for _, year := range groups.Years() {
		for _, title := range groups.Titles(year) {
			rows = append(rows, toon.NewObject(
				toon.Field{Key: "year", Value: year},
				toon.Field{Key: "title", Value: title},
			))
		}
	}

	if len(rows) == 0 {
		return []byte("titles[0]{year,title}:"), nil
	}

	result, err := toon.MarshalString(toon.NewObject(toon.Field{Key: "titles", Value: rows}))
	if err != nil {
		return nil, fmt.Errorf("toon marshal error: %w", err)
	}
	return []byte(result), nil
}

// TracksToTOON renders enriched tracks as a TOON table: tracks[N]{title,artist,year,decade}:
func TracksToTOON(tracks []models.EnrichedTrack) ([]byte, error) {
	if len(tracks) == 0 {
		return []byte("tracks[0]{title,artist,year,decade}:"), nil
	}

	rows := make([]toon.Object, len(tracks))
	for i, track := range tracks {
		rows[i] = toon.NewObject(
			toon.Field{Key: "title", Value: track.Title},
			toon.Field{Key: "artist", Value: track.Artist},
			toon.Field{Key: "year", Value: track.Year},
			toon.Field{Key: "decade", Value: track.Decade},
		)
	}

	result, err := toon.MarshalString(toon.NewObject(toon.Field{Key: "tracks", Value: rows}))
	if err != nil {
		return nil, fmt.Errorf("toon marshal error: %w", err)
	}
	return []byte(result), nil
}

// GroupsToText lists each year as a heading followed by its titles.
func GroupsToText(groups *models.TitlesByYear, r *lipgloss.Renderer) ([]byte, error) {
	var buf bytes.Buffer
	heading := r.NewStyle().Bold(true)

	count := groups.Count()
	buf.WriteString(fmt.Sprintf("%s %s in %s %s\n",
		humanize.Comma(int64(count)), shared.Pluralize(count, "title", "titles"),
		humanize.Comma(int64(groups.Len())), shared.Pluralize(groups.Len(), "year", "years")))

	for _, year := range groups.Years() {
		titles := groups.Titles(year)
		buf.WriteString("\n" + heading.Render(models.FormatYear(year)) + fmt.Sprintf(" (%d)\n", len(titles)))
		for _, title := range titles {
			buf.WriteString(fmt.Sprintf("  %s\n", title))
		}
	}

	return buf.Bytes(), nil
}

// TracksToText renders a numbered listing: "1. Artist - Title (Year, Decade)"
func TracksToText(tracks []models.EnrichedTrack, r *lipgloss.Renderer) ([]byte, error) {
	var buf bytes.Buffer
	heading := r.NewStyle().Bold(true)

	buf.WriteString(heading.Render(fmt.Sprintf("Tracks: %s", humanize.Comma(int64(len(tracks))))) + "\n\n")

	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s (%s, %s)\n", i+1, track.Artist, track.Title, models.FormatYear(track.Year), track.Decade))
	}

	return buf.Bytes(), nil
}
