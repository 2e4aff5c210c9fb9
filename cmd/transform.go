package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/desertthunder/tracks/internal/catalog"
	"github.com/desertthunder/tracks/internal/formatter"
	"github.com/desertthunder/tracks/internal/models"
	"github.com/desertthunder/tracks/internal/shared"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Group reads tracks from stdin and writes their titles grouped by year.
func (r *Runner) Group(ctx context.Context, cmd *cli.Command) error {
	format, err := r.outputFormat(cmd)
	if err != nil {
		return err
	}

	tracks, err := r.readTracks(cmd.String("input-format"))
	if err != nil {
		return err
	}

	groups := catalog.NewTransformer(r.logger).GroupTitlesByYear(tracks)
	r.logger.Info("grouped titles", "years", groups.Len(), "titles", groups.Count())

	return formatter.WriteGroups(r.output, groups, format, r.pretty(cmd))
}

// Filter reads tracks from stdin and writes those matching the criteria, each with its decade.
//
// Flags override the [filter] section of the config file.
func (r *Runner) Filter(ctx context.Context, cmd *cli.Command) error {
	format, err := r.outputFormat(cmd)
	if err != nil {
		return err
	}

	tracks, err := r.readTracks(cmd.String("input-format"))
	if err != nil {
		return err
	}

	criteria := r.criteria(cmd)
	r.logger.Debug("filter criteria", "min_year", bound(criteria.MinYear), "max_year", bound(criteria.MaxYear), "artist", criteria.Artist)

	result := catalog.NewTransformer(r.logger).FilterAndTransformTracks(tracks, criteria)
	r.logger.Info("filtered tracks", "kept", len(result))

	return formatter.WriteTracks(r.output, result, format, r.pretty(cmd))
}

func (r *Runner) criteria(cmd *cli.Command) models.Criteria {
	c := models.Criteria{
		MinYear: r.config.Filter.MinYear,
		MaxYear: r.config.Filter.MaxYear,
		Artist:  r.config.Filter.Artist,
	}

	if cmd.IsSet("min-year") {
		v := cmd.Float("min-year")
		c.MinYear = &v
	}
	if cmd.IsSet("max-year") {
		v := cmd.Float("max-year")
		c.MaxYear = &v
	}
	if cmd.IsSet("artist") {
		c.Artist = cmd.String("artist")
	}

	return c
}

func bound(year *float64) string {
	if year == nil {
		return "none"
	}
	return models.FormatYear(*year)
}

func (r *Runner) outputFormat(cmd *cli.Command) (formatter.Format, error) {
	name := r.config.Output.Format
	if cmd.IsSet("format") {
		name = cmd.String("format")
	}
	return formatter.ParseFormat(name)
}

func (r *Runner) pretty(cmd *cli.Command) bool {
	if cmd.IsSet("pretty") {
		return cmd.Bool("pretty")
	}
	return r.config.Output.Pretty
}

// readTracks decodes the whole of stdin. Empty input decodes to nil, which the transforms treat as no tracks.
func (r *Runner) readTracks(inputFormat string) (any, error) {
	var tracks any

	switch inputFormat {
	case "json":
		dec := json.NewDecoder(r.input)
		dec.UseNumber()
		if err := dec.Decode(&tracks); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: failed to decode JSON: %v", shared.ErrInvalidInput, err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r.input).Decode(&tracks); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: failed to decode YAML: %v", shared.ErrInvalidInput, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown input format %q", shared.ErrInvalidFlag, inputFormat)
	}

	return tracks, nil
}
