// Package models defines the track record types and the parse step that turns loosely typed input into them.
//
// Input records usually arrive decoded from JSON or YAML as map[string]any. Rather than probing fields
// ad hoc inside each transform, callers run a record through one of the parsers:
//   - [ParseTrack] : fully typed [Track] with title, artist, and a finite year
//   - [ParseRelease] : year and display title only, for grouping
//   - [ParseCriteria] : optional filter bounds and artist
//
// Rejections are returned as errors wrapping the sentinels in the shared package, so callers can log and
// skip a record without failing the whole batch.
//
// Output types:
//   - [EnrichedTrack] : a track plus its decade label
//   - [TitlesByYear] : insertion-ordered year to titles mapping
package models
