// Package catalog implements the two track transforms:
//
//  1. [GroupTitlesByYear] : year to titles, each bucket sorted with root-locale collation
//  2. [FilterAndTransformTracks] : year range and artist filter, each survivor tagged with its decade
//
// Neither function fails. Input that is not a slice or array yields an empty result, and records that
// do not parse (see the models package) are skipped. A [Transformer] does the same work but reports
// skipped records to a [log.Logger].
//
// Both functions allocate their collator or caser per call and share no state, so they are safe to
// call concurrently.
package catalog
