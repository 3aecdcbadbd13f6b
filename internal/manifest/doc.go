// Package manifest models one line of a Lhotse-style cut manifest.
//
// A Cut is decoded from a single JSON object line and preserves the original
// field order and the raw bytes of every field it does not understand, so an
// unmodified record re-encodes to an equivalent record. The typed views
// (duration, channel, recording sampling rate, supervisions) distinguish
// absent fields from zero values. Supervision text is the only thing the
// pipeline mutates before re-encoding.
package manifest
