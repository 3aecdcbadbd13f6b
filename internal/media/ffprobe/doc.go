// Package ffprobe wraps ffprobe JSON output for audio-property inspection.
//
// The probe is an external collaborator: given a file path it reports the
// first audio stream's channel count, sample rate, and codec name, or a
// failure. Callers treat it as fallible and optional; path validation
// degrades gracefully when the binary is missing.
package ffprobe
