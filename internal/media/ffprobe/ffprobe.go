package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNotFound reports that the ffprobe binary is not installed.
var ErrNotFound = errors.New("ffprobe not found")

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index      int    `json:"index"`
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// AudioProperties is the collaborator's answer for one file: the first audio
// stream's shape.
type AudioProperties struct {
	Channels   int
	SampleRate int
	Codec      string
}

// Available reports whether the ffprobe binary can be found.
func Available(binary string) bool {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response. An empty binary defaults to "ffprobe" on PATH.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner",
		"-select_streams", "a", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return Result{}, ErrNotFound
		}
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// InspectAudio probes path and returns the first audio stream's properties.
func InspectAudio(ctx context.Context, binary string, path string) (AudioProperties, error) {
	result, err := Inspect(ctx, binary, path)
	if err != nil {
		return AudioProperties{}, err
	}
	stream, ok := result.FirstAudioStream()
	if !ok {
		return AudioProperties{}, fmt.Errorf("ffprobe: no audio stream in %s", path)
	}
	return AudioProperties{
		Channels:   stream.Channels,
		SampleRate: stream.SampleRateHz(),
		Codec:      strings.ToLower(strings.TrimSpace(stream.CodecName)),
	}, nil
}

// FirstAudioStream returns the first stream whose codec type is audio.
func (r Result) FirstAudioStream() (Stream, bool) {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			return stream, true
		}
	}
	return Stream{}, false
}

// SampleRateHz parses the stream's sample rate, or 0 when unavailable.
func (s Stream) SampleRateHz() int {
	cleaned := strings.TrimSpace(s.SampleRate)
	if cleaned == "" {
		return 0
	}
	rate, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return rate
}
