// Package media wraps the ffmpeg invocations used by the subtitle pipeline.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const (
	// SampleRate is what speech models expect.
	SampleRate = 16000
	Channels   = 1
	AudioCodec = "pcm_s16le"
)

// ExtractError reports a failed ffmpeg run together with its stderr text.
type ExtractError struct {
	Source string
	Err    error
	Stderr string
}

func (e *ExtractError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("ffmpeg extract %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("ffmpeg extract %s: %v: %s", e.Source, e.Err, e.Stderr)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// Extractor demuxes audio tracks with an external ffmpeg binary.
type Extractor struct {
	Binary string
}

// NewExtractor returns an extractor running binary (or "ffmpeg" on PATH).
func NewExtractor(binary string) *Extractor {
	if strings.TrimSpace(binary) == "" {
		binary = "ffmpeg"
	}
	return &Extractor{Binary: binary}
}

// AudioArgs builds the argument list converting source into a mono 16 kHz
// signed 16-bit PCM wav at dest, overwriting dest.
func AudioArgs(source, dest string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-acodec", AudioCodec,
		"-ar", fmt.Sprintf("%d", SampleRate),
		"-ac", fmt.Sprintf("%d", Channels),
		dest,
		"-y",
	}
}

// ExtractAudio runs ffmpeg synchronously. A non-zero exit or a failure to
// start yields *ExtractError.
func (x *Extractor) ExtractAudio(ctx context.Context, source, dest string) error {
	cmd := exec.CommandContext(ctx, x.Binary, AudioArgs(source, dest)...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &ExtractError{
			Source: source,
			Err:    err,
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}
	return nil
}
