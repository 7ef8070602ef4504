// Package srt formats timed segments as SubRip subtitle files.
package srt

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Block is one numbered subtitle cue
type Block struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Cue is anything with a time range and text, typically a transcription segment
type Cue interface {
	Bounds() (start, end float64)
	Caption() string
}

// FormatTimestamp converts a seconds offset into HH:MM:SS,mmm.
// Milliseconds are truncated; negative offsets clamp to zero.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	// the epsilon keeps values like 1.001 from truncating to 1.000
	totalMs := int64(math.Floor(seconds*1000 + 1e-6))
	hours := totalMs / 3_600_000
	minutes := (totalMs % 3_600_000) / 60_000
	secs := (totalMs % 60_000) / 1000
	ms := totalMs % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, ms)
}

// ParseTimestamp parses HH:MM:SS,mmm (or with a period) back into seconds.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// BuildBlocks numbers cues from 1 in order. caption may replace the cue text
// (for translation); a nil caption keeps the trimmed original.
func BuildBlocks[C Cue](cues []C, caption func(i int, text string) string) []Block {
	blocks := make([]Block, 0, len(cues))
	for i, cue := range cues {
		start, end := cue.Bounds()
		text := strings.TrimSpace(cue.Caption())
		if caption != nil {
			text = caption(i, text)
		}
		blocks = append(blocks, Block{
			Index: i + 1,
			Start: start,
			End:   end,
			Text:  text,
		})
	}
	return blocks
}

// Encode writes blocks as SRT. Each block is index, timing line, caption and a
// blank line.
func Encode(w io.Writer, blocks []Block) error {
	for _, b := range blocks {
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			b.Index, FormatTimestamp(b.Start), FormatTimestamp(b.End), b.Text); err != nil {
			return fmt.Errorf("write srt block %d: %w", b.Index, err)
		}
	}
	return nil
}

// Marshal returns the SRT encoding of blocks.
func Marshal(blocks []Block) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, blocks)
	return buf.Bytes()
}

// CountBlocks counts non-empty cue blocks in SRT content.
func CountBlocks(content string) int {
	content = strings.TrimSpace(strings.ReplaceAll(content, "\r\n", "\n"))
	if content == "" {
		return 0
	}
	count := 0
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}
