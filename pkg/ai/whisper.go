package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/johnquangdev/video-subtitler/internal/domain/entities"
	"github.com/johnquangdev/video-subtitler/pkg/config"
)

// WhisperRecognizer runs the local whisper CLI. Each call uses its own
// output directory, so concurrent calls do not share state.
type WhisperRecognizer struct {
	Binary string
	Model  string
}

// NewWhisperRecognizer creates a recognizer from config
func NewWhisperRecognizer(cfg *config.RecognizerConfig) *WhisperRecognizer {
	binary := strings.TrimSpace(cfg.WhisperBinary)
	if binary == "" {
		binary = "whisper"
	}
	model := cfg.WhisperModel
	if model == "" {
		model = "base"
	}
	return &WhisperRecognizer{Binary: binary, Model: model}
}

type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// WhisperArgs returns the CLI arguments for one transcription
func WhisperArgs(audioPath, model, outputDir string) []string {
	return []string{
		audioPath,
		"--model", model,
		"--output_format", "json",
		"--output_dir", outputDir,
		"--verbose", "False",
	}
}

// Recognize transcribes audioPath and parses the JSON result
func (w *WhisperRecognizer) Recognize(ctx context.Context, audioPath string) (*entities.Transcription, error) {
	outDir, err := os.MkdirTemp(filepath.Dir(audioPath), "whisper-*")
	if err != nil {
		return nil, fmt.Errorf("create whisper output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, w.Binary, WhisperArgs(audioPath, w.Model, outDir)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("whisper failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	raw, err := os.ReadFile(filepath.Join(outDir, base+".json"))
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	return parseWhisperJSON(raw)
}

func parseWhisperJSON(raw []byte) (*entities.Transcription, error) {
	var out whisperOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode whisper output: %w", err)
	}
	t := &entities.Transcription{
		Language: out.Language,
		Text:     strings.TrimSpace(out.Text),
		Segments: make([]entities.Segment, 0, len(out.Segments)),
	}
	for _, s := range out.Segments {
		t.Segments = append(t.Segments, entities.Segment{Start: s.Start, End: s.End, Text: s.Text})
	}
	return t, nil
}
