package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/video-subtitler/pkg/config"
)

func ptr[T any](v T) *T { return &v }

func TestToTranscription_ConvertsMilliseconds(t *testing.T) {
	tr := aai.Transcript{
		Text:         ptr(" Hello there. General Kenobi. "),
		LanguageCode: aai.TranscriptLanguageCode("en"),
	}
	sentences := []aai.TranscriptSentence{
		{Text: ptr("Hello there."), Start: ptr(int64(0)), End: ptr(int64(1500))},
		{Text: ptr("General Kenobi."), Start: ptr(int64(1500)), End: ptr(int64(75500))},
	}

	got := toTranscription(tr, sentences)
	if got.Language != "en" || got.Text != "Hello there. General Kenobi." {
		t.Fatalf("unexpected transcription %+v", got)
	}
	if len(got.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(got.Segments))
	}
	if got.Segments[1].Start != 1.5 || got.Segments[1].End != 75.5 {
		t.Fatalf("unexpected bounds %+v", got.Segments[1])
	}
}

func TestParseWhisperJSON(t *testing.T) {
	raw := []byte(`{"text":" hola mundo","language":"es","segments":[{"id":0,"start":0.0,"end":2.24,"text":" hola mundo"}]}`)
	got, err := parseWhisperJSON(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Language != "es" || got.Text != "hola mundo" || len(got.Segments) != 1 {
		t.Fatalf("unexpected %+v", got)
	}
	if got.Segments[0].End != 2.24 {
		t.Fatalf("unexpected end %v", got.Segments[0].End)
	}

	if _, err := parseWhisperJSON([]byte("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestWhisperRecognizer_RunsCLI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "whisper")
	// writes <output_dir>/<audio base>.json
	script := `#!/bin/sh
audio=$1
while [ $# -gt 0 ]; do
  if [ "$1" = "--output_dir" ]; then out=$2; fi
  shift
done
base=$(basename "$audio" .wav)
echo '{"text":"hi","language":"en","segments":[{"start":0,"end":1,"text":"hi"}]}' > "$out/$base.json"
`
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	audio := filepath.Join(dir, "abc-123.wav")
	if err := os.WriteFile(audio, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}

	w := NewWhisperRecognizer(&config.RecognizerConfig{WhisperBinary: stub})
	got, err := w.Recognize(context.Background(), audio)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if got.Text != "hi" || len(got.Segments) != 1 {
		t.Fatalf("unexpected %+v", got)
	}
}

func TestWhisperRecognizer_Failure(t *testing.T) {
	w := NewWhisperRecognizer(&config.RecognizerConfig{WhisperBinary: filepath.Join(t.TempDir(), "missing")})
	if _, err := w.Recognize(context.Background(), filepath.Join(t.TempDir(), "a.wav")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWhisperArgs(t *testing.T) {
	joined := strings.Join(WhisperArgs("a.wav", "small", "/tmp/out"), " ")
	for _, want := range []string{"a.wav", "--model small", "--output_format json", "--output_dir /tmp/out"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %s", want, joined)
		}
	}
}

func TestGroqTranslator_Translate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[1].Content != "Hello there." {
			t.Errorf("unexpected messages %+v", req.Messages)
		}
		if !strings.Contains(req.Messages[0].Content, "French") {
			t.Errorf("prompt should name the language: %q", req.Messages[0].Content)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "```\n\"Bonjour.\"\n```"}},
			},
		})
	}))
	defer ts.Close()

	g := NewGroqTranslator(&config.TranslatorConfig{GroqAPIKey: "test-key", GroqBaseURL: ts.URL})
	got, err := g.Translate(context.Background(), "Hello there.", "fr")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Bonjour." {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestGroqTranslator_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	g := NewGroqTranslator(&config.TranslatorConfig{GroqAPIKey: "k", GroqBaseURL: ts.URL})
	if _, err := g.Translate(context.Background(), "hi", "es"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGroqTranslator_MissingKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	g := NewGroqTranslator(&config.TranslatorConfig{})
	if _, err := g.Translate(context.Background(), "hi", "es"); err == nil {
		t.Fatalf("expected error without api key")
	}
}

func TestCleanCompletion(t *testing.T) {
	cases := map[string]string{
		"Hola":                 "Hola",
		"  \"Hola\"  ":         "Hola",
		"```text\nHola\n```":   "Hola",
		"```\n\"Hola\"\n```\n": "Hola",
	}
	for in, want := range cases {
		if got := cleanCompletion(in); got != want {
			t.Errorf("cleanCompletion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGoogleTranslator_Translate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/language/translate/v2" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.Form.Get("key") != "g-key" || r.Form.Get("target") != "de" || r.Form.Get("q") != "Good morning" {
			t.Errorf("unexpected request values %v", r.Form)
		}
		if r.Form.Get("format") != "text" {
			t.Errorf("expected text format, got %q", r.Form.Get("format"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"Guten Morgen","detectedSourceLanguage":"en"}]}}`))
	}))
	defer ts.Close()

	g, err := NewGoogleTranslator(context.Background(), &config.TranslatorConfig{GoogleAPIKey: "g-key", GoogleBaseURL: ts.URL})
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	defer g.Close()

	got, err := g.Translate(context.Background(), "Good morning", "de")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Guten Morgen" {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestGoogleTranslator_ErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"Invalid Value"}}`))
	}))
	defer ts.Close()

	g, err := NewGoogleTranslator(context.Background(), &config.TranslatorConfig{GoogleAPIKey: "g-key", GoogleBaseURL: ts.URL})
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	defer g.Close()

	_, err = g.Translate(context.Background(), "x", "fr")
	if err == nil || !strings.Contains(err.Error(), "Invalid Value") {
		t.Fatalf("expected error carrying message, got %v", err)
	}
}

func TestGoogleTranslator_RequiresKeyAndValidTarget(t *testing.T) {
	if _, err := NewGoogleTranslator(context.Background(), &config.TranslatorConfig{}); err == nil {
		t.Fatalf("expected error without api key")
	}

	g, err := NewGoogleTranslator(context.Background(), &config.TranslatorConfig{GoogleAPIKey: "g-key", GoogleBaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("new translator: %v", err)
	}
	defer g.Close()
	if _, err := g.Translate(context.Background(), "x", "not a tag!"); err == nil {
		t.Fatalf("expected error for malformed target")
	}
}

func TestNoopTranslator(t *testing.T) {
	if _, err := (NoopTranslator{}).Translate(context.Background(), "x", "fr"); err != ErrTranslationDisabled {
		t.Fatalf("expected ErrTranslationDisabled, got %v", err)
	}
}
