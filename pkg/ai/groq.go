package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/johnquangdev/video-subtitler/pkg/config"
	"github.com/johnquangdev/video-subtitler/pkg/languages"
)

// GroqTranslator translates captions through Groq's OpenAI compatible chat API
type GroqTranslator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGroqTranslator creates a Groq translator using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqTranslator(cfg *config.TranslatorConfig) *GroqTranslator {
	var apiKey, base, model string
	timeout := 30 * time.Second
	if cfg != nil {
		apiKey, base, model = cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if base == "" {
		base = "https://api.groq.com"
	}
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	return &GroqTranslator{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// ChatMessage is one chat completion message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages,omitempty"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate sends one caption to Groq and returns the translated line
func (g *GroqTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("groq api key not configured")
	}

	name := languages.DisplayName(target)
	if name == "" {
		name = target
	}
	prompt := fmt.Sprintf(
		"Translate the following subtitle line into %s. Reply with the translated line only, without quotes or notes.",
		name,
	)
	reqBody := ChatRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: "system", Content: prompt},
			{Role: "user", Content: text},
		},
		Temperature: 0,
		MaxTokens:   1024,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq returned status %d", resp.StatusCode)
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	out := cleanCompletion(cr.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("empty translation from groq")
	}
	return out, nil
}

// cleanCompletion strips markdown code fences and wrapping quotes
func cleanCompletion(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
