package ai

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/johnquangdev/video-subtitler/pkg/config"
)

// translatePath is the Cloud Translation v2 base path under an endpoint host
const translatePath = "/language/translate/"

// GoogleTranslator translates captions with Cloud Translation v2
type GoogleTranslator struct {
	client *translate.Client
}

// NewGoogleTranslator creates a Cloud Translation client authenticated by API key.
// GoogleBaseURL, when set, replaces the production host.
func NewGoogleTranslator(ctx context.Context, cfg *config.TranslatorConfig) (*GoogleTranslator, error) {
	if cfg == nil || cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("google translate api key not configured")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.GoogleAPIKey)}
	if base := strings.TrimRight(cfg.GoogleBaseURL, "/"); base != "" {
		opts = append(opts, option.WithEndpoint(base+translatePath))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create google translate client: %w", err)
	}
	return &GoogleTranslator{client: client}, nil
}

// Translate translates text into target
func (g *GoogleTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	tag, err := language.Parse(target)
	if err != nil {
		return "", fmt.Errorf("unsupported target language %q: %w", target, err)
	}

	out, err := g.client.Translate(ctx, []string{text}, tag, &translate.Options{Format: translate.Text})
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty response from google translate")
	}
	return out[0].Text, nil
}

// Close releases the underlying HTTP transport
func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}
