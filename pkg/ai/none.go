package ai

import (
	"context"
	"errors"
)

// ErrTranslationDisabled is returned by NoopTranslator for every call
var ErrTranslationDisabled = errors.New("translation disabled")

// NoopTranslator leaves every caption untranslated
type NoopTranslator struct{}

func (NoopTranslator) Translate(context.Context, string, string) (string, error) {
	return "", ErrTranslationDisabled
}
