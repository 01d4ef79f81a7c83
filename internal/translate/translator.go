// Package translate adapts machine translation services to the assistant.
package translate

import (
	"context"
	"strings"
)

const AutoDetect = "auto"

// Identity returns text unchanged. It stands in when no service is configured.
type Identity struct{}

func (Identity) Translate(_ context.Context, text string, _ string, _ string) (string, error) {
	return text, nil
}

func needsTranslation(text string, source string, target string) bool {
	if strings.TrimSpace(text) == "" || target == "" {
		return false
	}
	return source != target
}
