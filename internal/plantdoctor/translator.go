package plantdoctor

import (
	"context"
	"log"
	"strings"
)

// DefaultLanguage is the language canned replies and knowledge entries are written in.
const DefaultLanguage = "en"

type Translator interface {
	Translate(ctx context.Context, text string, source string, target string) (string, error)
}

// localize renders English text in language. Translation is treated as always
// available: on failure the English text is returned and the error is logged.
func localize(ctx context.Context, translator Translator, text string, language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if translator == nil || language == "" || language == DefaultLanguage {
		return text
	}

	translated, err := translator.Translate(ctx, text, DefaultLanguage, language)
	if err != nil {
		log.Printf("plantdoctor: translate to %s failed, replying in %s: %v", language, DefaultLanguage, err)
		return text
	}
	return translated
}
