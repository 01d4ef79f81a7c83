package i18n

import (
	"encoding/json"
	"io/fs"
	"sort"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLocaleKeysParity(t *testing.T) {
	en := mustLoadLocaleMessages(t, LangEN)
	for _, language := range embeddedLanguages(t) {
		if language == LangEN {
			continue
		}
		messages := mustLoadLocaleMessages(t, language)
		if missing := missingKeys(en, messages); len(missing) > 0 {
			t.Errorf("keys missing in %s locale: %s", language, strings.Join(missing, ", "))
		}
		if extra := missingKeys(messages, en); len(extra) > 0 {
			t.Errorf("keys missing in en locale: %s", strings.Join(extra, ", "))
		}
	}
}

func TestManagerNormalizesAndFallsBack(t *testing.T) {
	manager, err := NewEmbeddedManager("hi")
	if err != nil {
		t.Fatalf("NewEmbeddedManager() unexpected error: %v", err)
	}
	if manager.DefaultLanguage() != "hi" {
		t.Fatalf("expected hi default, got %q", manager.DefaultLanguage())
	}
	if got := manager.NormalizeLanguage("EN_us"); got != "en" {
		t.Fatalf("NormalizeLanguage(EN_us) = %q", got)
	}
	if got := manager.NormalizeLanguage("fr"); got != "hi" {
		t.Fatalf("expected unsupported language to fall back to default, got %q", got)
	}
	if got := manager.DetectFromAcceptLanguage("fr-FR, hi-IN;q=0.8, en;q=0.5"); got != "hi" {
		t.Fatalf("DetectFromAcceptLanguage() = %q", got)
	}
}

func TestManagerTranslateFallsBackToEnglishThenKey(t *testing.T) {
	locales := fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"Hello","only.en":"English only"}`)},
		"bn.json": {Data: []byte(`{"greeting":"নমস্কার"}`)},
	}
	manager, err := NewManager("en", locales)
	if err != nil {
		t.Fatalf("NewManager() unexpected error: %v", err)
	}

	if got := manager.Translate("bn", "greeting"); got != "নমস্কার" {
		t.Fatalf("Translate(bn, greeting) = %q", got)
	}
	if got := manager.Translate("bn", "only.en"); got != "English only" {
		t.Fatalf("expected English fallback, got %q", got)
	}
	if got := manager.Translate("bn", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}
	if supported := manager.SupportedLanguages(); len(supported) != 2 || supported[0] != "bn" {
		t.Fatalf("unexpected supported languages %v", supported)
	}
}

func TestNewManagerRequiresEnglish(t *testing.T) {
	locales := fstest.MapFS{"hi.json": {Data: []byte(`{"a":"b"}`)}}
	if _, err := NewManager("hi", locales); err == nil {
		t.Fatal("expected error when en locale is missing")
	}

	broken := fstest.MapFS{"en.json": {Data: []byte(`{not json`)}}
	if _, err := NewManager("en", broken); err == nil {
		t.Fatal("expected error for malformed locale")
	}
}

func embeddedLanguages(t *testing.T) []string {
	t.Helper()
	entries, err := fs.ReadDir(embeddedLocales, "locales")
	if err != nil {
		t.Fatalf("read embedded locales: %v", err)
	}
	languages := make([]string, 0, len(entries))
	for _, entry := range entries {
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return languages
}

func mustLoadLocaleMessages(t *testing.T, language string) map[string]string {
	t.Helper()

	content, err := fs.ReadFile(embeddedLocales, "locales/"+language+".json")
	if err != nil {
		t.Fatalf("read locale %q: %v", language, err)
	}

	messages := map[string]string{}
	if err := json.Unmarshal(content, &messages); err != nil {
		t.Fatalf("parse locale %q: %v", language, err)
	}
	if len(messages) == 0 {
		t.Fatalf("locale %q is empty", language)
	}
	return messages
}

func missingKeys(source map[string]string, target map[string]string) []string {
	missing := make([]string, 0)
	for key := range source {
		if _, ok := target[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
