package plantdoctor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/gosimple/slug"
)

const NotIdentifiedReply = "Sorry, I couldn't identify the plant disease. Please try again or upload an image."

var ErrInvalidKnowledgeEntry = errors.New("invalid knowledge entry")

type DiseaseEntry struct {
	Class     string   `json:"class"`
	Keywords  []string `json:"keywords"`
	Symptoms  []string `json:"symptoms"`
	Solutions []string `json:"solutions"`
}

func (entry DiseaseEntry) Slug() string {
	return classSlug(entry.Class)
}

// classSlug treats the underscores of model class labels as word breaks.
func classSlug(value string) string {
	return slug.Make(strings.ReplaceAll(value, "_", " "))
}

// Describe formats the entry the way the chat assistant presents it.
func (entry DiseaseEntry) Describe() string {
	return fmt.Sprintf(
		"Disease: %s\nSymptoms: %s\nSolutions: %s",
		entry.Class,
		strings.Join(entry.Symptoms, ", "),
		strings.Join(entry.Solutions, ", "),
	)
}

type KnowledgeBase struct {
	entries    []DiseaseEntry
	bySlug     map[string]int
	translator Translator
	pick       func(n int) int
}

func NewKnowledgeBase(entries []DiseaseEntry, translator Translator) (*KnowledgeBase, error) {
	base := &KnowledgeBase{
		entries:    make([]DiseaseEntry, 0, len(entries)),
		bySlug:     make(map[string]int, len(entries)),
		translator: translator,
		pick:       rand.IntN,
	}

	for index, entry := range entries {
		entry.Class = strings.TrimSpace(entry.Class)
		if entry.Class == "" {
			return nil, fmt.Errorf("%w: entry %d has no class", ErrInvalidKnowledgeEntry, index)
		}

		keywords := make([]string, 0, len(entry.Keywords))
		for _, keyword := range entry.Keywords {
			if keyword = strings.ToLower(strings.TrimSpace(keyword)); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("%w: %s has no keywords", ErrInvalidKnowledgeEntry, entry.Class)
		}
		entry.Keywords = keywords

		base.bySlug[entry.Slug()] = len(base.entries)
		base.entries = append(base.entries, entry)
	}
	return base, nil
}

// LoadKnowledgeBase reads either {"plant_diseases": [...]} or a bare array of entries.
func LoadKnowledgeBase(path string, translator Translator) (*KnowledgeBase, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var entries []DiseaseEntry
	if trimmed := bytes.TrimSpace(content); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &entries)
	} else {
		var document struct {
			PlantDiseases []DiseaseEntry `json:"plant_diseases"`
		}
		err = json.Unmarshal(trimmed, &document)
		entries = document.PlantDiseases
	}
	if err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}

	return NewKnowledgeBase(entries, translator)
}

func (base *KnowledgeBase) Entries() []DiseaseEntry {
	result := make([]DiseaseEntry, len(base.entries))
	copy(result, base.entries)
	return result
}

func (base *KnowledgeBase) FindBySlug(value string) (DiseaseEntry, bool) {
	index, ok := base.bySlug[classSlug(value)]
	if !ok {
		return DiseaseEntry{}, false
	}
	return base.entries[index], true
}

func (base *KnowledgeBase) DescribeIn(ctx context.Context, entry DiseaseEntry, language string) string {
	return localize(ctx, base.translator, entry.Describe(), language)
}

// Lookup answers query from the table, translated into language. The boolean
// is false when nothing matched and the reply is the not-identified message.
func (base *KnowledgeBase) Lookup(ctx context.Context, query string, language string) (string, bool) {
	entry, ok := base.Match(query)
	if !ok {
		return localize(ctx, base.translator, NotIdentifiedReply, language), false
	}
	return base.DescribeIn(ctx, entry, language), true
}

// Match picks uniformly among every (entry, keyword) pair whose keyword is
// contained in query, so an entry hit by two keywords is twice as likely.
func (base *KnowledgeBase) Match(query string) (DiseaseEntry, bool) {
	candidates := base.matches(query)
	if len(candidates) == 0 {
		return DiseaseEntry{}, false
	}
	return candidates[base.pick(len(candidates))], true
}

func (base *KnowledgeBase) matches(query string) []DiseaseEntry {
	lowered := strings.ToLower(query)
	candidates := make([]DiseaseEntry, 0)
	for _, entry := range base.entries {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lowered, keyword) {
				candidates = append(candidates, entry)
			}
		}
	}
	return candidates
}
