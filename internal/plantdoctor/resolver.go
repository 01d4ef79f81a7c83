package plantdoctor

import (
	"context"
	"math/rand/v2"
	"strings"
)

// Resolver turns one free-text message into one reply. It keeps no
// conversation state; each stage is tried in order and the first hit wins.
type Resolver struct {
	knowledge  *KnowledgeBase
	translator Translator
	keys       []string
	pick       func(n int) int
}

func NewResolver(knowledge *KnowledgeBase, translator Translator) *Resolver {
	return &Resolver{
		knowledge:  knowledge,
		translator: translator,
		keys:       cannedKeys(),
		pick:       rand.IntN,
	}
}

func (resolver *Resolver) Resolve(ctx context.Context, input string, language string) string {
	if resolver.knowledge != nil {
		if entry, found := resolver.knowledge.Match(input); found {
			return localize(ctx, resolver.translator, entry.Describe(), language)
		}
	}

	return localize(ctx, resolver.translator, resolver.cannedResponse(input), language)
}

func (resolver *Resolver) cannedResponse(input string) string {
	lowered := strings.ToLower(input)

	for _, rule := range intentRules {
		if rule.matches(lowered) {
			reply, _ := cannedReply(rule.answer)
			return reply
		}
	}

	if best := closeMatches(lowered, resolver.keys, 1, FuzzyCutoff); len(best) == 1 {
		reply, _ := cannedReply(best[0])
		return reply
	}

	return unsureReplies[resolver.pick(len(unsureReplies))]
}

// UnsureReplies lists the fallback replies used when nothing else matches.
func UnsureReplies() []string {
	result := make([]string, len(unsureReplies))
	copy(result, unsureReplies)
	return result
}
