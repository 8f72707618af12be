// Package topics is the static content registry: every government-service
// topic the API can answer for, keyed by identifier, with per-language
// content overlays and an optional curated FAQ matcher.
//
// The registry is built once at startup and read-only afterwards. Unknown
// topics resolve to a neutral default bundle instead of failing; a missing
// FAQ matcher is meaningful on its own (the topic delegates fully to the
// language model).
package topics

import (
	"sort"
	"strings"

	"github.com/Tasheela99/chat-bot/internal/services/faq"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Content is one topic's bundle for one language.
type Content struct {
	SystemPrompt string
	ContextInfo  string
	FAQs         []faq.Entry
}

// Topic bundles per-language content with an optional FAQ matcher.
// Content must carry an "en" entry; other languages are overlays.
type Topic struct {
	Content  map[string]Content
	Resolver *faq.Matcher
}

// Registry holds all known topics.
type Registry struct {
	topics   map[string]Topic
	fallback Content
}

// NewRegistry builds the registry of known topics.
func NewRegistry() *Registry {
	return &Registry{
		topics: map[string]Topic{
			"presidents_fund": {
				Content:  presidentsFundContent,
				Resolver: presidentsFundMatcher,
			},
			"presidents_office": {
				Content: presidentsOfficeContent,
			},
		},
		fallback: defaultContent,
	}
}

// Resolve returns the content bundle for topic and language. Resolution
// order: language overlay, then the topic's base (English) bundle, then the
// generic default. It never fails.
func (r *Registry) Resolve(topic, lang string) Content {
	t, ok := r.topics[strings.ToLower(topic)]
	if !ok {
		return r.fallback
	}
	if c, ok := t.Content[lang]; ok {
		return c
	}
	if c, ok := t.Content["en"]; ok {
		return c
	}
	return r.fallback
}

// ResolverFor returns the topic's FAQ matcher, or nil when the topic has
// none and should delegate to the language model.
func (r *Registry) ResolverFor(topic string) *faq.Matcher {
	t, ok := r.topics[strings.ToLower(topic)]
	if !ok {
		return nil
	}
	return t.Resolver
}

// Topics lists the known topic identifiers in stable order.
func (r *Registry) Topics() []string {
	names := make([]string, 0, len(r.topics))
	for name := range r.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var titleCaser = cases.Title(language.English)

// DisplayName renders a topic identifier for user-facing text:
// "presidents_fund" becomes "Presidents Fund".
func DisplayName(topic string) string {
	return titleCaser.String(strings.ReplaceAll(topic, "_", " "))
}
