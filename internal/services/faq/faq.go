// Package faq resolves user questions against a topic's curated FAQ set.
//
// Matching runs in up to three stages, each coarser than the last:
//  1. fuzzy similarity against the canonical questions,
//  2. keyword patterns over curated answer blocks,
//  3. generic domain words mapped to a summary answer.
//
// A topic decides which stages it carries; a matcher with no rules and no
// fallback words is fuzzy-only.
package faq

import (
	"regexp"
	"strings"

	"github.com/Tasheela99/chat-bot/pkg/textsim"
)

// DefaultCutoff is the minimum similarity a canonical question must reach
// before its answer is accepted. Tolerant of paraphrasing and typos, but a
// genuinely unrelated question stays below it.
const DefaultCutoff = 0.6

// Entry is one canonical question with its curated answers.
// The first answer is the primary one returned to the user.
type Entry struct {
	Question string
	Answers  []string
}

// Primary returns the answer shown for a matched entry.
func (e Entry) Primary() string {
	if len(e.Answers) == 0 {
		return ""
	}
	return e.Answers[0]
}

// Rule pairs a case-insensitive keyword pattern with a fixed answer.
// Patterns are alternation lists such as "apply|application|submit".
type Rule struct {
	Pattern string
	Answer  string
}

// Config assembles a Matcher. Rules and fallback words are optional.
type Config struct {
	Entries        []Entry
	Cutoff         float64 // zero means DefaultCutoff
	Rules          []Rule
	FallbackWords  []string
	FallbackAnswer string
}

// Matcher answers questions from a fixed FAQ set.
type Matcher struct {
	entries        []Entry
	cutoff         float64
	rules          []compiledRule
	fallbackWords  []string
	fallbackAnswer string
}

type compiledRule struct {
	re     *regexp.Regexp
	answer string
}

// New builds a Matcher from cfg. Rule patterns must be valid regular
// expressions; they are fixed at startup so a bad one is a programming error.
func New(cfg Config) *Matcher {
	cutoff := cfg.Cutoff
	if cutoff == 0 {
		cutoff = DefaultCutoff
	}

	rules := make([]compiledRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, compiledRule{
			re:     regexp.MustCompile("(?i)" + r.Pattern),
			answer: r.Answer,
		})
	}

	return &Matcher{
		entries:        cfg.Entries,
		cutoff:         cutoff,
		rules:          rules,
		fallbackWords:  cfg.FallbackWords,
		fallbackAnswer: cfg.FallbackAnswer,
	}
}

// Resolve returns the best curated answer for question. matched=false means
// no stage produced an answer; the caller decides what that implies for the
// topic (hotline referral for instrumented topics).
func (m *Matcher) Resolve(question string) (answer string, matched bool) {
	if a, ok := m.fuzzyMatch(question); ok {
		return a, true
	}
	if a, ok := m.keywordMatch(question); ok {
		return a, true
	}
	if a, ok := m.generalMatch(question); ok {
		return a, true
	}
	return "", false
}

// fuzzyMatch scans every canonical question and keeps the highest score.
// Ties are broken by earliest list position because later entries only win
// with a strictly greater score.
func (m *Matcher) fuzzyMatch(question string) (string, bool) {
	best := -1
	bestScore := 0.0

	for i, e := range m.entries {
		score := textsim.Ratio(question, e.Question)
		if score >= m.cutoff && score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return "", false
	}
	return m.entries[best].Primary(), true
}

func (m *Matcher) keywordMatch(question string) (string, bool) {
	for _, r := range m.rules {
		if r.re.MatchString(question) {
			return r.answer, true
		}
	}
	return "", false
}

func (m *Matcher) generalMatch(question string) (string, bool) {
	if m.fallbackAnswer == "" {
		return "", false
	}
	lower := strings.ToLower(question)
	for _, w := range m.fallbackWords {
		if strings.Contains(lower, w) {
			return m.fallbackAnswer, true
		}
	}
	return "", false
}
