// Package shortcut recognizes greetings and a small set of generic intents,
// answering them with canned responses so trivial questions never reach the
// FAQ or language-model stages.
package shortcut

import (
	"strings"

	"github.com/Tasheela99/chat-bot/internal/i18n"
	"github.com/Tasheela99/chat-bot/internal/topics"
)

// greetings holds per-language greeting tokens. Matching is containment on
// the lower-cased question, so word order and casing don't matter.
var greetings = map[string][]string{
	"en": {"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "greetings", "welcome"},
	"si": {"හායි", "හලෝ", "ආයුබෝවන්", "සුබ උදෑසනක්", "සුබ දවසක්", "සුබ සන්ධ්‍යාවක්", "නමස්කාර"},
	"ta": {"வணக்கம்", "ஹலோ", "ஹாய்", "காலை வணக்கம்", "மாலை வணக்கம்", "நமஸ்காரம்"},
}

// intents maps trigger phrases to canned answers in declaration order; the
// first trigger contained in the question wins. Triggers are English across
// all languages; only the answers are localized.
var intents = []struct {
	trigger   string
	messageID string
}{
	{"what is", i18n.MsgIntentWhatIs},
	{"about", i18n.MsgIntentAbout},
	{"help", i18n.MsgIntentHelp},
	{"services", i18n.MsgIntentServices},
}

// Matcher answers greetings and generic intents from canned responses.
type Matcher struct {
	localizer *i18n.Localizer
}

func New(localizer *i18n.Localizer) *Matcher {
	return &Matcher{localizer: localizer}
}

// Match returns a canned answer for question, or ok=false when neither tier
// applies. topic is only used to template the welcome message.
func (m *Matcher) Match(question, lang, topic string) (answer string, ok bool) {
	q := strings.ToLower(strings.TrimSpace(question))

	tokens, exists := greetings[lang]
	if !exists {
		tokens = greetings["en"]
	}
	for _, g := range tokens {
		if strings.Contains(q, g) {
			return m.localizer.Get(lang, i18n.MsgWelcome, map[string]interface{}{
				"Topic": topics.DisplayName(topic),
			}), true
		}
	}

	for _, it := range intents {
		if strings.Contains(q, it.trigger) {
			return m.localizer.Get(lang, it.messageID, nil), true
		}
	}

	return "", false
}
