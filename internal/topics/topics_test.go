package topics

import "testing"

func TestResolveNeverEmpty(t *testing.T) {
	r := NewRegistry()

	topicsToCheck := append(r.Topics(), "no_such_topic")
	for _, topic := range topicsToCheck {
		for _, lang := range []string{"en", "si", "ta", "fr", ""} {
			c := r.Resolve(topic, lang)
			if c.SystemPrompt == "" {
				t.Errorf("Resolve(%q, %q) returned empty system prompt", topic, lang)
			}
			if c.ContextInfo == "" {
				t.Errorf("Resolve(%q, %q) returned empty context info", topic, lang)
			}
		}
	}
}

func TestResolveLanguageOverlay(t *testing.T) {
	r := NewRegistry()

	en := r.Resolve("presidents_fund", "en")
	si := r.Resolve("presidents_fund", "si")
	if en.SystemPrompt == si.SystemPrompt {
		t.Error("Sinhala overlay should differ from the English bundle")
	}
}

func TestResolveFallsBackToBase(t *testing.T) {
	r := NewRegistry()

	// presidents_office has no Sinhala overlay; the English bundle backs it.
	si := r.Resolve("presidents_office", "si")
	en := r.Resolve("presidents_office", "en")
	if si.SystemPrompt != en.SystemPrompt {
		t.Error("missing language overlay must fall back to the base bundle")
	}
}

func TestResolveUnknownTopicUsesDefault(t *testing.T) {
	r := NewRegistry()

	c := r.Resolve("ministry_of_silly_walks", "en")
	if c.SystemPrompt != defaultContent.SystemPrompt {
		t.Error("unknown topics must resolve to the default bundle")
	}
}

func TestResolveCaseInsensitiveTopic(t *testing.T) {
	r := NewRegistry()

	if r.Resolve("Presidents_Fund", "en").SystemPrompt != r.Resolve("presidents_fund", "en").SystemPrompt {
		t.Error("topic lookup should be case-insensitive")
	}
}

func TestResolverPresence(t *testing.T) {
	r := NewRegistry()

	if r.ResolverFor("presidents_fund") == nil {
		t.Error("presidents_fund carries a curated FAQ matcher")
	}
	if r.ResolverFor("presidents_office") != nil {
		t.Error("presidents_office is an LLM-only topic")
	}
	if r.ResolverFor("no_such_topic") != nil {
		t.Error("unknown topics have no matcher")
	}
}

func TestFAQEntriesWellFormed(t *testing.T) {
	for _, e := range presidentsFundFAQs {
		if e.Question == "" {
			t.Error("every FAQ entry needs a canonical question")
		}
		if len(e.Answers) == 0 || e.Answers[0] == "" {
			t.Errorf("entry %q needs at least one answer", e.Question)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("presidents_fund"); got != "Presidents Fund" {
		t.Errorf("expected 'Presidents Fund', got %q", got)
	}
	if got := DisplayName("presidents_office"); got != "Presidents Office" {
		t.Errorf("expected 'Presidents Office', got %q", got)
	}
}

func TestTopicsListing(t *testing.T) {
	r := NewRegistry()

	names := r.Topics()
	if len(names) != 2 {
		t.Fatalf("expected 2 registered topics, got %d", len(names))
	}
	if names[0] != "presidents_fund" || names[1] != "presidents_office" {
		t.Errorf("unexpected topic listing: %v", names)
	}
}
