package langcheck

import "testing"

func TestEnglishWithLatinLetters(t *testing.T) {
	if !MatchesDeclared("How do I apply?", "en") {
		t.Error("Latin text should match declared English")
	}
}

func TestEnglishWithoutLatinLetters(t *testing.T) {
	if MatchesDeclared("ආයුබෝවන්", "en") {
		t.Error("all-Sinhala text must fail the English check")
	}
}

func TestSinhalaScript(t *testing.T) {
	if !MatchesDeclared("ආයුබෝවන්", "si") {
		t.Error("Sinhala text should match declared Sinhala")
	}
	if MatchesDeclared("Hello", "si") {
		t.Error("Latin-only text must fail the Sinhala check")
	}
}

func TestTamilScript(t *testing.T) {
	if !MatchesDeclared("வணக்கம்", "ta") {
		t.Error("Tamil text should match declared Tamil")
	}
	if MatchesDeclared("Hello", "ta") {
		t.Error("Latin-only text must fail the Tamil check")
	}
}

func TestMixedScriptPasses(t *testing.T) {
	// Presence test, not exclusivity: one character of the declared
	// script is enough.
	if !MatchesDeclared("mostly english ආ", "si") {
		t.Error("mixed-script text with one Sinhala character should pass as Sinhala")
	}
	if !MatchesDeclared("ආයුබෝවන් x", "en") {
		t.Error("mixed-script text with one Latin letter should pass as English")
	}
}

func TestUnrecognizedLanguageSkipsCheck(t *testing.T) {
	if !MatchesDeclared("whatever", "fr") {
		t.Error("unrecognized language codes are unverifiable and must pass")
	}
	if !MatchesDeclared("ආයුබෝවන්", "") {
		t.Error("empty language code must pass")
	}
}
