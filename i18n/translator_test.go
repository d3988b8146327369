package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"category": "Category of schemes", "value": "x"}
	want := "No way to create an object or morphism in Category of schemes from x"
	if msg := T("no_conversion", data); msg != want {
		t.Fatalf("expected %q, got %q", want, msg)
	}

	SetLanguage("ja")
	if msg := T("no_conversion", data); msg == want {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeEchoes(t *testing.T) {
	if msg := T("not_a_code", nil); msg != "not_a_code" {
		t.Fatalf("got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("parse_error", nil); msg != "X:parse_error" {
		t.Fatalf("got %q", msg)
	}
}

func TestTranslator_ValuesAreNotRescanned(t *testing.T) {
	data := map[string]string{"category": "Category of schemes", "value": "{category}"}
	want := "No way to create an object or morphism in Category of schemes from {category}"
	for i := 0; i < 50; i++ {
		if msg := T("no_conversion", data); msg != want {
			t.Fatalf("iteration %d: expected %q, got %q", i, want, msg)
		}
	}
}
