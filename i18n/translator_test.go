package i18n

import (
	"errors"
	"testing"

	"github.com/reoring/lensmap"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	en := ForLanguage("fr")
	if msg := en.Message(lensmap.CodeInvalidType, nil); msg != "invalid type" {
		t.Fatalf("expected english fallback, got %q", msg)
	}

	ja := ForLanguage("ja")
	if msg := ja.Message(lensmap.CodeInvalidType, nil); msg == "invalid type" || msg == "" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	if msg := en.Message("custom_code", nil); msg != "custom_code" {
		t.Fatalf("unknown codes should pass through, got %q", msg)
	}
}

func TestDescribe(t *testing.T) {
	err := lensmap.Issues{
		{Code: lensmap.CodeInvalidType, Message: "expected string, got int", Hint: "string"},
		{Code: lensmap.CodeDuplicateKey, Message: `field "x" registered twice`},
	}
	got := Describe(err, nil)
	want := "invalid type (string): expected string, got int\nduplicate key: field \"x\" registered twice"
	if got != want {
		t.Fatalf("unexpected description:\n%s", got)
	}

	if got := Describe(errors.New("plain"), ForLanguage("ja")); got != "plain" {
		t.Fatalf("plain errors should render as-is, got %q", got)
	}
	if got := Describe(nil, nil); got != "" {
		t.Fatalf("nil error should render empty, got %q", got)
	}
}
