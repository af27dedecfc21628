package i18n

import (
	"strings"

	"github.com/reoring/lensmap"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case lensmap.CodeInvalidType:
			msg = "型が不正です"
		case lensmap.CodeInvalidFormat:
			msg = "形式が不正です"
		case lensmap.CodeParseError:
			msg = "解析エラー"
		case lensmap.CodeOverflow:
			msg = "値が範囲外です"
		case lensmap.CodeDuplicateKey:
			msg = "キーが重複しています"
		case lensmap.CodeInvalidField:
			msg = "フィールド定義が不正です"
		}
	default: // "en"
		switch code {
		case lensmap.CodeInvalidType:
			msg = "invalid type"
		case lensmap.CodeInvalidFormat:
			msg = "invalid format"
		case lensmap.CodeParseError:
			msg = "parse error"
		case lensmap.CodeOverflow:
			msg = "value out of range"
		case lensmap.CodeDuplicateKey:
			msg = "duplicate key"
		case lensmap.CodeInvalidField:
			msg = "invalid field definition"
		}
	}
	if msg == "" {
		return code
	}
	if exp := data["expected"]; exp != "" {
		msg += " (" + exp + ")"
	}
	return msg
}

// ForLanguage returns the built-in Translator for lang ("en"/"ja"). Unknown
// languages fall back to English.
func ForLanguage(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// Describe renders err for humans. Issues are rendered one per line through
// tr; any other error falls back to its Error text.
func Describe(err error, tr Translator) string {
	if err == nil {
		return ""
	}
	iss, ok := lensmap.AsIssues(err)
	if !ok || len(iss) == 0 {
		return err.Error()
	}
	if tr == nil {
		tr = ForLanguage("en")
	}
	lines := make([]string, 0, len(iss))
	for _, it := range iss {
		line := tr.Message(it.Code, map[string]string{"expected": it.Hint})
		if it.Message != "" {
			line += ": " + it.Message
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
