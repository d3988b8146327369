package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional values to embed in the message (for example,
// "category" or "value"); placeholders are written as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"no_conversion":          "No way to create an object or morphism in {category} from {value}",
		"invalid_base":           "base of {category} must be a scheme, got {value}",
		"invalid_ring":           "cannot build ring {value}",
		"unknown_kind":           "unknown input kind {value}",
		"parse_error":            "parse error",
		"dependency_unavailable": "dependency unavailable",
	},
	"ja": {
		"no_conversion":          "{value} から {category} の対象または射を構成できません",
		"invalid_base":           "{category} の基底はスキームでなければなりません: {value}",
		"invalid_ring":           "環 {value} を構成できません",
		"unknown_kind":           "未知の入力種別です: {value}",
		"parse_error":            "解析エラー",
		"dependency_unavailable": "依存先サービスが利用できません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	// one pass, so substituted values are never rescanned
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
