package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "union" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"invalid_type":          "invalid type",
		"required":              "required field {field} missing",
		"invalid_format":        "malformed date value",
		"discriminator_missing": "variant declares no discriminators",
		"discriminator_unknown": "value matches no variant of {union}",
		"construction_failed":   "could not construct value",
		"parse_error":           "parse error",
	},
	"ja": {
		"invalid_type":          "型が不正です",
		"required":              "必須フィールド {field} がありません",
		"invalid_format":        "日付の形式が不正です",
		"discriminator_missing": "判別キーが宣言されていません",
		"discriminator_unknown": "{union} のいずれのバリアントにも一致しません",
		"construction_failed":   "値を構築できません",
		"parse_error":           "解析エラー",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
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
