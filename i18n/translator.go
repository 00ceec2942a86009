package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "max"). Placeholders are written as {key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"invalid_type":   "invalid type",
		"required":       "required",
		"too_short":      "must be at least {min} characters",
		"too_long":       "must be at most {max} characters",
		"too_small":      "must be greater than {min}",
		"too_big":        "must be less than {max}",
		"pattern":        "does not match the expected pattern",
		"invalid_enum":   "must be one of {values}",
		"invalid_format": "invalid {format}",
		"custom":         "invalid value",
	},
	"ja": {
		"invalid_type":   "型が不正です",
		"required":       "必須項目です",
		"too_short":      "{min}文字以上で入力してください",
		"too_long":       "{max}文字以内で入力してください",
		"too_small":      "{min}より大きい値を入力してください",
		"too_big":        "{max}より小さい値を入力してください",
		"pattern":        "形式が正しくありません",
		"invalid_enum":   "{values} のいずれかを選択してください",
		"invalid_format": "{format}の形式が正しくありません",
		"custom":         "値が不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	return Expand(msg, data)
}

// Expand replaces {key} placeholders in msg with values from data.
func Expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
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
