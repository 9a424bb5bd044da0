package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "解析エラー"
		case "required":
			return "必須項目です"
		case "invalid_number":
			return "数値ではありません"
		case "invalid_format":
			return "値の形式が正しくありません"
		case "invalid_choice":
			return "選択肢にありません"
		case "invalid_email":
			return "メールアドレスの形式が正しくありません"
		case "too_short":
			return expand("{min}文字以上で入力してください", data)
		case "too_long":
			return expand("{max}文字以内で入力してください", data)
		case "pattern":
			return "形式が正しくありません"
		case "out_of_range":
			return expand("{min}から{max}の範囲で入力してください", data)
		case "check_failed":
			return "値が不正です"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "Could not be processed"
		case "required":
			return "This field is required"
		case "invalid_number":
			return "Not a number"
		case "invalid_format":
			return "Invalid value"
		case "invalid_choice":
			return "Not a valid choice"
		case "invalid_email":
			return "Not a valid email address"
		case "too_short":
			return expand("Must be at least {min} characters", data)
		case "too_long":
			return expand("Must be at most {max} characters", data)
		case "pattern":
			return "Does not match the expected format"
		case "out_of_range":
			return expand("Must be between {min} and {max}", data)
		case "check_failed":
			return "Invalid value"
		}
	}
	return code
}

// expand substitutes {key} placeholders from data; unknown keys are left
// in place.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 {
		return msg
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in dictionary to the given language.
func SetLanguage(lang string) {
	switch lang {
	case "ja":
		currentTranslator = dictTranslator{lang: "ja"}
	default:
		currentTranslator = dictTranslator{lang: "en"}
	}
}

// SetTranslator installs a custom Translator (for example a Catalog).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T resolves code through the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
