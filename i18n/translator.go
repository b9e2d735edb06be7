package i18n

import (
	"context"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message formats. The English text is the catalog key itself, so English
// output is exactly these strings. Every argument is passed pre-rendered as a
// string so no locale-specific number formatting leaks into messages.
const (
	MsgExpectedString     = "Expected string, got %s"
	MsgPatternMismatch    = `Input string does not match pattern "%s", got "%s"`
	MsgStringTooShort     = `Input string is shorter than minimum length %s, got "%s"`
	MsgStringTooLong      = `Input string is longer than maximum length %s, got "%s"`
	MsgInvalidDate        = "Input string is not a valid date"
	MsgExpectedNumeric    = `Expected string input, got "%s"`
	MsgNaN                = "Expected number, got NaN"
	MsgNotNumeric         = `Expected number, got "%s"`
	MsgNumberTooSmall     = "Number is less than minimum value %s, got %s"
	MsgNumberTooBig       = "Number is greater than maximum value %s, got %s"
	MsgIntegerRange       = "Number is outside the 64-bit integer range, got %s"
	MsgExpectedBoolean    = "Expected boolean, got %s"
	MsgBooleanString      = `Expected boolean, got "%s"`
	MsgLiteralMismatch    = `Input string does not match literal value "%s", got "%s"`
	MsgInvalidEnum        = "Invalid enum value: %s"
	MsgExpectedArrayLike  = "Expected array-like string, got %s"
	MsgExpectedArray      = "Expected array, got %s"
	MsgArrayJSON          = "Failed to parse array: %s"
	MsgArrayTooShort      = "Array is shorter than minimum length %s, got %s"
	MsgArrayTooLong       = "Array is longer than maximum length %s, got %s"
	MsgExpectedObject     = "Expected object, got %s"
	MsgExpectedObjectKey  = "Expected object with key, got %s"
	MsgArrayNotObject     = "Array does not qualify as valid object"
	MsgRegExpNotObject    = "RegExp does not qualify as valid object"
	MsgDateNotObject      = "Date does not qualify as valid object"
	MsgMissingField       = `Missing required field: "%s"`
	MsgUnknownFields      = `Unknown disallowed fields: "%s"`
	MsgRecordUndefined    = "Record cannot be undefined"
	MsgExpectedRecord     = "Expected record, got %s"
	MsgRecordArray        = "Record cannot be an array"
	MsgRecordRegExp       = "Record cannot be a regular expression."
	MsgRecordDate         = "Record cannot be a date object."
	MsgRecordError        = "Record cannot be an error object."
	MsgRecordKey          = "Failed to decode record key '%s'"
	MsgRecordValue        = "Failed to decode record value for key '%s'"
	MsgUnionNoMatch       = `Failed to parse union, got: "%s"`
	MsgRefineDefault      = "Failed to parse input"
	MsgMaxDepth           = "Maximum nesting depth %s exceeded"
	MsgMaxBytes           = "Input exceeds maximum size of %s bytes"
	MsgBindFailed         = "Failed to bind object: %s"
	MsgMalformedDocument  = "Failed to parse document: %s"
)

var ja = map[string]string{
	MsgExpectedString:    "文字列が必要です（入力の型: %s）",
	MsgPatternMismatch:   `文字列がパターン "%s" に一致しません: "%s"`,
	MsgStringTooShort:    `文字列が最小長 %s より短いです: "%s"`,
	MsgStringTooLong:     `文字列が最大長 %s より長いです: "%s"`,
	MsgInvalidDate:       "日付として解釈できません",
	MsgExpectedNumeric:   `数値または数値文字列が必要です（入力の型: "%s"）`,
	MsgNaN:               "数値が必要です（NaN）",
	MsgNotNumeric:        `数値が必要です: "%s"`,
	MsgNumberTooSmall:    "数値が最小値 %s より小さいです: %s",
	MsgNumberTooBig:      "数値が最大値 %s より大きいです: %s",
	MsgIntegerRange:      "数値が64ビット整数の範囲外です: %s",
	MsgExpectedBoolean:   "真偽値が必要です: %s",
	MsgBooleanString:     `真偽値が必要です: "%s"`,
	MsgLiteralMismatch:   `リテラル値 "%s" と一致しません: "%s"`,
	MsgInvalidEnum:       "列挙値が不正です: %s",
	MsgExpectedArrayLike: "配列または配列の JSON 文字列が必要です（入力の型: %s）",
	MsgExpectedArray:     "配列が必要です（入力の型: %s）",
	MsgArrayJSON:         "配列の解析に失敗しました: %s",
	MsgArrayTooShort:     "配列が最小長 %s より短いです: %s",
	MsgArrayTooLong:      "配列が最大長 %s より長いです: %s",
	MsgExpectedObject:    "オブジェクトが必要です（入力の型: %s）",
	MsgExpectedObjectKey: "キーを持つオブジェクトが必要です（入力の型: %s）",
	MsgArrayNotObject:    "配列はオブジェクトとして扱えません",
	MsgRegExpNotObject:   "正規表現はオブジェクトとして扱えません",
	MsgDateNotObject:     "日付はオブジェクトとして扱えません",
	MsgMissingField:      `必須プロパティが不足しています: "%s"`,
	MsgUnknownFields:     `未知のキーです: "%s"`,
	MsgRecordUndefined:   "レコードが未定義です",
	MsgExpectedRecord:    "レコードが必要です（入力の型: %s）",
	MsgRecordArray:       "レコードに配列は使えません",
	MsgRecordRegExp:      "レコードに正規表現は使えません。",
	MsgRecordDate:        "レコードに日付は使えません。",
	MsgRecordError:       "レコードにエラー値は使えません。",
	MsgRecordKey:         "レコードのキー '%s' を解析できません",
	MsgRecordValue:       "レコードのキー '%s' の値を解析できません",
	MsgUnionNoMatch:      `どの候補にも一致しません（入力の型: "%s"）`,
	MsgRefineDefault:     "入力の解析に失敗しました",
	MsgMaxDepth:          "ネストの深さが上限 %s を超えました",
	MsgMaxBytes:          "入力が上限 %s バイトを超えました",
	MsgBindFailed:        "オブジェクトの割り当てに失敗しました: %s",
	MsgMalformedDocument: "ドキュメントの解析に失敗しました: %s",
}

var (
	printers        = map[language.Tag]*message.Printer{}
	currentLanguage atomic.Value // language.Tag
)

func init() {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range ja {
		if err := b.SetString(language.Japanese, key, msg); err != nil {
			panic(err)
		}
	}
	for _, tag := range []language.Tag{language.English, language.Japanese} {
		printers[tag] = message.NewPrinter(tag, message.Catalog(b))
	}
	currentLanguage.Store(language.English)
}

// parseLanguage maps a language name onto a supported tag ("en"/"ja").
func parseLanguage(lang string) language.Tag {
	if tag, err := language.Parse(lang); err == nil {
		if base, _ := tag.Base(); base.String() == "ja" {
			return language.Japanese
		}
	}
	return language.English
}

// SetLanguage switches the default message language ("en"/"ja").
func SetLanguage(lang string) { currentLanguage.Store(parseLanguage(lang)) }

type ctxKey struct{}

// WithLanguage overrides the message language for decodes under ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, parseLanguage(lang))
}

// Language returns the message language in effect for ctx.
func Language(ctx context.Context) language.Tag {
	if ctx != nil {
		if tag, ok := ctx.Value(ctxKey{}).(language.Tag); ok {
			return tag
		}
	}
	return currentLanguage.Load().(language.Tag)
}

// Text translates a message that takes no arguments. Strings outside the
// catalog are returned verbatim.
func Text(ctx context.Context, msg string) string {
	if _, ok := ja[msg]; !ok {
		return msg
	}
	return T(ctx, msg)
}

// T formats one of the Msg* formats in the language in effect for ctx.
func T(ctx context.Context, format string, args ...string) string {
	p := printers[Language(ctx)]
	if len(args) == 0 {
		return p.Sprintf(format)
	}
	anyArgs := make([]any, len(args))
	for i, a := range args {
		anyArgs[i] = a
	}
	return p.Sprintf(format, anyArgs...)
}
