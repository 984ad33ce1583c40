package message

// Language is a supported language tag.
type Language string

const (
	LangFrench     Language = "fr"
	LangEnglish    Language = "en"
	LangSpanish    Language = "es"
	LangGerman     Language = "de"
	LangItalian    Language = "it"
	LangPortuguese Language = "pt"
	LangChinese    Language = "zh"
	LangJapanese   Language = "ja"
	LangArabic     Language = "ar"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	for _, opt := range LanguageOptions {
		if opt.Language == l {
			return true
		}
	}
	return false
}

// LanguageOption is static reference data for the language picker.
type LanguageOption struct {
	Language    Language
	Label       string
	NativeLabel string
}

// LanguageOptions lists the supported languages in display order.
var LanguageOptions = []LanguageOption{
	{Language: LangFrench, Label: "French", NativeLabel: "Français"},
	{Language: LangEnglish, Label: "English", NativeLabel: "English"},
	{Language: LangSpanish, Label: "Spanish", NativeLabel: "Español"},
	{Language: LangGerman, Label: "German", NativeLabel: "Deutsch"},
	{Language: LangItalian, Label: "Italian", NativeLabel: "Italiano"},
	{Language: LangPortuguese, Label: "Portuguese", NativeLabel: "Português"},
	{Language: LangChinese, Label: "Chinese", NativeLabel: "中文"},
	{Language: LangJapanese, Label: "Japanese", NativeLabel: "日本語"},
	{Language: LangArabic, Label: "Arabic", NativeLabel: "العربية"},
}
