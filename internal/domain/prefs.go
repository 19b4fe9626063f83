package domain

// Language is the UI language code. Four codes, Spanish default.
type Language string

const (
	LangES Language = "es"
	LangEN Language = "en"
	LangPT Language = "pt"
	LangZH Language = "zh"

	DefaultLanguage = LangES
)

func Languages() []Language { return []Language{LangES, LangEN, LangPT, LangZH} }

func ValidLanguage(l string) bool {
	switch Language(l) {
	case LangES, LangEN, LangPT, LangZH:
		return true
	}
	return false
}

// TestimonialLanguage maps the UI language to the language testimonials are
// fetched in. Chinese has no testimonial translations; it falls back to es.
func TestimonialLanguage(l Language) Language {
	if l == LangZH {
		return LangES
	}
	return l
}

// Theme is the visual theme. Two values, emerald default.
type Theme string

const (
	ThemeEmerald Theme = "emerald"
	ThemeForest  Theme = "forest"

	DefaultTheme = ThemeEmerald
)

func ValidTheme(t string) bool {
	return Theme(t) == ThemeEmerald || Theme(t) == ThemeForest
}

// ToggleTheme flips between the two themes.
func ToggleTheme(t Theme) Theme {
	if t == ThemeEmerald {
		return ThemeForest
	}
	return ThemeEmerald
}
