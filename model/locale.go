package model

// Locale is one of the two supported display languages. It is transient UI
// state, never persisted, and resets to the default on every session.
type Locale string

const (
	LocaleEn Locale = "en"
	LocaleLo Locale = "lo"
)

// ParseLocale maps an arbitrary string to a supported locale, falling back
// to the default.
func ParseLocale(s string) Locale {
	if s == string(LocaleLo) {
		return LocaleLo
	}
	return LocaleEn
}

func (l Locale) Valid() bool {
	return l == LocaleEn || l == LocaleLo
}
