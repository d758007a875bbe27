// Package i18n carries the active display locale through a request. The app
// supports exactly two locales and every translatable string is written
// inline as an (english, lao) pair, so there is no message catalog.
package i18n

import (
	"context"

	"github.com/flipbooklib/flipbook/model"
)

type contextKey int

const localizerContextKey contextKey = iota

// Localizer resolves an (english, lao) string pair against the active locale.
type Localizer struct {
	locale model.Locale
}

// NewLocalizer builds a provider for the given locale. The locale is
// validated here, at construction, so T never has to guess.
func NewLocalizer(locale model.Locale) *Localizer {
	if !locale.Valid() {
		locale = model.LocaleEn
	}
	return &Localizer{locale: locale}
}

func (l *Localizer) Locale() model.Locale {
	return l.locale
}

// T returns lo when the active locale is the secondary one, otherwise en.
func (l *Localizer) T(en, lo string) string {
	if l.locale == model.LocaleLo {
		return lo
	}
	return en
}

// NewContext installs the provider into ctx.
func NewContext(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, localizerContextKey, l)
}

// FromContext returns the installed provider. Calling it outside a request
// that went through the locale middleware is a programming error and panics.
func FromContext(ctx context.Context) *Localizer {
	l, ok := ctx.Value(localizerContextKey).(*Localizer)
	if !ok {
		panic("i18n: no Localizer in context; locale middleware not installed")
	}
	return l
}
