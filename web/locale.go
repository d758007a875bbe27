package web

import (
	"net/http"

	"github.com/flipbooklib/flipbook/i18n"
	"github.com/flipbooklib/flipbook/model"
)

// localeMiddleware installs the active Localizer into the request context.
// The language is chosen per request with ?lang= and is deliberately not
// persisted: every fresh visit starts in English, like the source app.
func localeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		localizer := i18n.NewLocalizer(model.ParseLocale(r.URL.Query().Get("lang")))
		ctx := i18n.NewContext(r.Context(), localizer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
