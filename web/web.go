// Package web serves the reader-facing and admin pages. Pages are rendered
// server-side from embedded templates; the flip widget and the admin form
// talk to the JSON API afterwards.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/flipbooklib/flipbook/api/auth"
	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/http/request"
	"github.com/flipbooklib/flipbook/i18n"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/model"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type Handler struct {
	catalog *catalog.Client
}

func NewHandler(client *catalog.Client) *Handler {
	return &Handler{catalog: client}
}

// Server registers the page routes.
func Server(router *mux.Router, handler *Handler) {
	sr := router.NewRoute().Subrouter()
	sr.Use(localeMiddleware)

	sr.HandleFunc("/", handler.browse).Methods(http.MethodGet)
	sr.HandleFunc("/view/{id}", handler.viewer).Methods(http.MethodGet)
	sr.HandleFunc("/admin", handler.admin).Methods(http.MethodGet)
	sr.HandleFunc("/login", handler.login).Methods(http.MethodGet)

	router.PathPrefix("/assets/").Handler(http.FileServer(http.FS(assetsFS)))
}

type browseData struct {
	L      *i18n.Localizer
	Books  []*model.EBook
	Search string
	// LoadFailed distinguishes "library is empty" from "library unreachable".
	LoadFailed bool
}

func (h *Handler) browse(w http.ResponseWriter, r *http.Request) {
	data := browseData{
		L:      i18n.FromContext(r.Context()),
		Search: r.URL.Query().Get("search"),
	}

	books, err := h.catalog.ListPublic(r.Context())
	if err != nil {
		log.Error("Failed to load library for browse page", zap.Error(err))
		data.LoadFailed = true
	} else {
		if data.Search != "" {
			books = catalog.Filter(books, data.Search)
		}
		data.Books = books
	}

	render(w, "browse.html", &data)
}

type viewerData struct {
	L    *i18n.Localizer
	Book *model.EBook
	// BookJSON feeds the flip widget its page list and ambient media.
	BookJSON template.JS
}

func (h *Handler) viewer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	book, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			// Unknown or private books send the reader back to the library.
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		log.Error("Failed to load ebook for viewer", zap.String("ebook_id", id), zap.Error(err))
		renderErrorScreen(w, r)
		return
	}

	encoded, err := json.Marshal(book)
	if err != nil {
		renderErrorScreen(w, r)
		return
	}

	render(w, "viewer.html", &viewerData{
		L:        i18n.FromContext(r.Context()),
		Book:     book,
		BookJSON: template.JS(encoded),
	})
}

type adminData struct {
	L     *i18n.Localizer
	Email string
	Books []*model.EBook
}

func (h *Handler) admin(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ParseSession(auth.ExtractAccessToken(r))
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	books, err := h.catalog.ListAll(r.Context())
	if err != nil {
		log.Error("Failed to load library for admin page",
			zap.String("client_ip", request.FindClientIP(r)),
			zap.Error(err))
		books = nil
	}

	render(w, "admin.html", &adminData{
		L:     i18n.FromContext(r.Context()),
		Email: claims.Email,
		Books: books,
	})
}

type loginData struct {
	L *i18n.Localizer
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.ParseSession(auth.ExtractAccessToken(r)); err == nil {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	render(w, "login.html", &loginData{L: i18n.FromContext(r.Context())})
}

func render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("Template execution failed", zap.String("template", name), zap.Error(err))
	}
}

type errorData struct {
	L *i18n.Localizer
}

// renderErrorScreen shows the dedicated error page with a way back to the
// library, instead of a bare 500 body.
func renderErrorScreen(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	data := &errorData{L: i18n.FromContext(r.Context())}
	if err := templates.ExecuteTemplate(w, "error.html", data); err != nil {
		log.Error("Template execution failed", zap.String("template", "error.html"), zap.Error(err))
	}
}
