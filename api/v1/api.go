package v1

import (
	"net/http"
	"sync"

	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/storage"
	"github.com/flipbooklib/flipbook/worker"
	"github.com/gorilla/mux"
)

type Handler struct {
	catalog  *catalog.Client
	objects  storage.ObjectStore
	viewPool worker.WorkPool
	// sessions holds live flip sessions, keyed by token. They die with the
	// process; nothing is persisted.
	sessions sync.Map // map[string]*viewerSession
	// publicURL is the base for shareable viewer links.
	publicURL string
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(client *catalog.Client, objects storage.ObjectStore, viewPool worker.WorkPool, publicURL string) *Handler {
	return &Handler{
		catalog:   client,
		objects:   objects,
		viewPool:  viewPool,
		publicURL: publicURL,
	}
}

// Server registers the API routes.
func Server(router *mux.Router, handler *Handler) {
	sr := router.PathPrefix("/api/v1").Subrouter()
	sr.Use(NewAuthInterceptor().AuthenticationInterceptor)
	sr.Methods(http.MethodOptions)

	// Public catalog surface.
	sr.HandleFunc("/ebooks", handler.listEbooks).Methods(http.MethodGet)
	sr.HandleFunc("/ebooks/{id}", handler.getEbook).Methods(http.MethodGet)
	sr.HandleFunc("/ebooks/{id}/view", handler.recordView).Methods(http.MethodPost)
	sr.HandleFunc("/ebooks/{id}/qr", handler.shareQR).Methods(http.MethodGet)
	sr.HandleFunc("/ebooks/{id}/epub", handler.exportEpub).Methods(http.MethodGet)

	// Viewer sessions.
	sr.HandleFunc("/viewer/{id}", handler.openViewerSession).Methods(http.MethodPost)
	sr.HandleFunc("/viewer/sessions/{token}/{action}", handler.applyViewerAction).Methods(http.MethodPost)

	// Admin surface. The session check here is UX convenience; the remote
	// store's access rules are the authorization boundary.
	sr.HandleFunc("/admin/ebooks", handler.listAllEbooks).Methods(http.MethodGet)
	sr.HandleFunc("/ebooks", handler.createEbook).Methods(http.MethodPost)
	sr.HandleFunc("/ebooks/{id}", handler.deleteEbook).Methods(http.MethodDelete)
	sr.HandleFunc("/uploads", handler.uploadImages).Methods(http.MethodPost)

	// Sessions against the remote auth service.
	sr.HandleFunc("/auth/signin", handler.signIn).Methods(http.MethodPost)
	sr.HandleFunc("/auth/signout", handler.signOut).Methods(http.MethodPost)
	sr.HandleFunc("/auth/session", handler.sessionInfo).Methods(http.MethodGet)
}
