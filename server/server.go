package server

import (
	"context"
	"fmt"
	"net/http"
	"os"

	v1 "github.com/flipbooklib/flipbook/api/v1"
	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/config"
	"github.com/flipbooklib/flipbook/storage"
	"github.com/flipbooklib/flipbook/version"
	"github.com/flipbooklib/flipbook/web"
	"github.com/flipbooklib/flipbook/worker"
	"github.com/gorilla/mux"
)

// StartServer starts the HTTP server
func StartServer(ctx context.Context, client *catalog.Client, objects storage.ObjectStore, viewPool worker.WorkPool) (*http.Server, error) {
	addr := config.Opts.Host
	port := config.Opts.Port
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", addr, port),
		Handler: setupHandler(client, objects, viewPool),
	}

	startHTTPServer(server)

	return server, nil
}

func startHTTPServer(server *http.Server) {
	go func() {
		fmt.Println("Starting HTTP server in:", server.Addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			fmt.Println("HTTP server error", err)
			os.Exit(1)
		}
	}()
}

func setupHandler(client *catalog.Client, objects storage.ObjectStore, viewPool worker.WorkPool) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware)
	router.Use(compressionMiddleware)

	apiHandler := v1.NewHandler(client, objects, viewPool, config.Opts.PublicURL)
	v1.Server(router, apiHandler)

	webHandler := web.NewHandler(client)
	web.Server(router, webHandler)

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if err := client.Ping(r.Context()); err != nil {
			http.Error(w, "Record Store Connection Error", http.StatusInternalServerError)
			return
		}

		w.Write([]byte("OK"))
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	return router
}
