package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/http/request"
	"github.com/flipbooklib/flipbook/http/response"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/model"
	"github.com/flipbooklib/flipbook/share"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// listEbooks returns the public catalog, optionally filtered by the same
// substring match the browse view applies.
func (h *Handler) listEbooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.ListPublic(r.Context())
	if err != nil {
		// List failures degrade to an empty catalog, never a crash.
		log.Error("Failed to list public ebooks", zap.Error(err))
		response.OK(w, r, []*model.EBook{})
		return
	}

	if term := request.QueryStringParam(r, "search", ""); term != "" {
		books = catalog.Filter(books, term)
	}
	response.OK(w, r, books)
}

// listAllEbooks returns every record for the admin panel, private included.
func (h *Handler) listAllEbooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.ListAll(r.Context())
	if err != nil {
		log.Error("Failed to list ebooks", zap.Error(err))
		response.OK(w, r, []*model.EBook{})
		return
	}
	response.OK(w, r, books)
}

func (h *Handler) getEbook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")

	book, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(w, r)
			return
		}
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, book)
}

func (h *Handler) createEbook(w http.ResponseWriter, r *http.Request) {
	var up model.EBookUpsert
	if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	up.Normalize()
	if field := up.Validate(); field != "" {
		response.BadRequest(w, r, errors.Errorf("missing required field: %s", field))
		return
	}

	book, err := h.catalog.Insert(r.Context(), &up)
	if err != nil {
		log.Error("Failed to insert ebook", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("EBook created",
		zap.String("ebook_id", book.ID),
		zap.String("title", book.Title),
		zap.Int("pages", len(book.Pages)))
	response.Created(w, r, book)
}

// deleteEbook removes the record. Uploaded objects stay in the bucket; the
// source app leaked them too and cleaning up here would guess at shared
// usage.
func (h *Handler) deleteEbook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		log.Error("Failed to delete ebook", zap.String("ebook_id", id), zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("EBook deleted", zap.String("ebook_id", id))
	response.NoContent(w, r)
}

// recordView enqueues a view-count bump and returns immediately. The caller
// never sees a failure here.
func (h *Handler) recordView(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")
	h.viewPool.Push(model.ViewJob{EBookID: id})
	response.Accepted(w, r)
}

// shareQR renders the shareable-link encoding for a book's viewer URL.
func (h *Handler) shareQR(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")

	book, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.NotFound(w, r)
			return
		}
		response.ServerError(w, r, err)
		return
	}

	viewerURL := fmt.Sprintf("%s/view/%s", h.publicURL, book.ID)
	png, err := share.QRCodePNG(viewerURL)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}

	if request.QueryStringParam(r, "download", "") != "" {
		locale := model.ParseLocale(request.QueryStringParam(r, "locale", ""))
		response.Attachment(w, r, share.DownloadFilename(book.LocalizedTitle(locale)), "image/png", png)
		return
	}
	response.PNG(w, r, png)
}
