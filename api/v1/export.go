package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/http/request"
	"github.com/flipbooklib/flipbook/http/response"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/model"
	"github.com/flipbooklib/flipbook/util"
	"github.com/go-shiori/go-epub"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// exportEpub packages a book's page images into an EPUB for offline reading.
// Page images are referenced by their public URLs and fetched while the
// archive is written out.
func (h *Handler) exportEpub(w http.ResponseWriter, r *http.Request) {
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
	if len(book.Pages) == 0 {
		response.BadRequest(w, r, errors.New("ebook has no pages to export"))
		return
	}

	locale := model.ParseLocale(request.QueryStringParam(r, "locale", ""))
	data, err := buildEpub(book, locale)
	if err != nil {
		log.Error("EPUB export failed", zap.String("ebook_id", id), zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	filename := util.FilenameFromTitle(book.LocalizedTitle(locale), ".epub")
	log.Info("EPUB exported",
		zap.String("ebook_id", id),
		zap.Int("pages", len(book.Pages)),
		zap.Int("bytes", len(data)))
	response.Attachment(w, r, filename, "application/epub+zip", data)
}

func buildEpub(book *model.EBook, locale model.Locale) ([]byte, error) {
	e, err := epub.NewEpub(book.LocalizedTitle(locale))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create epub")
	}
	e.SetLang(string(locale))
	if desc := book.LocalizedDescription(locale); desc != "" {
		e.SetDescription(desc)
	}

	var body strings.Builder
	for i, pageURL := range book.Pages {
		internalPath, err := e.AddImage(pageURL, "")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to add page %d", i+1)
		}
		fmt.Fprintf(&body,
			`<div class="page"><img src="%s" alt="Page %d" style="width:100%%;height:auto;"/></div>%s`,
			internalPath, i+1, "\n")
	}
	if _, err := e.AddSection(body.String(), book.LocalizedTitle(locale), "", ""); err != nil {
		return nil, errors.Wrap(err, "failed to add section")
	}

	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write epub")
	}
	return buf.Bytes(), nil
}
