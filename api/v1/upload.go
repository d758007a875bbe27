package v1

import (
	"io"
	"net/http"

	"github.com/flipbooklib/flipbook/config"
	"github.com/flipbooklib/flipbook/http/response"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type uploadResult struct {
	// URLs holds one public URL per uploaded file, in submission order.
	URLs []string `json:"urls"`
}

// uploadImages stores one or more image files under the covers or pages
// prefix. A batch is uploaded sequentially and aborts on the first failure:
// partial-failure handling stays trivial at the cost of latency.
func (h *Handler) uploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Opts.MaxUploadSize << 20); err != nil {
		log.Error("Max upload size exceeded", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	prefix := storage.PrefixPages
	if r.FormValue("kind") == "cover" {
		prefix = storage.PrefixCovers
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		response.BadRequest(w, r, errors.New("missing 'file' field in request"))
		return
	}

	result := uploadResult{URLs: make([]string, 0, len(files))}
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			response.BadRequest(w, r, errors.Wrapf(err, "failed to open upload %s", header.Filename))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			response.BadRequest(w, r, errors.Wrapf(err, "failed to read upload %s", header.Filename))
			return
		}

		url, err := h.objects.Upload(prefix, header.Filename, data)
		if err != nil {
			log.Error("Upload failed",
				zap.String("filename", header.Filename),
				zap.String("prefix", prefix),
				zap.Error(err))
			response.BadRequest(w, r, errors.Wrapf(err, "upload failed for %s", header.Filename))
			return
		}
		result.URLs = append(result.URLs, url)
	}

	log.Info("Uploaded images", zap.String("prefix", prefix), zap.Int("count", len(result.URLs)))
	response.OK(w, r, result)
}
