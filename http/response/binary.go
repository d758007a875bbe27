package response

import (
	"fmt"
	"net/http"
)

// PNG writes an inline PNG body.
func PNG(w http.ResponseWriter, r *http.Request, body []byte) {
	builder := New(w, r)
	builder.WithHeader("Content-Type", "image/png")
	builder.WithBody(body)
	builder.Write()
}

// Attachment writes a binary body as a download with the given filename.
func Attachment(w http.ResponseWriter, r *http.Request, filename, contentType string, body []byte) {
	builder := New(w, r)
	builder.WithHeader("Content-Type", contentType)
	builder.WithHeader("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	builder.WithBody(body)
	builder.Write()
}
