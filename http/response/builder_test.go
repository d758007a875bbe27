package response // import "github.com/flipbooklib/flipbook/http/response"

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseHasCommonHeaders(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		New(w, r).Write()
	})

	handler.ServeHTTP(w, r)
	resp := w.Result()

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	}

	for header, expected := range headers {
		actual := resp.Header.Get(header)
		if actual != expected {
			t.Fatalf(`Unexpected header value, got %q instead of %q`, actual, expected)
		}
	}
}

func TestAttachmentSetsDisposition(t *testing.T) {
	r, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	Attachment(w, r, "qr-book.png", "image/png", []byte{1, 2, 3})

	resp := w.Result()
	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="qr-book.png"` {
		t.Fatalf("Unexpected disposition: %q", got)
	}
	if got := resp.Header.Get("Content-Type"); got != "image/png" {
		t.Fatalf("Unexpected content type: %q", got)
	}
}
