package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flipbooklib/flipbook/config"
	"github.com/flipbooklib/flipbook/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.GetDefaultOptions()
	config.Opts.LogFile = filepath.Join(os.TempDir(), "flipbook-storage-test.log")
	log.Logger = log.NewLogger()
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage(pngBytes(t)))
	assert.Error(t, ValidateImage([]byte("definitely not an image")))
	assert.Error(t, ValidateImage(nil))
}

func TestUploadStoresUnderPrefixAndReturnsPublicURL(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "test-key", "ebook-images")
	data := pngBytes(t)

	url, err := s.Upload(PrefixCovers, "My Cover.PNG", data)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotPath, "/storage/v1/object/ebook-images/covers/"))
	assert.True(t, strings.HasSuffix(gotPath, ".png"), "extension is preserved lowercased: %s", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, data, gotBody)

	wantPrefix := srv.URL + "/storage/v1/object/public/ebook-images/covers/"
	assert.True(t, strings.HasPrefix(url, wantPrefix), "public URL: %s", url)
	// Generated object names never reuse the original filename.
	assert.NotContains(t, url, "My Cover")
}

func TestUploadRejectsNonImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("non-image must not reach the object store")
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "test-key", "ebook-images")
	_, err := s.Upload(PrefixPages, "notes.txt", []byte("plain text"))
	assert.Error(t, err)
}

func TestUploadSurfacesStoreRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket missing", http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "test-key", "ebook-images")
	_, err := s.Upload(PrefixPages, "page.png", pngBytes(t))
	assert.Error(t, err)
}
