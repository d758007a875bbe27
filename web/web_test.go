package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flipbooklib/flipbook/catalog"
	"github.com/flipbooklib/flipbook/config"
	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.GetDefaultOptions()
	config.Opts.LogFile = filepath.Join(os.TempDir(), "flipbook-web-test.log")
	log.Logger = log.NewLogger()
}

func newWebFixture(t *testing.T, books []*model.EBook) *httptest.Server {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		result := make([]*model.EBook, 0)
		for _, b := range books {
			if q.Get("is_public") == "eq.true" && !b.IsPublic {
				continue
			}
			if id := q.Get("id"); id != "" && "eq."+b.ID != id {
				continue
			}
			result = append(result, b)
		}
		json.NewEncoder(w).Encode(result)
	}))
	t.Cleanup(backend.Close)

	router := mux.NewRouter()
	Server(router, NewHandler(catalog.NewClient(backend.URL, "test-key")))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// noRedirectClient surfaces redirects instead of following them.
var noRedirectClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func get(t *testing.T, url string, headers map[string]string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := noRedirectClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func sessionToken(t *testing.T, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("remote-secret"))
	require.NoError(t, err)
	return signed
}

func sampleBooks() []*model.EBook {
	return []*model.EBook{
		{ID: "b1", Title: "The River", TitleLo: "ແມ່ນ້ຳ", Description: "About a river",
			DescriptionLo: "ກ່ຽວກັບແມ່ນ້ຳ", Pages: []string{"p1", "p2"}, CoverImage: "c1",
			YouTubeURL: "https://www.youtube.com/embed/abc123", IsPublic: true},
		{ID: "b2", Title: "Secret Notes", Pages: []string{"p1"}, IsPublic: false},
	}
}

func TestBrowseShowsPublicBooks(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	resp, body := get(t, srv.URL+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "The River")
	assert.NotContains(t, body, "Secret Notes")
}

func TestBrowseLocaleSwitch(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	resp, body := get(t, srv.URL+"/?lang=lo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "ແມ່ນ້ຳ")
	assert.Contains(t, body, "ຫ້ອງສະໝຸດ")

	// Without the parameter the page falls back to English: the choice is
	// never persisted.
	resp, body = get(t, srv.URL+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "The River")
	assert.Contains(t, body, "Digital Library")
}

func TestBrowseSearchNoMatch(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	_, body := get(t, srv.URL+"/?search=zzzz", nil)
	assert.Contains(t, body, "No books match")
}

func TestViewerRendersBook(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	resp, body := get(t, srv.URL+"/view/b1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "The River")
	assert.Contains(t, body, "window.__BOOK__")
}

func TestViewerMountsVideoBackground(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	_, body := get(t, srv.URL+"/view/b1", nil)
	assert.Contains(t, body, `id="ambient-video"`)
	assert.Contains(t, body, `data-src="https://www.youtube.com/embed/abc123"`)
}

func TestViewerOffersShareDialog(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	_, body := get(t, srv.URL+"/view/b1", nil)
	assert.Contains(t, body, `id="share-dialog"`)
	assert.Contains(t, body, `id="share-native"`)
	assert.Contains(t, body, `data-copied=`)
	assert.Contains(t, body, `id="share"`)
}

func TestBrowseShareDialogHasConfirmation(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	_, body := get(t, srv.URL+"/", nil)
	assert.Contains(t, body, `id="share-dialog"`)
	assert.Contains(t, body, `id="share-native"`)
	assert.Contains(t, body, `data-copied=`)
}

func TestViewerStoreFailureShowsErrorScreen(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(backend.Close)

	router := mux.NewRouter()
	Server(router, NewHandler(catalog.NewClient(backend.URL, "test-key")))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	resp, body := get(t, srv.URL+"/view/b1", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	// The reader gets a real page with a way home, not a bare status line.
	assert.Contains(t, body, `href="/"`)
	assert.Contains(t, body, "Back to the library")
}

func TestViewerUnknownBookRedirectsHome(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	resp, _ := get(t, srv.URL+"/view/nope", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// Private books behave exactly like missing ones.
	resp, _ = get(t, srv.URL+"/view/b2", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestAdminRequiresSession(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	resp, _ := get(t, srv.URL+"/admin", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	token := sessionToken(t, "admin@books.test")
	resp, body := get(t, srv.URL+"/admin", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "admin@books.test")
	// The admin listing includes private records.
	assert.Contains(t, body, "Secret Notes")
}

func TestAdminFormAcceptsPastedImageURLs(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())
	token := sessionToken(t, "admin@books.test")

	_, body := get(t, srv.URL+"/admin", map[string]string{"Authorization": "Bearer " + token})
	// Cover and pages are each fillable by pasted URL or upload.
	assert.Contains(t, body, `name="cover_url"`)
	assert.Contains(t, body, `name="cover"`)
	assert.Contains(t, body, `name="page_urls"`)
	assert.Contains(t, body, `name="pages"`)
	assert.Contains(t, body, `data-required=`)
}

func TestLoginRedirectsActiveSession(t *testing.T) {
	srv := newWebFixture(t, sampleBooks())

	resp, body := get(t, srv.URL+"/login", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "login-form")

	token := sessionToken(t, "admin@books.test")
	resp, _ = get(t, srv.URL+"/login", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestStaticAssets(t *testing.T) {
	srv := newWebFixture(t, nil)

	resp, _ := get(t, srv.URL+"/assets/app.css", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/assets/viewer.js", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
