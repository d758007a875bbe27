package catalog // import "github.com/flipbooklib/flipbook/catalog"

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNotFound marks a record that is absent or not public. The source app
// collapsed this with transport failures; keeping them apart lets the viewer
// show the right screen.
var ErrNotFound = errors.New("ebook not found")

const ebooksEndpoint = "/rest/v1/ebooks"

// Client is a thin wrapper over the remote record store. Every operation is
// one direct call: no cache, no retry, no client-side timeout beyond the
// transport's defaults.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

// ListPublic returns the public records, newest first.
func (c *Client) ListPublic(ctx context.Context) ([]*model.EBook, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("is_public", "eq.true")
	q.Set("order", "created_at.desc")
	return c.list(ctx, q)
}

// ListAll returns every record, public and private, newest first. The call
// itself carries no authorization; the store's access rules are the boundary.
func (c *Client) ListAll(ctx context.Context) ([]*model.EBook, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	return c.list(ctx, q)
}

func (c *Client) list(ctx context.Context, q url.Values) ([]*model.EBook, error) {
	body, _, err := c.do(ctx, http.MethodGet, ebooksEndpoint+"?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	list := make([]*model.EBook, 0)
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, errors.Wrap(err, "failed to decode ebook list")
	}
	return list, nil
}

// GetByID returns a single public record, or ErrNotFound when the id does
// not match a public row.
func (c *Client) GetByID(ctx context.Context, id string) (*model.EBook, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+id)
	q.Set("is_public", "eq.true")
	q.Set("limit", "1")

	body, _, err := c.do(ctx, http.MethodGet, ebooksEndpoint+"?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	list := make([]*model.EBook, 0)
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, errors.Wrap(err, "failed to decode ebook")
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return list[0], nil
}

// IncrementView invokes the store's atomic counter bump. Best effort: the
// caller is expected to log and drop any error.
func (c *Client) IncrementView(ctx context.Context, id string) error {
	payload := map[string]string{"ebook_id": id}
	_, _, err := c.do(ctx, http.MethodPost, "/rest/v1/rpc/increment_view_count", payload, nil)
	return err
}

// Insert submits a new record. Blank pages are stripped and the view counter
// is forced to zero before submission; the store assigns id and timestamps.
func (c *Client) Insert(ctx context.Context, up *model.EBookUpsert) (*model.EBook, error) {
	up.Normalize()

	headers := map[string]string{"Prefer": "return=representation"}
	body, _, err := c.do(ctx, http.MethodPost, ebooksEndpoint, up, headers)
	if err != nil {
		return nil, err
	}

	// PostgREST returns the created rows as an array.
	created := make([]*model.EBook, 0, 1)
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, errors.Wrap(err, "failed to decode created ebook")
	}
	if len(created) == 0 {
		return nil, errors.New("store returned no created row")
	}
	return created[0], nil
}

// Delete removes a record by identifier. Deleting an id that no longer
// exists is a no-op, so the call is idempotent.
func (c *Client) Delete(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	_, _, err := c.do(ctx, http.MethodDelete, ebooksEndpoint+"?"+q.Encode(), nil, nil)
	return err
}

// Ping checks connectivity to the record store with the cheapest possible
// read.
func (c *Client) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")
	_, _, err := c.do(ctx, http.MethodGet, ebooksEndpoint+"?"+q.Encode(), nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, headers map[string]string) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to build store request")
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "record store unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrap(err, "failed to read store response")
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, resp.StatusCode, ErrNotFound
	}
	if resp.StatusCode >= http.StatusBadRequest {
		log.Warn("Record store rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, resp.StatusCode, errors.Errorf("record store error: %s: %s", resp.Status, truncate(body, 200))
	}

	return body, resp.StatusCode, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return fmt.Sprintf("%s...", b[:n])
}
