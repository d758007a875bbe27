package storage

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/flipbooklib/flipbook/log"
	"github.com/flipbooklib/flipbook/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SupabaseStorage talks to the remote object store's public bucket.
type SupabaseStorage struct {
	baseURL string
	apiKey  string
	bucket  string
	http    *http.Client
}

func NewSupabaseStorage(baseURL, apiKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL: baseURL,
		apiKey:  apiKey,
		bucket:  bucket,
		http:    &http.Client{},
	}
}

// Upload validates that data is an image, stores it under prefix with a
// generated name, and returns the public URL. One call, no retry: a failure
// aborts only the current upload action.
func (s *SupabaseStorage) Upload(prefix, filename string, data []byte) (string, error) {
	if err := ValidateImage(data); err != nil {
		return "", err
	}

	objectName := util.GenObjectName(filename)
	objectPath := fmt.Sprintf("%s/%s", prefix, objectName)

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, objectPath)
	req, err := http.NewRequest(http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if ct := mime.TypeByExtension(filepath.Ext(objectName)); ct != "" {
		req.Header.Set("Content-Type", ct)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "object store unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", errors.Errorf("object store rejected upload: %s", resp.Status)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
	log.Debug("Stored object",
		zap.String("path", objectPath),
		zap.Int("size", len(data)),
		zap.String("url", publicURL))
	return publicURL, nil
}
