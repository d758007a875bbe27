package util

import (
	"crypto/rand"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// HasPrefixes returns true if the string s has any of the given prefixes.
func HasPrefixes(src string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	return false
}

func GenUUID() string {
	return uuid.New().String()
}

var letters = []rune("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// RandomString returns a random string with length n.
func RandomString(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		// crypto/rand rather than math/rand: object names must not collide
		// across processes.
		randNum, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		if _, err := sb.WriteRune(letters[randNum.Uint64()]); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// GenObjectName builds a collision-resistant object name preserving the
// original file extension.
func GenObjectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	return GenUUID() + ext
}

// FilenameFromTitle derives a safe download filename from a display title.
func FilenameFromTitle(title, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if cleaned == "" {
		cleaned = "ebook"
	}
	return cleaned + suffix
}
