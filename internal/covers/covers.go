// Package covers caches remote book cover images on local disk so the TUI
// can show covers without a network round-trip.
package covers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cache stores downloaded covers in a single directory, one file per book.
type Cache struct {
	dir    string
	client *http.Client
}

func NewCache(dir string) *Cache {
	return &Cache{
		dir:    dir,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch downloads the image at url and stores it as the cover for bookID,
// replacing any previous cover for that book. It returns the local path.
func (c *Cache) Fetch(url, bookID string) (string, error) {
	if err := os.MkdirAll(c.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create covers directory: %w", err)
	}

	resp, err := c.client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to download cover: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cover download returned status %d", resp.StatusCode)
	}

	path := filepath.Join(c.dir, bookID+extensionFor(resp.Header.Get("Content-Type"), url))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create cover file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write cover file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Evict removes a cached cover. Paths outside the cache directory are
// refused; a cover that is already gone is not an error.
func (c *Cache) Evict(path string) error {
	dir, err := filepath.Abs(c.dir)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if filepath.Dir(abs) != dir {
		return fmt.Errorf("refusing to remove file outside covers directory: %s", path)
	}

	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// extensionFor picks a file extension from the response content type, falling
// back to the URL's own extension, then to .jpg.
func extensionFor(contentType, url string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return ".png"
	case strings.Contains(contentType, "webp"):
		return ".webp"
	case strings.Contains(contentType, "gif"):
		return ".gif"
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return ".jpg"
	}
	if ext := strings.ToLower(filepath.Ext(url)); ext == ".png" || ext == ".jpg" || ext == ".jpeg" || ext == ".webp" || ext == ".gif" {
		return ext
	}
	return ".jpg"
}
