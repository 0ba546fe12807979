// Package cache stores API responses on disk so repeated lookups do
// not spend rate-limit budget.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Entry is a cached API response: the body plus the response headers
// needed to reconstruct pagination info.
type Entry struct {
	URL     string            `json:"url"`
	Body    []byte            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Path generates the cache file path for a URL.
// Format: {cacheDir}/{url-hash}.json
func Path(cacheDir, url string) string {
	if cacheDir == "" {
		return ""
	}
	return filepath.Join(cacheDir, hashURL(url)+".json")
}

// Get returns the cached entry for a URL when one exists and is newer
// than ttl. A ttl of zero disables expiry.
func Get(cacheDir, url string, ttl time.Duration) (*Entry, bool) {
	if cacheDir == "" {
		return nil, false
	}

	path := Path(cacheDir, url)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	if ttl > 0 && time.Since(info.ModTime()) > ttl {
		log.Debugf("cache entry expired for %s (age %s)", url, time.Since(info.ModTime()).Round(time.Second))
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("failed to read cache entry %s: %v", path, err)
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Warnf("discarding corrupt cache entry %s: %v", path, err)
		_ = os.Remove(path)
		return nil, false
	}

	log.Debugf("cache hit for %s", url)
	return &entry, true
}

// Put writes an entry to the cache. The write is atomic: a temp file
// is renamed into place so readers never observe a partial entry.
func Put(cacheDir, url string, entry Entry) error {
	if cacheDir == "" {
		return nil // caching disabled
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	entry.URL = url
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	path := Path(cacheDir, url)
	tmp, err := os.CreateTemp(cacheDir, ".entry-*")
	if err != nil {
		return fmt.Errorf("failed to create cache temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close cache temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to store cache entry: %w", err)
	}

	log.Debugf("cached response for %s", url)
	return nil
}

// Clear removes all cache entries.
func Clear(cacheDir string) error {
	if cacheDir == "" {
		return nil
	}

	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(cacheDir, e.Name())); err != nil {
			return fmt.Errorf("failed to remove cache entry %s: %w", e.Name(), err)
		}
	}

	return nil
}

// hashURL creates a short hash of a URL for file naming.
func hashURL(url string) string {
	normalized := strings.TrimPrefix(url, "https://")
	normalized = strings.TrimPrefix(normalized, "http://")
	normalized = strings.TrimSuffix(normalized, "/")

	hash := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", hash[:8])
}
