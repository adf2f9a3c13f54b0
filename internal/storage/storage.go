package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

const imageFolder = "images"

// Store keeps uploaded documents and hands back the public URL they are served from.
type Store interface {
	Put(ctx context.Context, localPath string) (string, error)
	Delete(ctx context.Context, url string) error
}

// UploadAll pushes staged files (field name to local path) concurrently and
// returns the URL per field. If any upload fails, the ones that succeeded are
// deleted again before the error is returned.
func UploadAll(ctx context.Context, store Store, staged map[string]string) (map[string]string, error) {
	var (
		mu   sync.Mutex
		urls = make(map[string]string, len(staged))
	)

	g, gctx := errgroup.WithContext(ctx)
	for field, local := range staged {
		g.Go(func() error {
			url, err := store.Put(gctx, local)
			if err != nil {
				return fmt.Errorf("upload %s: %w", field, err)
			}
			mu.Lock()
			urls[field] = url
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uploaded := make([]string, 0, len(urls))
		for _, url := range urls {
			uploaded = append(uploaded, url)
		}
		_ = DeleteAll(context.WithoutCancel(ctx), store, uploaded)
		return nil, err
	}
	return urls, nil
}

// DeleteAll removes every non-empty URL concurrently and reports the first failure.
func DeleteAll(ctx context.Context, store Store, urls []string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, url := range urls {
		if url == "" {
			continue
		}
		g.Go(func() error {
			return store.Delete(gctx, url)
		})
	}
	return g.Wait()
}

// objectKey is the key a staged file is stored under.
func objectKey(localPath string) string {
	return path.Join(imageFolder, filepath.Base(localPath))
}

// keyFromURL recovers the object key from a URL this store produced.
func keyFromURL(baseURL, url string) (string, bool) {
	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}

// LocalStore writes documents below dir and serves them under baseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, imageFolder), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStore) Put(_ context.Context, localPath string) (string, error) {
	key := objectKey(localPath)

	src, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return s.baseURL + "/" + key, nil
}

// Delete ignores URLs that do not belong to this store.
func (s *LocalStore) Delete(_ context.Context, url string) error {
	key, ok := keyFromURL(s.baseURL, url)
	if !ok {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
