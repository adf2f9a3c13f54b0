package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stage(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4"), 0o600))
	return p
}

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/public/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), stage(t, "abc.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/public/images/abc.pdf", url)
	assert.FileExists(t, filepath.Join(dir, "images", "abc.pdf"))

	require.NoError(t, store.Delete(context.Background(), url))
	assert.NoFileExists(t, filepath.Join(dir, "images", "abc.pdf"))

	// foreign and already removed URLs are ignored
	assert.NoError(t, store.Delete(context.Background(), "https://elsewhere/images/abc.pdf"))
	assert.NoError(t, store.Delete(context.Background(), url))
}

type fakeStore struct {
	mu      sync.Mutex
	fail    string
	deleted []string
}

func (f *fakeStore) Put(_ context.Context, localPath string) (string, error) {
	if filepath.Base(localPath) == f.fail {
		return "", errors.New("network error")
	}
	return "mem://" + filepath.Base(localPath), nil
}

func (f *fakeStore) Delete(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return nil
}

func TestUploadAll(t *testing.T) {
	store := &fakeStore{}
	urls, err := UploadAll(context.Background(), store, map[string]string{
		"dniImage":     stage(t, "dni.pdf"),
		"licenseImage": stage(t, "license.pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"dniImage":     "mem://dni.pdf",
		"licenseImage": "mem://license.pdf",
	}, urls)
	assert.Empty(t, store.deleted)
}

func TestUploadAllRemovesPartialUploads(t *testing.T) {
	store := &fakeStore{fail: "license.pdf"}
	_, err := UploadAll(context.Background(), store, map[string]string{
		"dniImage":     stage(t, "dni.pdf"),
		"licenseImage": stage(t, "license.pdf"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "licenseImage")
	for _, url := range store.deleted {
		assert.NotEqual(t, "mem://license.pdf", url)
	}
}

func TestDeleteAllSkipsEmpty(t *testing.T) {
	store := &fakeStore{}
	require.NoError(t, DeleteAll(context.Background(), store, []string{"", "mem://a.pdf", "mem://b.pdf"}))
	assert.ElementsMatch(t, []string{"mem://a.pdf", "mem://b.pdf"}, store.deleted)
}

type fakeS3 struct {
	put    []string
	delete []string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = append(f.put, *in.Bucket+"/"+*in.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.delete = append(f.delete, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	client := &fakeS3{}
	store := newS3Store(client, "docs", "https://cdn.example.com/")

	url, err := store.Put(context.Background(), stage(t, "soat.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/soat.pdf", url)
	assert.Equal(t, []string{"docs/images/soat.pdf"}, client.put)

	require.NoError(t, store.Delete(context.Background(), url))
	require.NoError(t, store.Delete(context.Background(), "https://res.cloudinary.com/x/old.pdf"))
	assert.Equal(t, []string{"docs/images/soat.pdf"}, client.delete)
}

func TestKeyFromURLRejectsTraversal(t *testing.T) {
	_, ok := keyFromURL("https://cdn", "https://cdn/../etc/passwd")
	assert.False(t, ok)
	key, ok := keyFromURL("https://cdn", "https://cdn/images/a.pdf")
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(key, "images/"))
}
