package service

import (
	"context"

	"github.com/rs/zerolog"

	"freight-service/internal/storage"
)

// documents moves staged uploads into the image store and removes stored
// images that were replaced or whose owner was deleted.
type documents struct {
	store storage.Store
	log   zerolog.Logger
}

// upload pushes staged files (field to local path) and returns their URLs.
func (d documents) upload(ctx context.Context, owner string, staged map[string]string) (map[string]string, error) {
	if len(staged) == 0 {
		return map[string]string{}, nil
	}
	urls, err := storage.UploadAll(ctx, d.store, staged)
	if err != nil {
		return nil, failure("upload "+owner+" documents", fields(staged), err)
	}
	return urls, nil
}

// discard deletes stored images. It runs after the row change is committed,
// so a failure is logged and never reported to the caller.
func (d documents) discard(ctx context.Context, urls ...string) {
	if len(urls) == 0 {
		return
	}
	if err := storage.DeleteAll(context.WithoutCancel(ctx), d.store, urls); err != nil {
		d.log.Warn().Err(err).Strs("urls", urls).Msg("failed to delete stored documents")
	}
}

func fields(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func values(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
