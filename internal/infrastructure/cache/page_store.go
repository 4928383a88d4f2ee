package cache

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"orgsite-backend/pkg/cache"
)

// Site paths whose page-data documents are cached.
const (
	PathHome          = "/"
	PathRecruitment   = "/recruitment"
	PathAdminSettings = "/admin/settings"
)

// PageStore keeps rendered page-data documents keyed by site path.
// A nil cache turns every call into a miss/no-op.
type PageStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewPageStore(c cache.Cache, ttl time.Duration) *PageStore {
	return &PageStore{cache: c, ttl: ttl}
}

func PageKey(path string) string {
	return "page:" + path
}

func (s *PageStore) Load(ctx context.Context, path string, dest interface{}) bool {
	if s == nil || s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, PageKey(path), dest)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("page cache read failed")
		return false
	}
	return found
}

func (s *PageStore) Store(ctx context.Context, path string, value interface{}) {
	if s == nil || s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, PageKey(path), value, s.ttl); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("page cache write failed")
	}
}

// Revalidate drops the cached documents of the given paths.
func (s *PageStore) Revalidate(ctx context.Context, paths ...string) error {
	if s == nil || s.cache == nil || len(paths) == 0 {
		return nil
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, PageKey(p))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		return errors.Join(errors.New("revalidate pages"), err)
	}
	log.Debug().Strs("paths", paths).Msg("pages revalidated")
	return nil
}
