package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"arctic-chronicler/internal/cache"
	"arctic-chronicler/internal/domain"
)

// CachedExpeditionStore keeps whole expeditions as JSON documents in a domain.Cache.
// An expedition lives for ttl from its creation, the same lifetime as its token,
// so Save never extends it.
type CachedExpeditionStore struct {
	cache domain.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewCachedExpeditionStore(c domain.Cache, ttl time.Duration) *CachedExpeditionStore {
	return &CachedExpeditionStore{cache: c, ttl: ttl, now: time.Now}
}

var _ domain.ExpeditionStore = (*CachedExpeditionStore)(nil)

func (s *CachedExpeditionStore) Save(ctx context.Context, exp *domain.Expedition) error {
	if exp == nil || exp.ID == "" {
		return domain.NewInvalidInputError("expedition without id cannot be saved")
	}
	ttl := s.remaining(exp)
	if ttl <= 0 {
		return domain.NewExpeditionNotFoundError(exp.ID)
	}
	raw, err := json.Marshal(exp)
	if err != nil {
		return domain.NewInternalError("failed to encode expedition", err)
	}
	if err := s.cache.Set(ctx, cache.ExpeditionStateKey(exp.ID), string(raw), ttl); err != nil {
		return domain.NewInternalError("failed to store expedition", err)
	}
	return nil
}

// remaining is the lifetime left to exp; expeditions without a creation time get the full ttl.
func (s *CachedExpeditionStore) remaining(exp *domain.Expedition) time.Duration {
	if exp.CreatedAt.IsZero() {
		return s.ttl
	}
	return exp.CreatedAt.Add(s.ttl).Sub(s.now())
}

func (s *CachedExpeditionStore) Load(ctx context.Context, id string) (*domain.Expedition, error) {
	raw, err := s.cache.Get(ctx, cache.ExpeditionStateKey(id))
	if errors.Is(err, domain.ErrCacheMiss) {
		return nil, domain.NewExpeditionNotFoundError(id)
	}
	if err != nil {
		return nil, domain.NewInternalError("failed to read expedition", err)
	}

	var exp domain.Expedition
	if err := json.Unmarshal([]byte(raw), &exp); err != nil {
		return nil, domain.NewInternalError("stored expedition is corrupt", err).WithContext("expedition_id", id)
	}
	return &exp, nil
}
