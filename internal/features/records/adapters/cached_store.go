package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"freight-console/internal/core/cache"
	"freight-console/internal/core/logger"
	"freight-console/internal/features/records/domain"
	"freight-console/internal/features/records/ports"

	"go.uber.org/zap"
)

const recordCacheKeyPrefix = "record:"

// CachedRecordStore decorates a RecordStore with a read-through cache of
// normalized records. Cache failures are logged and bypassed.
type CachedRecordStore struct {
	next   ports.RecordStore
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedRecordStore wraps next with the given cache and TTL.
func NewCachedRecordStore(next ports.RecordStore, c cache.Cache, ttl time.Duration) *CachedRecordStore {
	return &CachedRecordStore{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.Named("records.cache"),
	}
}

// GetRecord serves from cache when possible and populates it on a miss.
func (s *CachedRecordStore) GetRecord(ctx context.Context, id string) (*domain.OrderRecord, error) {
	key := recordCacheKeyPrefix + id

	data, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var record domain.OrderRecord
		if err := json.Unmarshal(data, &record); err == nil {
			return &record, nil
		}
		s.logger.Warn("Discarding undecodable cached record", zap.String("record_id", id))
	case !errors.Is(err, cache.ErrCacheMiss):
		s.logger.Warn("Record cache read failed", zap.String("record_id", id), zap.Error(err))
	}

	record, err := s.next.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, record)
	return record, nil
}

// SaveRecord writes through and refreshes the cached copy.
func (s *CachedRecordStore) SaveRecord(ctx context.Context, record domain.OrderRecord) (*domain.OrderRecord, error) {
	saved, err := s.next.SaveRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	if saved.ID != "" {
		s.store(ctx, recordCacheKeyPrefix+saved.ID, saved)
	}
	return saved, nil
}

// DeleteRecord deletes upstream and evicts the cached copy.
func (s *CachedRecordStore) DeleteRecord(ctx context.Context, id string) error {
	if err := s.next.DeleteRecord(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, recordCacheKeyPrefix+id); err != nil {
		s.logger.Warn("Record cache eviction failed", zap.String("record_id", id), zap.Error(err))
	}
	return nil
}

func (s *CachedRecordStore) store(ctx context.Context, key string, record *domain.OrderRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Warn("Failed to encode record for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("Record cache write failed", zap.String("key", key), zap.Error(err))
	}
}
