package services

import (
	"context"
	"encoding/json"
	"time"

	"khidma/dto"

	"github.com/redis/go-redis/v9"
)

// SaveLastFilters remembers the filters a console session last used.
func SaveLastFilters(ctx context.Context, rdb *redis.Client, sessionID string, filters *dto.LineFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+sessionID, b, 30*time.Minute).Err()
}

// GetLastFilters loads the filters a session last used, or nil when none were
// saved.
func GetLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) (*dto.LineFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var filters dto.LineFilters
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

// ClearLastFilters forgets a session's saved filters.
func ClearLastFilters(ctx context.Context, rdb *redis.Client, sessionID string) error {
	return rdb.Del(ctx, "last_filters:"+sessionID).Err()
}

// MergeFilters fills the gaps of a new request from the session's previous
// filters.
func MergeFilters(old *dto.LineFilters, next *dto.LineFilters) *dto.LineFilters {
	next.SearchTerm = orString(next.SearchTerm, old.SearchTerm)
	next.Status = orString(next.Status, old.Status)
	next.Source = orString(next.Source, old.Source)
	next.FromDate = orTimePointer(next.FromDate, old.FromDate)
	next.ToDate = orTimePointer(next.ToDate, old.ToDate)

	// an inverted range must not survive the merge
	if next.FromDate != nil && next.ToDate != nil && next.FromDate.After(*next.ToDate) {
		next.ToDate = nil
	}
	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orTimePointer(newVal, oldVal *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
