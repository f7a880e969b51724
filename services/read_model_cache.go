package services

import (
	"context"
	"encoding/json"
	"fmt"
	"main/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// readModelTTL bounds staleness of cached dashboards; writes also
// invalidate eagerly.
const readModelTTL = 5 * time.Minute

// ReadModelCache caches computed dashboard read models in Redis. Best
// effort: a miss or an unreachable Redis degrades to recomputation, never
// to an error surfaced to the client.
type ReadModelCache struct {
	client *redis.Client
}

func NewReadModelCache(redisURL string) (*ReadModelCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ReadModelCache{client: client}, nil
}

func dashboardKey(userID string, query model.DashboardQuery) string {
	return fmt.Sprintf("dashboard:%s:%s:%s:%t", userID, query.Month, query.Cadence, query.IncludeWeekly)
}

// GetDashboard returns the cached read model or nil on a miss.
func (rc *ReadModelCache) GetDashboard(ctx context.Context, userID string, query model.DashboardQuery) (*model.MainDashboardReadModel, error) {
	data, err := rc.client.Get(ctx, dashboardKey(userID, query)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rm model.MainDashboardReadModel
	if err := json.Unmarshal(data, &rm); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (rc *ReadModelCache) SetDashboard(ctx context.Context, userID string, query model.DashboardQuery, rm *model.MainDashboardReadModel) error {
	data, err := json.Marshal(rm)
	if err != nil {
		return err
	}
	return rc.client.Set(ctx, dashboardKey(userID, query), data, readModelTTL).Err()
}

// InvalidateUser drops every cached dashboard for a user, called after any
// entry or habit write.
func (rc *ReadModelCache) InvalidateUser(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("dashboard:%s:*", userID)
	iter := rc.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rc.client.Del(ctx, keys...).Err()
}
