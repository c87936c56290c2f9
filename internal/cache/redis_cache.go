package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps finished weeks for a month; they never change
const DefaultTTL = 30 * 24 * time.Hour

// RedisCache stores week schedules and per-game team records in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ contracts.RecordCache = (*RedisCache)(nil)

// NewRedisCache creates a new Redis cache. A ttl of zero keeps keys forever.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Connect parses a redis:// URL and checks the server is reachable
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return client, nil
}

func scheduleKey(sportKey string, year, week int) string {
	return fmt.Sprintf("schedule:%s:%d:%02d", sportKey, year, week)
}

func gameStatsKey(eventID string) string {
	return fmt.Sprintf("game:%s:teamstats", eventID)
}

// WriteWeekSchedule stores the week's games as a list, one JSON game per entry
func (c *RedisCache) WriteWeekSchedule(ctx context.Context, sportKey string, year, week int, games []models.ScheduledGame) error {
	key := scheduleKey(sportKey, year, week)

	values := make([]interface{}, len(games))
	for i, g := range games {
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("marshaling game %s: %w", g.EventID, err)
		}
		values[i] = data
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key) // Clear old list
	if len(values) > 0 {
		pipe.RPush(ctx, key, values...)
		if c.ttl > 0 {
			pipe.Expire(ctx, key, c.ttl)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

// ReadWeekSchedule returns the cached games of a week; ok is false on a miss
func (c *RedisCache) ReadWeekSchedule(ctx context.Context, sportKey string, year, week int) ([]models.ScheduledGame, bool, error) {
	items, err := c.client.LRange(ctx, scheduleKey(sportKey, year, week), 0, -1).Result()
	if err != nil {
		return nil, false, err
	}
	if len(items) == 0 {
		return nil, false, nil
	}

	games := make([]models.ScheduledGame, 0, len(items))
	for _, item := range items {
		var g models.ScheduledGame
		if err := json.Unmarshal([]byte(item), &g); err != nil {
			return nil, false, fmt.Errorf("unmarshaling game: %w", err)
		}
		games = append(games, g)
	}

	return games, true, nil
}

// WriteGameStats stores both team records of a game
func (c *RedisCache) WriteGameStats(ctx context.Context, eventID string, records []models.GameStatRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling team stats: %w", err)
	}

	return c.client.Set(ctx, gameStatsKey(eventID), data, c.ttl).Err()
}

// ReadGameStats returns the cached records of a game; ok is false on a miss
func (c *RedisCache) ReadGameStats(ctx context.Context, eventID string) ([]models.GameStatRecord, bool, error) {
	data, err := c.client.Get(ctx, gameStatsKey(eventID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var records []models.GameStatRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, false, fmt.Errorf("unmarshaling team stats: %w", err)
	}

	return records, true, nil
}
