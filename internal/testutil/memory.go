package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// MemoryCache is an in-process RecordCache for tests
type MemoryCache struct {
	mu        sync.Mutex
	schedules map[string][]models.ScheduledGame
	stats     map[string][]models.GameStatRecord

	// Err, when set, is returned by every call
	Err error
}

// NewMemoryCache creates an empty cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		schedules: make(map[string][]models.ScheduledGame),
		stats:     make(map[string][]models.GameStatRecord),
	}
}

func scheduleKey(sportKey string, year, week int) string {
	return fmt.Sprintf("%s:%d:%02d", sportKey, year, week)
}

func (c *MemoryCache) ReadWeekSchedule(ctx context.Context, sportKey string, year, week int) ([]models.ScheduledGame, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, false, c.Err
	}
	games, ok := c.schedules[scheduleKey(sportKey, year, week)]
	return games, ok, nil
}

func (c *MemoryCache) WriteWeekSchedule(ctx context.Context, sportKey string, year, week int, games []models.ScheduledGame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.schedules[scheduleKey(sportKey, year, week)] = games
	return nil
}

func (c *MemoryCache) ReadGameStats(ctx context.Context, eventID string) ([]models.GameStatRecord, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, false, c.Err
	}
	records, ok := c.stats[eventID]
	return records, ok, nil
}

func (c *MemoryCache) WriteGameStats(ctx context.Context, eventID string, records []models.GameStatRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.stats[eventID] = records
	return nil
}

// Games returns how many events have cached stats
func (c *MemoryCache) Games() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stats)
}

// MemoryArchive records everything passed to SaveGames
type MemoryArchive struct {
	mu      sync.Mutex
	Records []models.GameStatRecord
}

func (a *MemoryArchive) SaveGames(ctx context.Context, records []models.GameStatRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Records = append(a.Records, records...)
	return nil
}

// StaticSource is a GameSource over a fixed record set
type StaticSource struct {
	Records []models.GameStatRecord
	Err     error
	Calls   int
}

func (s *StaticSource) FetchGames(ctx context.Context, year, week int, teams []string) ([]models.GameStatRecord, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.GameStatRecord
	for _, r := range s.Records {
		if r.Year != year || r.Week != week {
			continue
		}
		if len(teams) > 0 && !contains(teams, r.Team) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
