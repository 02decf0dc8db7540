package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL = 5 * time.Minute
	// versions outlive any schedule load; an expired version restarts at 0
	versionTTL = 24 * time.Hour
)

// setIfCurrent writes the schedule only while the date's version still equals
// the one the reader saw on its miss.
var setIfCurrent = redis.NewScript(`
local current = redis.call("GET", KEYS[2]) or "0"
if current ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// ScheduleCache keeps rendered day schedules in Redis.
// A nil client turns every operation into a no-op.
type ScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewScheduleCache(client *redis.Client, cfg config.CacheConfig) *ScheduleCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ScheduleCache{
		client: client,
		ttl:    ttl,
		prefix: cfg.Prefix,
	}
}

func (c *ScheduleCache) Get(ctx context.Context, date time.Time) (*queries.DaySchedule, int64, bool) {
	if c == nil || c.client == nil {
		return nil, 0, false
	}

	vals, err := c.client.MGet(ctx, c.key(date), c.versionKey(date)).Result()
	if err != nil {
		slog.Warn("schedule cache read failed", "date", date.Format(booking.DateLayout), "error", err.Error())
		return nil, 0, false
	}

	var version int64
	if v, ok := vals[1].(string); ok {
		version, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			slog.Warn("schedule cache version is corrupt", "date", date.Format(booking.DateLayout), "error", err.Error())
			return nil, 0, false
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false
	}
	var schedule queries.DaySchedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		slog.Warn("schedule cache entry is corrupt", "date", date.Format(booking.DateLayout), "error", err.Error())
		return nil, version, false
	}
	return &schedule, version, true
}

func (c *ScheduleCache) Set(ctx context.Context, date time.Time, version int64, schedule *queries.DaySchedule) {
	if c == nil || c.client == nil || schedule == nil {
		return
	}

	bs, err := json.Marshal(schedule)
	if err != nil {
		slog.Warn("failed to encode schedule for cache", "error", err.Error())
		return
	}
	keys := []string{c.key(date), c.versionKey(date)}
	stored, err := setIfCurrent.Run(ctx, c.client, keys, version, bs, c.ttl.Milliseconds()).Int()
	if err != nil {
		slog.Warn("schedule cache write failed", "date", date.Format(booking.DateLayout), "error", err.Error())
		return
	}
	if stored == 0 {
		slog.Debug("schedule changed while loading, not cached", "date", date.Format(booking.DateLayout))
	}
}

// Invalidate bumps each date's version before dropping its entry, which also
// turns away a reader that loaded the day before the write committed.
func (c *ScheduleCache) Invalidate(ctx context.Context, dates []time.Time) {
	if c == nil || c.client == nil || len(dates) == 0 {
		return
	}

	keys := c.keys(dates)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, d := range uniqueDates(dates, c.key) {
			vk := c.versionKey(d)
			pipe.Incr(ctx, vk)
			pipe.Expire(ctx, vk, versionTTL)
		}
		pipe.Del(ctx, keys...)
		return nil
	})
	if err != nil {
		slog.Warn("schedule cache invalidation failed", "keys", keys, "error", err.Error())
	}
}

func (c *ScheduleCache) key(date time.Time) string {
	return c.prefix + ":schedule:" + date.Format(booking.DateLayout)
}

func (c *ScheduleCache) versionKey(date time.Time) string {
	return c.prefix + ":schedule-version:" + date.Format(booking.DateLayout)
}

func (c *ScheduleCache) keys(dates []time.Time) []string {
	unique := uniqueDates(dates, c.key)
	keys := make([]string, 0, len(unique))
	for _, d := range unique {
		keys = append(keys, c.key(d))
	}
	return keys
}

// uniqueDates drops dates that map to a key already seen.
func uniqueDates(dates []time.Time, key func(time.Time) string) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		k := key(d)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, d)
	}
	return out
}
