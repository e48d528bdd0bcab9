package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"partner-trust-platform/internal/core/domain"

	"github.com/rs/zerolog"

	goredis "github.com/redis/go-redis/v9"
)

// DelayQueue implements ports.DelayQueue on a Redis sorted set. The score is
// the ready time as a unix timestamp, so a range query up to now yields
// exactly the due entries.
type DelayQueue struct {
	client *goredis.Client
	key    string
	log    zerolog.Logger
}

// NewDelayQueue creates a new Redis-backed delay queue.
func NewDelayQueue(client *goredis.Client, log zerolog.Logger) *DelayQueue {
	return &DelayQueue{
		client: client,
		key:    "automation:delayed",
		log:    log,
	}
}

// Enqueue persists a delayed action. The entry survives restarts and cannot
// be withdrawn once stored.
func (q *DelayQueue) Enqueue(ctx context.Context, task *domain.ScheduledAction) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal scheduled action: %w", err)
	}

	err = q.client.ZAdd(ctx, q.key, goredis.Z{
		Score:  float64(task.ReadyAt.Unix()),
		Member: data,
	}).Err()
	if err != nil {
		return fmt.Errorf("enqueue scheduled action: %w", err)
	}
	return nil
}

// PollDue pops up to limit due actions. Each member is claimed with ZREM
// before it is returned, so two concurrent pollers never hand out the same
// entry: the poller whose ZREM removes the member owns it.
func (q *DelayQueue) PollDue(ctx context.Context, now time.Time, limit int) ([]domain.ScheduledAction, error) {
	members, err := q.client.ZRangeByScore(ctx, q.key, &goredis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("poll delay queue: %w", err)
	}

	var due []domain.ScheduledAction
	for _, member := range members {
		removed, err := q.client.ZRem(ctx, q.key, member).Result()
		if err != nil {
			return due, fmt.Errorf("claim scheduled action: %w", err)
		}
		if removed == 0 {
			// Another poller claimed it first
			continue
		}

		var task domain.ScheduledAction
		if err := json.Unmarshal([]byte(member), &task); err != nil {
			// Claimed but unreadable; log and move on rather than
			// poisoning the queue
			q.log.Error().Err(err).Str("member", member).Msg("Dropping malformed scheduled action")
			continue
		}
		due = append(due, task)
	}
	return due, nil
}
