package battlelogs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/creature-battle/internal/errors"
)

type redisRepo struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed battle log
func NewRedis(client *redis.Client) Repository {
	if client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: client}
}

func entryKey(id string) string {
	return fmt.Sprintf("battlelog:%s", id)
}

func battleKey(battleID string) string {
	return fmt.Sprintf("battle:%s:log", battleID)
}

func (r *redisRepo) Append(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return errors.InvalidArgument("entry cannot be nil")
	}
	if entry.ID == "" || entry.BattleID == "" {
		return errors.InvalidArgument("entry ID and battle ID are required")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to marshal battle log entry")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, entryKey(entry.ID), string(data), 0)
	pipe.RPush(ctx, battleKey(entry.BattleID), entry.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to append entry %s to Redis", entry.ID)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Entry, error) {
	if id == "" {
		return nil, errors.InvalidArgument("entry ID is required")
	}

	data, err := r.client.Get(ctx, entryKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle log entry %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get entry %s from Redis", id)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal entry %s", id)
	}
	return &entry, nil
}

func (r *redisRepo) ListByBattle(ctx context.Context, battleID string) ([]*Entry, error) {
	ids, err := r.client.LRange(ctx, battleKey(battleID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battle %s log from Redis", battleID)
	}

	entries := make([]*Entry, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			entry, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *redisRepo) DeleteBattle(ctx context.Context, battleID string) error {
	ids, err := r.client.LRange(ctx, battleKey(battleID), 0, -1).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to list battle %s log from Redis", battleID)
	}

	pipe := r.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, entryKey(id))
	}
	pipe.Del(ctx, battleKey(battleID))
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete battle %s log from Redis", battleID)
	}
	return nil
}
