package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fitpulse/fitpulse/internal/habit"
	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// snapshotKey is the single fixed key holding the whole serialized
// engine state. No partial writes, no schema versioning.
const snapshotKey = "fitpulse-state-snapshot"

// Store persists the engine snapshot as one JSON record in redis.
type Store struct {
	redisClient *redis.Client
}

func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

// Load reads the snapshot. A missing key or malformed payload both come
// back as (nil, nil) - the engine treats them as a fresh install.
func (s *Store) Load(ctx context.Context) (_ *habit.Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.habit.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := s.redisClient.Get(ctx, snapshotKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	var snapshot habit.Snapshot
	if err := json.Unmarshal([]byte(cmd.Val()), &snapshot); err != nil {
		// corrupted data degrades to defaults rather than crashing
		log.Errorf("habit store: malformed snapshot, falling back to defaults: %s", err)
		return nil, nil
	}

	return &snapshot, nil
}

func (s *Store) Save(ctx context.Context, snapshot *habit.Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.habit.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := s.redisClient.Set(ctx, snapshotKey, snapshotJson, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}

	return nil
}
