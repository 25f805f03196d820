package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/redis/go-redis/v9"
)

// SnapshotRepository keeps the posts behind the last calendar render of each
// session, so detail views read what the viewer clicked on.
type SnapshotRepository interface {
	Save(ctx context.Context, sessionID, brandID string, posts []*models.Post) error
	Get(ctx context.Context, sessionID, brandID, postID string) (*models.Post, error)
	Drop(ctx context.Context, sessionID string) error
}

const brandField = "__brand"

type snapshotRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotRepository(rdb *redis.Client, ttl time.Duration) SnapshotRepository {
	return &snapshotRepository{rdb: rdb, ttl: ttl}
}

func snapshotKey(sessionID string) string {
	return fmt.Sprintf("calendar:snapshot:%s", sessionID)
}

func (r *snapshotRepository) Save(ctx context.Context, sessionID, brandID string, posts []*models.Post) error {
	key := snapshotKey(sessionID)

	fields := make([]interface{}, 0, 2*len(posts)+2)
	fields = append(fields, brandField, brandID)
	for _, p := range posts {
		if p == nil || p.ID == "" {
			continue
		}
		// artwork is never shown from the snapshot
		stored := *p
		stored.ImageBase64 = ""
		payload, err := json.Marshal(&stored)
		if err != nil {
			return fmt.Errorf("encode post %s: %w", p.ID, err)
		}
		fields = append(fields, p.ID, payload)
	}

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields...)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	return err
}

// Get returns nil without error when the post is not part of the snapshot for
// brandID.
func (r *snapshotRepository) Get(ctx context.Context, sessionID, brandID, postID string) (*models.Post, error) {
	values, err := r.rdb.HMGet(ctx, snapshotKey(sessionID), brandField, postID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	cachedBrand, _ := values[0].(string)
	raw, _ := values[1].(string)
	if cachedBrand != brandID || raw == "" {
		return nil, nil
	}

	var post models.Post
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		return nil, fmt.Errorf("decode post %s: %w", postID, err)
	}
	return &post, nil
}

func (r *snapshotRepository) Drop(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, snapshotKey(sessionID)).Err()
}
