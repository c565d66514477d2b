package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shadergen-srv/internal/model"
	pkgRedis "shadergen-srv/pkg/redis"
)

// Saved shader cache (TTL 5 min). Keyed by shader ID; stores only rows that
// were already persisted, never generation requests or prompts.
const shaderCacheTTL = 5 * time.Minute

type cachedShader struct {
	ID        string          `json:"id"`
	Prompt    string          `json:"prompt"`
	Program   json.RawMessage `json:"program"`
	CreatedAt time.Time       `json:"created_at"`
}

func shaderCacheKey(id string) string {
	return fmt.Sprintf("shader:%s", id)
}

// GetShader returns the cached shader, or (nil, nil) on a cache miss.
func (r *implCacheRepository) GetShader(ctx context.Context, id string) (*model.ShaderProgram, error) {
	data, err := r.redis.Get(ctx, shaderCacheKey(id))
	if pkgRedis.IsNil(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cached cachedShader
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		r.l.Errorf(ctx, "library.repository.redis.GetShader: Failed to unmarshal cached shader: %v", err)
		return nil, err
	}

	return &model.ShaderProgram{
		ID:        cached.ID,
		Prompt:    cached.Prompt,
		Program:   cached.Program,
		CreatedAt: cached.CreatedAt,
	}, nil
}

// SaveShader writes a persisted shader row to the cache.
func (r *implCacheRepository) SaveShader(ctx context.Context, shader model.ShaderProgram) error {
	data, err := json.Marshal(cachedShader{
		ID:        shader.ID,
		Prompt:    shader.Prompt,
		Program:   shader.Program,
		CreatedAt: shader.CreatedAt,
	})
	if err != nil {
		return err
	}

	if err := r.redis.Set(ctx, shaderCacheKey(shader.ID), data, shaderCacheTTL); err != nil {
		r.l.Errorf(ctx, "library.repository.redis.SaveShader: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
