package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
)

// SuggestionCacheRepository caches aggregated suggestion lists in Redis,
// keyed by the normalized search query.
type SuggestionCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSuggestionCacheRepository creates a cache repository with the given TTL.
func NewSuggestionCacheRepository(client *redis.Client, expiration time.Duration) *SuggestionCacheRepository {
	return &SuggestionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func suggestionKey(query string) string {
	return "tmdb_suggestions:" + strings.ToLower(strings.TrimSpace(query))
}

// GetByQuery fetches a cached suggestion list for the query.
func (r *SuggestionCacheRepository) GetByQuery(ctx context.Context, query string) ([]models.Suggestion, error) {
	key := suggestionKey(query)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("suggestion cache get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("suggestions not found in cache for %q", query)
		}
		return nil, err
	}

	var suggestions []models.Suggestion
	if err := json.Unmarshal([]byte(val), &suggestions); err != nil {
		logger.Log.Infow("suggestion cache decode",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("suggestion cache hit",
		"key", key,
		"count", len(suggestions),
	)

	return suggestions, nil
}

// SetByQuery caches a suggestion list for the query with expiration.
func (r *SuggestionCacheRepository) SetByQuery(ctx context.Context, query string, suggestions []models.Suggestion) error {
	key := suggestionKey(query)

	data, err := json.Marshal(suggestions)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("suggestion cache set",
		"key", key,
		"count", len(suggestions),
		"error", err,
	)

	return err
}
