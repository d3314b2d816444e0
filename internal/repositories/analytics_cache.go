package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

const (
	popularBooksKey   = "analytics:popular_books"
	popularAuthorsKey = "analytics:popular_authors"
)

// AnalyticsCacheRepository caches popularity rankings in Redis.
type AnalyticsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rankings
}

// NewAnalyticsCacheRepository creates a new repository instance with the given TTL.
func NewAnalyticsCacheRepository(client *redis.Client, expiration time.Duration) *AnalyticsCacheRepository {
	return &AnalyticsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPopularBooks fetches the cached popular books ranking.
func (r *AnalyticsCacheRepository) GetPopularBooks(ctx context.Context) ([]models.PopularBook, error) {
	val, err := r.client.Get(ctx, popularBooksKey).Result()

	logger.Log.Infow(
		"key", popularBooksKey,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("popular books not found in cache")
		}
		return nil, err
	}

	var books []models.PopularBook
	if err := json.Unmarshal([]byte(val), &books); err != nil {
		return nil, err
	}

	return books, nil
}

// SetPopularBooks caches the popular books ranking with expiration.
func (r *AnalyticsCacheRepository) SetPopularBooks(ctx context.Context, books []models.PopularBook) error {
	data, err := json.Marshal(books)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, popularBooksKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", popularBooksKey,
		"result", "ok",
		"error", err,
	)

	return err
}

// GetPopularAuthors fetches the cached popular authors ranking.
func (r *AnalyticsCacheRepository) GetPopularAuthors(ctx context.Context) ([]models.PopularAuthor, error) {
	val, err := r.client.Get(ctx, popularAuthorsKey).Result()

	logger.Log.Infow(
		"key", popularAuthorsKey,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("popular authors not found in cache")
		}
		return nil, err
	}

	var authors []models.PopularAuthor
	if err := json.Unmarshal([]byte(val), &authors); err != nil {
		return nil, err
	}

	return authors, nil
}

// SetPopularAuthors caches the popular authors ranking with expiration.
func (r *AnalyticsCacheRepository) SetPopularAuthors(ctx context.Context, authors []models.PopularAuthor) error {
	data, err := json.Marshal(authors)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, popularAuthorsKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", popularAuthorsKey,
		"result", "ok",
		"error", err,
	)

	return err
}
