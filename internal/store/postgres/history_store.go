// internal/store/postgres/history_store.go
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c-xld1/ne-yesek-matching/internal/common/logger"
	"github.com/c-xld1/ne-yesek-matching/internal/models"

	"github.com/redis/go-redis/v9"
)

const recentInteractionsQuery = `
	SELECT chef_id, ordered_at
	FROM orders
	WHERE user_id = $1
	ORDER BY ordered_at DESC
	LIMIT $2`

// HistoryStore reads a consumer's recent chef interactions from PostgreSQL
// with a read-through Redis cache in front.
type HistoryStore struct {
	db       *sql.DB
	redis    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewHistoryStore(db *sql.DB, rdb *redis.Client, cacheTTL time.Duration, log logger.Logger) *HistoryStore {
	return &HistoryStore{
		db:       db,
		redis:    rdb,
		cacheTTL: cacheTTL,
		logger:   log.WithFields(map[string]interface{}{"store": "order-history"}),
	}
}

func historyCacheKey(userID string) string {
	return "user:history:" + userID
}

// RecentInteractions returns up to limit most recent (consumer, chef)
// interactions, newest first.
func (s *HistoryStore) RecentInteractions(ctx context.Context, userID string, limit int) ([]models.OrderInteraction, error) {
	cacheKey := historyCacheKey(userID)
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var interactions []models.OrderInteraction
			if err := json.Unmarshal([]byte(val), &interactions); err == nil {
				return interactions, nil
			}
		}
	}

	rows, err := s.db.QueryContext(ctx, recentInteractionsQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query order history: %w", err)
	}
	defer rows.Close()

	var interactions []models.OrderInteraction
	for rows.Next() {
		var in models.OrderInteraction
		if err := rows.Scan(&in.ChefID, &in.OrderedAt); err != nil {
			return nil, fmt.Errorf("scan order history row: %w", err)
		}
		interactions = append(interactions, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order history rows: %w", err)
	}

	if s.redis != nil {
		if data, err := json.Marshal(interactions); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Debug("order history cache write failed", map[string]interface{}{
					"userId": userID,
					"error":  err,
				})
			}
		}
	}

	return interactions, nil
}
