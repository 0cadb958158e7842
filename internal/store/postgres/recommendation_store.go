// internal/store/postgres/recommendation_store.go
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c-xld1/ne-yesek-matching/internal/models"
)

const insertRecommendationQuery = `
	INSERT INTO recommendations (
		id, user_id, chef_id, recommendation_type, reason, score, factors, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// RecommendationStore appends recommendation audit records to PostgreSQL.
// Append-only: no update or delete path exists.
type RecommendationStore struct {
	db *sql.DB
}

func NewRecommendationStore(db *sql.DB) *RecommendationStore {
	return &RecommendationStore{db: db}
}

// Append writes all records in one transaction so a partial audit slice is
// never left behind.
func (s *RecommendationStore) Append(ctx context.Context, records []models.RecommendationRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin recommendation tx: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	for _, record := range records {
		factorsJSON, err := json.Marshal(record.Factors)
		if err != nil {
			return fmt.Errorf("marshal recommendation factors: %w", err)
		}

		_, err = tx.ExecContext(ctx, insertRecommendationQuery,
			record.ID,
			record.UserID,
			record.ChefID,
			record.Type,
			record.Reason,
			record.Score,
			factorsJSON,
			createdAt,
		)
		if err != nil {
			return fmt.Errorf("insert recommendation for chef %s: %w", record.ChefID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit recommendation tx: %w", err)
	}
	return nil
}
