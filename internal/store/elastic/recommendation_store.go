// internal/store/elastic/recommendation_store.go
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/c-xld1/ne-yesek-matching/internal/models"
)

// recommendationDocument is the indexed shape of one audit record.
type recommendationDocument struct {
	UserID    string                       `json:"user_id"`
	ChefID    string                       `json:"chef_id"`
	Type      string                       `json:"recommendation_type"`
	Reason    string                       `json:"reason"`
	Score     float64                      `json:"score"`
	Factors   models.RecommendationFactors `json:"factors"`
	CreatedAt string                       `json:"created_at"`
}

// RecommendationStore appends recommendation audit records to an
// Elasticsearch index. Drop-in alternative to the PostgreSQL sink for
// deployments that query the audit trail through search.
type RecommendationStore struct {
	client *elasticsearch.Client
	index  string
}

func NewRecommendationStore(client *elasticsearch.Client, index string) *RecommendationStore {
	return &RecommendationStore{client: client, index: index}
}

// Append indexes one document per record, keyed by record ID so a retried
// write overwrites rather than duplicates.
func (s *RecommendationStore) Append(ctx context.Context, records []models.RecommendationRecord) error {
	if len(records) == 0 {
		return nil
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	for _, record := range records {
		doc := recommendationDocument{
			UserID:    record.UserID,
			ChefID:    record.ChefID,
			Type:      record.Type,
			Reason:    record.Reason,
			Score:     record.Score,
			Factors:   record.Factors,
			CreatedAt: createdAt,
		}
		body, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal recommendation document: %w", err)
		}

		req := esapi.IndexRequest{
			Index:      s.index,
			DocumentID: record.ID,
			Body:       bytes.NewReader(body),
		}
		res, err := req.Do(ctx, s.client)
		if err != nil {
			return fmt.Errorf("index recommendation for chef %s: %w", record.ChefID, err)
		}
		if res.IsError() {
			res.Body.Close()
			return fmt.Errorf("index recommendation for chef %s: %s", record.ChefID, res.Status())
		}
		res.Body.Close()
	}

	return nil
}
