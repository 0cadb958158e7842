// internal/matching/recorder/recorder.go
package recorder

import (
	"context"
	"strings"
	"time"

	"github.com/c-xld1/ne-yesek-matching/internal/common/logger"
	"github.com/c-xld1/ne-yesek-matching/internal/common/metrics"
	"github.com/c-xld1/ne-yesek-matching/internal/models"

	"github.com/google/uuid"
)

// Store appends recommendation audit records. Implementations must be
// append-only; records are never updated or deleted.
type Store interface {
	Append(ctx context.Context, records []models.RecommendationRecord) error
}

// Config bounds a single audit write.
type Config struct {
	WriteTimeout time.Duration
	RetryDelay   time.Duration
}

// Recorder persists a bounded audit slice of a ranked result. Best-effort:
// failures are logged and counted, never returned to the read path.
type Recorder struct {
	store  Store
	config Config
	logger logger.Logger
}

func New(store Store, config Config, log logger.Logger) *Recorder {
	return &Recorder{
		store:  store,
		config: config,
		logger: log.WithFields(map[string]interface{}{"component": "recorder"}),
	}
}

// Record writes one audit record per ranked chef. It uses its own deadline,
// detached from the request context, so a slow audit store cannot delay the
// response that has already been assembled. Retries once after a short
// backoff before giving up.
func (r *Recorder) Record(userID string, topK []models.ScoredChef) {
	if len(topK) == 0 {
		return
	}

	records := make([]models.RecommendationRecord, len(topK))
	for i, chef := range topK {
		records[i] = models.RecommendationRecord{
			ID:     uuid.New().String(),
			UserID: userID,
			ChefID: chef.ID,
			Type:   models.RecommendationTypeLocationMatch,
			Reason: strings.Join(chef.Reasons, ", "),
			Score:  chef.Score,
			Factors: models.RecommendationFactors{
				DistanceKm:               chef.DistanceKm,
				EstimatedDeliveryMinutes: chef.EstimatedDeliveryMinutes,
				Status:                   chef.Status,
			},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	defer cancel()

	err := r.store.Append(ctx, records)
	if err != nil {
		time.Sleep(r.config.RetryDelay)
		err = r.store.Append(ctx, records)
	}
	if err != nil {
		metrics.AuditWritesFailed.Inc()
		r.logger.Warn("recommendation audit write failed", map[string]interface{}{
			"userId":  userID,
			"records": len(records),
			"error":   err,
		})
		return
	}

	r.logger.Debug("recommendation audit written", map[string]interface{}{
		"userId":  userID,
		"records": len(records),
	})
}
