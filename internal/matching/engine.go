// internal/matching/engine.go
package matching

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	stderrors "github.com/c-xld1/ne-yesek-matching/internal/common/errors"
	"github.com/c-xld1/ne-yesek-matching/internal/common/logger"
	"github.com/c-xld1/ne-yesek-matching/internal/common/metrics"
	"github.com/c-xld1/ne-yesek-matching/internal/matching/geofilter"
	"github.com/c-xld1/ne-yesek-matching/internal/matching/ranking"
	"github.com/c-xld1/ne-yesek-matching/internal/matching/scoring"
	"github.com/c-xld1/ne-yesek-matching/internal/matching/status"
	"github.com/c-xld1/ne-yesek-matching/internal/models"

	"golang.org/x/sync/errgroup"
)

// ChefStore lists active, verified-eligible chefs with non-null coordinates.
type ChefStore interface {
	ListEligible(ctx context.Context, cuisine string) ([]models.Chef, error)
}

// HistoryStore lists a consumer's most recent past chef interactions.
// Collected as a personalization input; the current scoring model does not
// weight it yet.
type HistoryStore interface {
	RecentInteractions(ctx context.Context, userID string, limit int) ([]models.OrderInteraction, error)
}

// AuditRecorder persists the audit slice of a ranked result, best-effort.
type AuditRecorder interface {
	Record(userID string, topK []models.ScoredChef)
}

// Telemetry records request-level meters. Optional; a nil Telemetry
// disables the calls.
type Telemetry interface {
	RecordMatchProcessed(ctx context.Context, status string)
	RecordMatchDuration(ctx context.Context, duration time.Duration, status string)
}

// Config bounds one matching request. Both the scoring weights and the
// status thresholds come from configuration so the model tunes without
// code changes; zero values fall back to the v1 model.
type Config struct {
	RequestTimeout     time.Duration
	MaxResults         int
	AuditTopK          int
	TravelMinutesPerKm float64
	HistoryLimit       int
	Weights            scoring.Weights
	Thresholds         status.Thresholds
}

// Engine runs the matching pipeline: geofence, score, classify, rank,
// truncate, audit. All collaborators are injected; the engine holds no
// cross-request mutable state.
type Engine struct {
	chefs      ChefStore
	history    HistoryStore
	recorder   AuditRecorder
	telemetry  Telemetry
	scorer     *scoring.Scorer
	thresholds status.Thresholds
	config     Config
	logger     logger.Logger
}

func NewEngine(chefs ChefStore, history HistoryStore, rec AuditRecorder, telemetry Telemetry, config Config, log logger.Logger) *Engine {
	if config.Weights == (scoring.Weights{}) {
		config.Weights = scoring.DefaultWeights()
	}
	if config.Thresholds == (status.Thresholds{}) {
		config.Thresholds = status.DefaultThresholds()
	}
	return &Engine{
		chefs:      chefs,
		history:    history,
		recorder:   rec,
		telemetry:  telemetry,
		scorer:     scoring.NewScorer(config.Weights),
		thresholds: config.Thresholds,
		config:     config,
		logger:     log.WithFields(map[string]interface{}{"component": "matching-engine"}),
	}
}

// ValidateQuery rejects malformed queries before any filtering.
func ValidateQuery(query models.MatchQuery) error {
	if query.UserLatitude < -90 || query.UserLatitude > 90 || math.IsNaN(query.UserLatitude) {
		return stderrors.NewValidationError(fmt.Sprintf("user_latitude %v out of range [-90, 90]", query.UserLatitude))
	}
	if query.UserLongitude < -180 || query.UserLongitude > 180 || math.IsNaN(query.UserLongitude) {
		return stderrors.NewValidationError(fmt.Sprintf("user_longitude %v out of range [-180, 180]", query.UserLongitude))
	}
	switch query.DeliveryType {
	case models.DeliveryTypeInstant, models.DeliveryTypeScheduled:
	default:
		return stderrors.NewValidationError(fmt.Sprintf("delivery_type %q must be instant or scheduled", query.DeliveryType))
	}
	if query.MaxDistanceKm < 0 {
		return stderrors.NewValidationError(fmt.Sprintf("max_distance_km %v must be positive", query.MaxDistanceKm))
	}
	return nil
}

// Match executes one request. The chef fetch failing fails the whole
// request; the history fetch and the audit write never do.
func (e *Engine) Match(ctx context.Context, query models.MatchQuery) (*models.MatchResult, error) {
	start := time.Now()

	if err := ValidateQuery(query); err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("validation_error").Inc()
		e.recordTelemetry(ctx, start, "validation_error")
		return nil, err
	}
	query.ApplyDefaults()

	ctx, cancel := context.WithTimeout(ctx, e.config.RequestTimeout)
	defer cancel()

	chefs, err := e.chefs.ListEligible(ctx, query.PreferredCuisine)
	if err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("upstream_error").Inc()
		e.recordTelemetry(ctx, start, "upstream_error")
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, stderrors.NewCandidateFetchTimeout(err)
		}
		return nil, stderrors.NewCandidateFetchError(err)
	}
	metrics.MatchCandidatesConsidered.Observe(float64(len(chefs)))

	e.fetchHistory(ctx, query.UserID)

	survivors, skipped := geofilter.Filter(chefs, query)
	if skipped > 0 {
		e.logger.Warn("chefs skipped for invalid coordinates", map[string]interface{}{
			"skipped": skipped,
		})
	}

	scored := e.scoreAll(ctx, query, survivors)
	ranked := ranking.Rank(scored)

	top := ranking.Truncate(ranked, e.config.MaxResults)
	auditSlice := ranking.Truncate(ranked, e.config.AuditTopK)
	go e.recorder.Record(query.UserID, auditSlice)

	metrics.MatchCandidatesReturned.Observe(float64(len(top)))
	metrics.MatchRequestsTotal.WithLabelValues("success").Inc()
	metrics.MatchRequestDuration.Observe(time.Since(start).Seconds())
	e.recordTelemetry(ctx, start, "success")

	e.logger.Info("matching completed", map[string]interface{}{
		"userId":     query.UserID,
		"candidates": len(chefs),
		"inRadius":   len(ranked),
		"returned":   len(top),
		"durationMs": time.Since(start).Milliseconds(),
	})

	return &models.MatchResult{
		TotalFound: len(ranked),
		Chefs:      top,
		UserLocation: models.UserLocation{
			Latitude:  query.UserLatitude,
			Longitude: query.UserLongitude,
		},
	}, nil
}

// fetchHistory pulls the consumer's recent interactions. The result does not
// feed the current scoring model, so a failure here downgrades to a warning
// instead of failing the request.
func (e *Engine) fetchHistory(ctx context.Context, userID string) {
	if userID == "" || e.history == nil {
		return
	}

	interactions, err := e.history.RecentInteractions(ctx, userID, e.config.HistoryLimit)
	if err != nil {
		e.logger.WithError(stderrors.NewHistoryFetchError(err)).Warn("order history fetch failed", map[string]interface{}{
			"userId": userID,
		})
		return
	}

	e.logger.Debug("order history fetched", map[string]interface{}{
		"userId":       userID,
		"interactions": len(interactions),
	})
}

// scoreAll computes score, reasons, status and delivery estimate per
// survivor. Each candidate is independent, so they are scored concurrently;
// results land at their input index, keeping the pre-rank order stable.
func (e *Engine) scoreAll(ctx context.Context, query models.MatchQuery, survivors []geofilter.Survivor) []models.ScoredChef {
	scored := make([]models.ScoredChef, len(survivors))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, survivor := range survivors {
		g.Go(func() error {
			score, reasons := e.scorer.Score(survivor.Chef, survivor.DistanceKm)
			scored[i] = models.ScoredChef{
				Chef:                     survivor.Chef,
				DistanceKm:               survivor.DistanceKm,
				Score:                    score,
				Reasons:                  reasons,
				Status:                   e.thresholds.Classify(survivor.Chef),
				EstimatedDeliveryMinutes: e.estimateDelivery(survivor.Chef, survivor.DistanceKm),
			}
			return nil
		})
	}
	_ = g.Wait()

	return scored
}

func (e *Engine) recordTelemetry(ctx context.Context, start time.Time, outcome string) {
	if e.telemetry == nil {
		return
	}
	e.telemetry.RecordMatchProcessed(ctx, outcome)
	e.telemetry.RecordMatchDuration(ctx, time.Since(start), outcome)
}

// estimateDelivery is prep time plus a travel allowance per kilometre.
func (e *Engine) estimateDelivery(chef models.Chef, distanceKm float64) int {
	return int(math.Round(chef.AvgPrepTimeMinutes + distanceKm*e.config.TravelMinutesPerKm))
}
