// internal/matching/recorder/recorder_test.go
package recorder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/c-xld1/ne-yesek-matching/internal/common/logger"
	"github.com/c-xld1/ne-yesek-matching/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	mu       sync.Mutex
	appended [][]models.RecommendationRecord
	failures int
}

func (f *fakeStore) Append(_ context.Context, records []models.RecommendationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("store outage")
	}
	f.appended = append(f.appended, records)
	return nil
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appended)
}

func testConfig() Config {
	return Config{
		WriteTimeout: time.Second,
		RetryDelay:   time.Millisecond,
	}
}

func rankedChefs() []models.ScoredChef {
	return []models.ScoredChef{
		{
			Chef:                     models.Chef{ID: "chef-1"},
			DistanceKm:               1.2,
			Score:                    215.5,
			Reasons:                  []string{"very close", "trusted provider"},
			Status:                   "fast today",
			EstimatedDeliveryMinutes: 19,
		},
		{
			Chef:       models.Chef{ID: "chef-2"},
			DistanceKm: 4.8,
			Score:      180,
			Reasons:    []string{"nearby"},
			Status:     "available",
		},
	}
}

func TestRecord_WritesOneRecordPerChef(t *testing.T) {
	store := &fakeStore{}
	rec := New(store, testConfig(), logger.NewNoOpLogger())

	rec.Record("user-1", rankedChefs())

	assert.Equal(t, 1, store.calls())
	records := store.appended[0]
	assert.Len(t, records, 2)

	first := records[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "user-1", first.UserID)
	assert.Equal(t, "chef-1", first.ChefID)
	assert.Equal(t, models.RecommendationTypeLocationMatch, first.Type)
	assert.Equal(t, "very close, trusted provider", first.Reason)
	assert.Equal(t, 215.5, first.Score)
	assert.Equal(t, 1.2, first.Factors.DistanceKm)
	assert.Equal(t, 19, first.Factors.EstimatedDeliveryMinutes)
	assert.Equal(t, "fast today", first.Factors.Status)
}

func TestRecord_RetriesOnceThenSucceeds(t *testing.T) {
	store := &fakeStore{failures: 1}
	rec := New(store, testConfig(), logger.NewNoOpLogger())

	rec.Record("user-1", rankedChefs())

	assert.Equal(t, 1, store.calls())
}

func TestRecord_GivesUpAfterRetry(t *testing.T) {
	store := &fakeStore{failures: 2}
	rec := New(store, testConfig(), logger.NewNoOpLogger())

	// Must not panic or propagate; the failure stays inside the recorder.
	rec.Record("user-1", rankedChefs())

	assert.Equal(t, 0, store.calls())
}

func TestRecord_EmptySliceIsNoOp(t *testing.T) {
	store := &fakeStore{}
	rec := New(store, testConfig(), logger.NewNoOpLogger())

	rec.Record("user-1", nil)

	assert.Equal(t, 0, store.calls())
}
