// internal/store/postgres/recommendation_store_test.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-xld1/ne-yesek-matching/internal/models"
)

const insertRecommendationPattern = `INSERT INTO recommendations`

func sampleRecords(t *testing.T) []models.RecommendationRecord {
	t.Helper()
	return []models.RecommendationRecord{
		{
			ID:     "rec-1",
			UserID: "user-123",
			ChefID: "chef-ayse",
			Type:   models.RecommendationTypeLocationMatch,
			Reason: "very close, trusted provider",
			Score:  227.5,
			Factors: models.RecommendationFactors{
				DistanceKm:               2.5,
				EstimatedDeliveryMinutes: 33,
				Status:                   "fast today",
			},
		},
		{
			ID:     "rec-2",
			UserID: "user-123",
			ChefID: "chef-mehmet",
			Type:   models.RecommendationTypeLocationMatch,
			Reason: "nearby",
			Score:  180.0,
			Factors: models.RecommendationFactors{
				DistanceKm:               4.1,
				EstimatedDeliveryMinutes: 52,
				Status:                   "busy",
			},
		},
	}
}

func TestRecommendationStore_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	records := sampleRecords(t)

	mock.ExpectBegin()
	for _, record := range records {
		factorsJSON, err := json.Marshal(record.Factors)
		require.NoError(t, err)
		mock.ExpectExec(insertRecommendationPattern).
			WithArgs(record.ID, record.UserID, record.ChefID, record.Type,
				record.Reason, record.Score, factorsJSON, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	store := NewRecommendationStore(db)
	require.NoError(t, store.Append(context.Background(), records))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationStore_Append_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewRecommendationStore(db)
	require.NoError(t, store.Append(context.Background(), nil))

	// no transaction should even be opened
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationStore_Append_InsertFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	records := sampleRecords(t)

	mock.ExpectBegin()
	mock.ExpectExec(insertRecommendationPattern).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	store := NewRecommendationStore(db)
	err = store.Append(context.Background(), records)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chef-ayse")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationStore_Append_BeginFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	store := NewRecommendationStore(db)
	err = store.Append(context.Background(), sampleRecords(t))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "begin recommendation tx")

	assert.NoError(t, mock.ExpectationsWereMet())
}
