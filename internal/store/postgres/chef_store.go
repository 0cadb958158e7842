// internal/store/postgres/chef_store.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/c-xld1/ne-yesek-matching/internal/common/logger"
	"github.com/c-xld1/ne-yesek-matching/internal/models"
)

const listEligibleChefsQuery = `
	SELECT id, name, latitude, longitude, trust_score, rating,
	       current_daily_orders, daily_order_limit, avg_prep_time_minutes,
	       verified, total_orders, available_menu_items
	FROM chefs
	WHERE is_active = TRUE
	  AND latitude IS NOT NULL
	  AND longitude IS NOT NULL`

// ChefStore reads eligible chefs from PostgreSQL. The NOT NULL coordinate
// predicates uphold the engine's contract that candidates without
// coordinates never reach the geofence.
type ChefStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewChefStore(db *sql.DB, log logger.Logger) *ChefStore {
	return &ChefStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"store": "chefs"}),
	}
}

// ListEligible returns active chefs with coordinates, optionally narrowed to
// one cuisine.
func (s *ChefStore) ListEligible(ctx context.Context, cuisine string) ([]models.Chef, error) {
	query := listEligibleChefsQuery
	var args []interface{}
	if cuisine != "" {
		query += " AND cuisine = $1"
		args = append(args, cuisine)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list eligible chefs: %w", err)
	}
	defer rows.Close()

	var chefs []models.Chef
	for rows.Next() {
		var chef models.Chef
		var menuItems []byte
		err := rows.Scan(
			&chef.ID,
			&chef.Name,
			&chef.Latitude,
			&chef.Longitude,
			&chef.TrustScore,
			&chef.Rating,
			&chef.CurrentDailyOrders,
			&chef.DailyOrderLimit,
			&chef.AvgPrepTimeMinutes,
			&chef.Verified,
			&chef.TotalOrders,
			&menuItems,
		)
		if err != nil {
			// one bad row must not abort the whole candidate fetch
			s.logger.Warn("skipping unscannable chef row", map[string]interface{}{
				"error": err,
			})
			continue
		}
		chef.AvailableMenuItems = menuItems
		chefs = append(chefs, chef)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chef rows: %w", err)
	}

	return chefs, nil
}
