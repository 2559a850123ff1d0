package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/andresmz/exercise-tracker/internal/model"
	"github.com/andresmz/exercise-tracker/internal/repository"
)

// compile-time check that *DB implements repository.ActivityRepository
var _ repository.ActivityRepository = (*ActivityDB)(nil)

// Create inserts a new activity. The ID and creation timestamp are
// generated here and written back to the caller's struct. The caller is
// responsible for having resolved the owning user first — the foreign key
// on user_id rejects orphan activities either way.
func (db *ActivityDB) Create(ctx context.Context, activity *model.Activity) error {
	activity.ID = xid.New().String()
	activity.CreatedAt = time.Now()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO activities (id, description, duration, date, username, user_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		activity.ID,
		activity.Description,
		activity.Duration,
		activity.Date,
		activity.Username,
		activity.UserID,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting activity: %w", err)
	}

	return nil
}

// ListByUser retrieves every activity belonging to the given user, in
// storage order. Date filtering and limiting happen in the service layer,
// matching the retrieve-then-filter contract of the logs endpoint.
func (db *ActivityDB) ListByUser(ctx context.Context, userID string) ([]model.Activity, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, description, duration, date, username, user_id, created_at
		 FROM activities
		 WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing activities for user %s: %w", userID, err)
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(
			&a.ID, &a.Description, &a.Duration, &a.Date,
			&a.Username, &a.UserID, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating activities: %w", err)
	}

	return activities, nil
}
