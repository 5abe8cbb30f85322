package repository

import (
	"context"

	"fitness-club/internal/model"
)

type ActivityRepository interface {
	// Record stores the entry once per event id; duplicates are ignored.
	Record(ctx context.Context, entry *model.ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error)
}

type ActivityRepositoryImpl struct {
	db Querier
}

func NewActivityRepository(db Querier) ActivityRepository {
	return &ActivityRepositoryImpl{
		db: db,
	}
}

func (r *ActivityRepositoryImpl) Record(ctx context.Context, entry *model.ActivityEntry) error {
	query := `
		INSERT INTO activity_log (event_id, entity, entity_id, action, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		entry.EventID, entry.Entity, entry.EntityID, entry.Action, entry.OccurredAt,
	)
	return err
}

func (r *ActivityRepositoryImpl) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	query := `
		SELECT id, event_id, entity, entity_id, action, occurred_at
		FROM activity_log
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*model.ActivityEntry, 0)
	for rows.Next() {
		var entry model.ActivityEntry
		err := rows.Scan(
			&entry.ID,
			&entry.EventID,
			&entry.Entity,
			&entry.EntityID,
			&entry.Action,
			&entry.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
