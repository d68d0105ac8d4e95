package infra_postgres_criteria

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ibanezbetes/trinity-sub006/internal/model"
)

var ErrCriteriaNotFound = errors.New("criteria not found for room")

// Repository persists the selection criteria a room was created with, so a
// later refill can rebuild the same query with a fresh exclusion set.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Store(ctx context.Context, criteria model.Criteria) error {
	criteriaDB := FromDomain(criteria)

	query := `
		INSERT INTO room_criteria (room_id, media_type, genres)
		VALUES (:room_id, :media_type, :genres)
		ON CONFLICT (room_id) DO UPDATE SET
			media_type = EXCLUDED.media_type,
			genres = EXCLUDED.genres
	`

	_, err := r.db.NamedExecContext(ctx, query, criteriaDB)
	if err != nil {
		return fmt.Errorf("failed to store criteria: %w", err)
	}

	return nil
}

func (r *Repository) Load(ctx context.Context, roomID model.RoomID) (model.Criteria, error) {
	query := `
		SELECT room_id, media_type, genres
		FROM room_criteria
		WHERE room_id = $1
	`

	var criteriaDB CriteriaDB
	err := r.db.GetContext(ctx, &criteriaDB, query, string(roomID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Criteria{}, ErrCriteriaNotFound
		}
		return model.Criteria{}, fmt.Errorf("failed to load criteria: %w", err)
	}

	return criteriaDB.ToDomain(), nil
}
