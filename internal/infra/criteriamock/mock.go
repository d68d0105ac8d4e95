// Package criteriamock keeps room criteria in memory for local runs without
// a database.
package criteriamock

import (
	"context"
	"errors"
	"sync"

	"github.com/ibanezbetes/trinity-sub006/internal/model"
)

var ErrCriteriaNotFound = errors.New("criteria not found for room")

type Repository struct {
	mu       sync.RWMutex
	criteria map[model.RoomID]model.Criteria
}

func New() *Repository {
	return &Repository{
		criteria: make(map[model.RoomID]model.Criteria),
	}
}

func (r *Repository) Store(_ context.Context, criteria model.Criteria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.criteria[criteria.RoomID] = criteria
	return nil
}

func (r *Repository) Load(_ context.Context, roomID model.RoomID) (model.Criteria, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.criteria[roomID]
	if !ok {
		return model.Criteria{}, ErrCriteriaNotFound
	}
	return c, nil
}
