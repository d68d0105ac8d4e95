package infra_postgres_criteria

import (
	"github.com/lib/pq"

	"github.com/ibanezbetes/trinity-sub006/internal/model"
)

type CriteriaDB struct {
	RoomID    string        `db:"room_id"`
	MediaType string        `db:"media_type"`
	Genres    pq.Int64Array `db:"genres"`
}

func (c *CriteriaDB) ToDomain() model.Criteria {
	genres := make([]int, len(c.Genres))
	for i, id := range c.Genres {
		genres[i] = int(id)
	}
	return model.Criteria{
		MediaType: model.MediaType(c.MediaType),
		Genres:    genres,
		RoomID:    model.RoomID(c.RoomID),
	}
}

func FromDomain(criteria model.Criteria) CriteriaDB {
	genres := make(pq.Int64Array, len(criteria.Genres))
	for i, id := range criteria.Genres {
		genres[i] = int64(id)
	}
	return CriteriaDB{
		RoomID:    string(criteria.RoomID),
		MediaType: criteria.MediaType.String(),
		Genres:    genres,
	}
}
