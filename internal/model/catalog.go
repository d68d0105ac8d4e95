package model

import "time"

// CatalogItem is a raw record from the external catalog. It is a transient
// value: selection consumes it and either discards it or projects it into a
// PoolEntry.
type CatalogItem struct {
	ID          int
	Title       string
	Overview    string
	GenreIDs    []int
	VoteAverage float64
	VoteCount   int
	ReleaseDate string
	PosterPath  string
	MediaType   MediaType

	// HasVoteAverage distinguishes a genuine 0.0 rating from a record that
	// carried no rating field at all.
	HasVoteAverage bool
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PoolEntry is one curated item in a room's content pool. Tier records which
// relaxation level produced it: 1 all-genres match, 2 any-genre match,
// 3 popularity fallback.
type PoolEntry struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	GenreIDs    []int     `json:"genre_ids"`
	VoteAverage float64   `json:"vote_average"`
	VoteCount   int       `json:"vote_count"`
	ReleaseDate string    `json:"release_date"`
	PosterPath  string    `json:"poster_path"`
	MediaType   MediaType `json:"media_type"`
	Tier        int       `json:"tier"`
	AddedAt     time.Time `json:"added_at"`
}

// NewPoolEntry projects a catalog item into a pool entry tagged with the tier
// that produced it.
func NewPoolEntry(item CatalogItem, tier int, addedAt time.Time) PoolEntry {
	return PoolEntry{
		ID:          item.ID,
		Title:       item.Title,
		Overview:    item.Overview,
		GenreIDs:    item.GenreIDs,
		VoteAverage: item.VoteAverage,
		VoteCount:   item.VoteCount,
		ReleaseDate: item.ReleaseDate,
		PosterPath:  item.PosterPath,
		MediaType:   item.MediaType,
		Tier:        tier,
		AddedAt:     addedAt,
	}
}
