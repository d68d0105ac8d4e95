package model

import (
	"slices"
	"strconv"
	"strings"
)

type RoomID string

const EmptyRoomID RoomID = ""

// Criteria is what a room asks the catalog for. RoomID rides along for
// logging and attribution only; it is not part of the cache identity.
type Criteria struct {
	MediaType MediaType
	Genres    []int
	RoomID    RoomID
}

// Key returns the normalized cache key for the criteria: media type plus the
// sorted, deduplicated genre set. Two criteria with the same media type and
// genre set share a key regardless of genre order or room.
func (c Criteria) Key() string {
	genres := slices.Clone(c.Genres)
	slices.Sort(genres)
	genres = slices.Compact(genres)

	var sb strings.Builder
	sb.WriteString(string(c.MediaType))
	for _, id := range genres {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}
