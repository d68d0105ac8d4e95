package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteriaKey(t *testing.T) {
	tests := []struct {
		name string
		a, b Criteria
		same bool
	}{
		{
			name: "genre order is irrelevant",
			a:    Criteria{MediaType: MediaTypeMovie, Genres: []int{28, 12}},
			b:    Criteria{MediaType: MediaTypeMovie, Genres: []int{12, 28}},
			same: true,
		},
		{
			name: "duplicate genres collapse",
			a:    Criteria{MediaType: MediaTypeMovie, Genres: []int{28, 28, 12}},
			b:    Criteria{MediaType: MediaTypeMovie, Genres: []int{12, 28}},
			same: true,
		},
		{
			name: "room id does not participate",
			a:    Criteria{MediaType: MediaTypeTV, Genres: []int{18}, RoomID: "room-a"},
			b:    Criteria{MediaType: MediaTypeTV, Genres: []int{18}, RoomID: "room-b"},
			same: true,
		},
		{
			name: "media type matters",
			a:    Criteria{MediaType: MediaTypeMovie, Genres: []int{18}},
			b:    Criteria{MediaType: MediaTypeTV, Genres: []int{18}},
			same: false,
		},
		{
			name: "genre set matters",
			a:    Criteria{MediaType: MediaTypeMovie, Genres: []int{18}},
			b:    Criteria{MediaType: MediaTypeMovie, Genres: []int{18, 35}},
			same: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, tt.a.Key(), tt.b.Key())
			} else {
				assert.NotEqual(t, tt.a.Key(), tt.b.Key())
			}
		})
	}
}

func TestCriteriaKeyFormat(t *testing.T) {
	c := Criteria{MediaType: MediaTypeMovie, Genres: []int{878, 28}}
	assert.Equal(t, "movie:28:878", c.Key())

	empty := Criteria{MediaType: MediaTypeTV}
	assert.Equal(t, "tv", empty.Key())
}

func TestParseMediaType(t *testing.T) {
	mt, err := ParseMediaType("movie")
	assert.NoError(t, err)
	assert.Equal(t, MediaTypeMovie, mt)

	mt, err = ParseMediaType("tv")
	assert.NoError(t, err)
	assert.Equal(t, MediaTypeTV, mt)

	_, err = ParseMediaType("radio")
	assert.ErrorIs(t, err, ErrUnknownMediaType)
}

func TestExclusionSet(t *testing.T) {
	s := NewExclusionSet(1, 2)
	assert.True(t, s.Has(1))
	assert.False(t, s.Has(3))
	assert.Equal(t, 2, s.Len())

	s.Add(3)
	assert.True(t, s.Has(3))
	assert.Equal(t, 3, s.Len())
}
