package model

import (
	"errors"
	"fmt"
)

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

var ErrUnknownMediaType = errors.New("unknown media type")

func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaTypeMovie:
		return MediaTypeMovie, nil
	case MediaTypeTV:
		return MediaTypeTV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMediaType, s)
	}
}

func (mt MediaType) String() string {
	return string(mt)
}
