package infra_tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ibanezbetes/trinity-sub006/internal/model"
	"github.com/ibanezbetes/trinity-sub006/internal/service/quality"
)

var (
	ErrRateLimited      = errors.New("catalog rate limited")
	ErrUnexpectedStatus = errors.New("unexpected catalog status")
	ErrDecodeResponse   = errors.New("failed to decode catalog response")
)

const (
	SortRatingDesc     = "vote_average.desc"
	SortPopularityDesc = "popularity.desc"
)

// GenreFilter encodes the tier semantics of a discover call: comma-joined ids
// require every genre, pipe-joined ids require any, empty means unconstrained.
type GenreFilter string

const NoGenreFilter GenreFilter = ""

func AndGenres(ids []int) GenreFilter {
	return GenreFilter(joinGenres(ids, ","))
}

func OrGenres(ids []int) GenreFilter {
	return GenreFilter(joinGenres(ids, "|"))
}

func joinGenres(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, sep)
}

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Limiter paces and backs off outbound calls.
type Limiter interface {
	Acquire(ctx context.Context) error
	Backoff(ctx context.Context, attempt int) error
}

type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Region   string
}

// Client wraps the external discovery and genre-listing endpoints. Every
// returned discover item has already passed the quality gate.
type Client struct {
	http      HTTPClient
	limiter   Limiter
	validator *quality.Validator
	cfg       Config

	logger *slog.Logger
}

type ClientOption func(*Client)

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(httpClient HTTPClient, limiter Limiter, validator *quality.Validator, cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		http:      httpClient,
		limiter:   limiter,
		validator: validator,
		cfg:       cfg,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type discoverResponse struct {
	Results []itemDTO `json:"results"`
}

type itemDTO struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	Overview     string   `json:"overview"`
	GenreIDs     []int    `json:"genre_ids"`
	VoteAverage  *float64 `json:"vote_average"`
	VoteCount    int      `json:"vote_count"`
	ReleaseDate  string   `json:"release_date"`
	FirstAirDate string   `json:"first_air_date"`
	PosterPath   string   `json:"poster_path"`
}

func (d itemDTO) toCatalogItem(mt model.MediaType) model.CatalogItem {
	item := model.CatalogItem{
		ID:         d.ID,
		Title:      d.Title,
		Overview:   d.Overview,
		GenreIDs:   d.GenreIDs,
		VoteCount:  d.VoteCount,
		PosterPath: d.PosterPath,
		MediaType:  mt,
	}
	if item.Title == "" {
		item.Title = d.Name
	}
	item.ReleaseDate = d.ReleaseDate
	if item.ReleaseDate == "" {
		item.ReleaseDate = d.FirstAirDate
	}
	if d.VoteAverage != nil {
		item.VoteAverage = *d.VoteAverage
		item.HasVoteAverage = true
	}
	return item
}

type genresResponse struct {
	Genres []model.Genre `json:"genres"`
}

// Discover queries one page of the discovery endpoint, drops excluded ids and
// applies the quality gate to the survivors.
func (c *Client) Discover(ctx context.Context, mt model.MediaType, filter GenreFilter, sort string, page int, exclude model.ExclusionSet) ([]model.CatalogItem, error) {
	params := url.Values{}
	params.Set("sort_by", sort)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")
	if c.cfg.Region != "" {
		params.Set("region", c.cfg.Region)
	}
	if filter != NoGenreFilter {
		params.Set("with_genres", string(filter))
	}

	var resp discoverResponse
	if err := c.call(ctx, "/discover/"+mt.String(), params, &resp); err != nil {
		return nil, err
	}

	items := make([]model.CatalogItem, 0, len(resp.Results))
	dropped := 0
	for _, dto := range resp.Results {
		if exclude.Has(dto.ID) {
			continue
		}
		item := dto.toCatalogItem(mt)
		if err := c.validator.Validate(quality.Item{
			Title:          item.Title,
			Overview:       item.Overview,
			ReleaseDate:    item.ReleaseDate,
			VoteAverage:    item.VoteAverage,
			VoteCount:      item.VoteCount,
			GenreIDs:       item.GenreIDs,
			HasVoteAverage: item.HasVoteAverage,
		}); err != nil {
			dropped++
			continue
		}
		items = append(items, item)
	}

	c.logger.Debug("discover page fetched",
		slog.String("media_type", mt.String()),
		slog.String("with_genres", string(filter)),
		slog.Int("raw", len(resp.Results)),
		slog.Int("rejected", dropped),
		slog.Int("usable", len(items)),
	)

	return items, nil
}

// Genres lists the catalog's genres for a media type. Genre lists are not
// content items, so no quality filtering applies.
func (c *Client) Genres(ctx context.Context, mt model.MediaType) ([]model.Genre, error) {
	var resp genresResponse
	if err := c.call(ctx, "/genre/"+mt.String()+"/list", url.Values{}, &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// call performs one rate-limited request, retrying exactly once after a
// backoff when the catalog answers 429. Any other failure propagates as is.
func (c *Client) call(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.cfg.APIKey)
	params.Set("language", c.cfg.Language)
	endpoint := c.cfg.BaseURL + path + "?" + params.Encode()

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Acquire(ctx); err != nil {
			return err
		}

		body, err := c.do(ctx, endpoint)
		if err == nil {
			if derr := json.Unmarshal(body, out); derr != nil {
				return fmt.Errorf("%w: %w", ErrDecodeResponse, derr)
			}
			return nil
		}

		if !errors.Is(err, ErrRateLimited) || attempt >= 1 {
			return err
		}

		c.logger.Warn("catalog rate limited, backing off",
			slog.String("path", path),
			slog.Int("attempt", attempt),
		)
		if berr := c.limiter.Backoff(ctx, attempt); berr != nil {
			return berr
		}
	}
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
