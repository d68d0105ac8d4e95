package usecase_pool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/ibanezbetes/trinity-sub006/internal/infra/criteriamock"
	infra_postgres_criteria "github.com/ibanezbetes/trinity-sub006/internal/infra/postgres/criteria"
	infra_tmdb "github.com/ibanezbetes/trinity-sub006/internal/infra/tmdb"
	"github.com/ibanezbetes/trinity-sub006/internal/model"
	"github.com/ibanezbetes/trinity-sub006/internal/service/selection"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrRoomNotFound          = errors.New("room not found")
	ErrFailedToFetchCatalog  = errors.New("failed to fetch catalog")
	ErrFailedToStoreCriteria = errors.New("failed to store criteria")
	ErrFailedToLoadCriteria  = errors.New("failed to load criteria")
)

const (
	// TargetPoolSize is the pool size a generation tries to reach and the
	// minimum size at which a cached pool is considered usable.
	TargetPoolSize = 30

	// TierOneCap bounds how much of the pool the strict all-genres tier may
	// contribute.
	TierOneCap = 15
)

type Catalog interface {
	Discover(ctx context.Context, mt model.MediaType, filter infra_tmdb.GenreFilter, sort string, page int, exclude model.ExclusionSet) ([]model.CatalogItem, error)
	Genres(ctx context.Context, mt model.MediaType) ([]model.Genre, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]model.PoolEntry, bool, error)
	Put(ctx context.Context, key string, pool []model.PoolEntry) error
}

type CriteriaRepository interface {
	Store(ctx context.Context, criteria model.Criteria) error
	Load(ctx context.Context, roomID model.RoomID) (model.Criteria, error)
}

// Usecase assembles bounded content pools for voting rooms: catalog fetch,
// three-tier genre relaxation, quality-filtered selection, result caching.
type Usecase struct {
	catalog  Catalog
	cache    Cache
	criteria CriteriaRepository
	policy   *selection.Policy

	flight singleflight.Group
	now    func() time.Time
	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

// WithClock pins entry timestamps, for tests.
func WithClock(now func() time.Time) UsecaseOption {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	catalog Catalog,
	cache Cache,
	criteria CriteriaRepository,
	policy *selection.Policy,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		catalog:  catalog,
		cache:    cache,
		criteria: criteria,
		policy:   policy,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateFilteredRoom builds the initial pool for a room. Identical criteria
// reuse a cached pool when it still holds at least TargetPoolSize entries;
// concurrent first requests for the same criteria share one generation.
func (u *Usecase) CreateFilteredRoom(ctx context.Context, criteria model.Criteria) ([]model.PoolEntry, error) {
	if criteria.MediaType == "" {
		return nil, fmt.Errorf("%w: media type is required", ErrInvalidInput)
	}

	// Joined callers share the generation's result, so the generation must
	// outlive any single caller's context.
	genCtx := context.WithoutCancel(ctx)

	key := criteria.Key()
	result, err, shared := u.flight.Do(key, func() (any, error) {
		return u.poolForCriteria(genCtx, criteria, key)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		u.logger.Debug("joined in-flight generation", slog.String("key", key))
	}

	pool := result.([]model.PoolEntry)
	if len(pool) > TargetPoolSize {
		pool = pool[:TargetPoolSize]
	}

	if criteria.RoomID != model.EmptyRoomID {
		if err := u.criteria.Store(ctx, criteria); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToStoreCriteria, err)
		}
	}

	return pool, nil
}

// LoadContentPool refills a room whose pool is running low. The refill must
// honor the room's exclusion set, so it always regenerates instead of reading
// the criteria cache.
func (u *Usecase) LoadContentPool(ctx context.Context, roomID model.RoomID, excludeIDs []int) ([]model.PoolEntry, error) {
	if roomID == model.EmptyRoomID {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}

	criteria, err := u.criteria.Load(ctx, roomID)
	if err != nil {
		if errors.Is(err, infra_postgres_criteria.ErrCriteriaNotFound) || errors.Is(err, criteriamock.ErrCriteriaNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedToLoadCriteria, roomID, err)
	}

	return u.generate(ctx, criteria, model.NewExclusionSet(excludeIDs...))
}

// AvailableGenres lists the catalog's genres for a media type.
func (u *Usecase) AvailableGenres(ctx context.Context, mt model.MediaType) ([]model.Genre, error) {
	genres, err := u.catalog.Genres(ctx, mt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToFetchCatalog, err)
	}
	return genres, nil
}

func (u *Usecase) poolForCriteria(ctx context.Context, criteria model.Criteria, key string) ([]model.PoolEntry, error) {
	cached, ok, err := u.cache.Get(ctx, key)
	if err != nil {
		u.logger.Warn("pool cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	if ok && len(cached) >= TargetPoolSize {
		u.logger.Info("pool cache hit",
			slog.String("key", key),
			slog.String("room_id", string(criteria.RoomID)),
			slog.Int("size", len(cached)),
		)
		return cached, nil
	}

	pool, err := u.generate(ctx, criteria, model.NewExclusionSet())
	if err != nil {
		return nil, err
	}

	if err := u.cache.Put(ctx, key, pool); err != nil {
		u.logger.Warn("pool cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	return pool, nil
}

type tier struct {
	priority int
	filter   infra_tmdb.GenreFilter
	sort     string
	cap      func(current int) int
}

// generate runs the relaxation tiers in order until the pool reaches
// TargetPoolSize or the tiers are exhausted. Later tiers exclude everything
// earlier tiers picked, so tiers run strictly sequentially. Any catalog error
// aborts the whole attempt; there is no partial-pool fallback.
func (u *Usecase) generate(ctx context.Context, criteria model.Criteria, exclude model.ExclusionSet) ([]model.PoolEntry, error) {
	genID := uuid.New()

	seen := model.NewExclusionSet()
	for id := range exclude {
		seen.Add(id)
	}

	var tiers []tier
	if len(criteria.Genres) > 0 {
		tiers = append(tiers,
			tier{
				priority: 1,
				filter:   infra_tmdb.AndGenres(criteria.Genres),
				sort:     infra_tmdb.SortRatingDesc,
				cap:      capTierOne,
			},
			tier{
				priority: 2,
				filter:   infra_tmdb.OrGenres(criteria.Genres),
				sort:     infra_tmdb.SortPopularityDesc,
				cap:      capFill,
			},
		)
	}
	tiers = append(tiers, tier{
		priority: 3,
		filter:   infra_tmdb.NoGenreFilter,
		sort:     infra_tmdb.SortPopularityDesc,
		cap:      capFill,
	})

	pool := make([]model.PoolEntry, 0, TargetPoolSize)
	for _, t := range tiers {
		if len(pool) >= TargetPoolSize {
			break
		}
		limit := t.cap(len(pool))
		if limit <= 0 {
			continue
		}

		items, err := u.catalog.Discover(ctx, criteria.MediaType, t.filter, t.sort, 1, seen)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %d: %w", ErrFailedToFetchCatalog, t.priority, err)
		}

		picked := u.policy.Pick(items, seen, limit)
		addedAt := u.now()
		for _, item := range picked {
			pool = append(pool, model.NewPoolEntry(item, t.priority, addedAt))
			seen.Add(item.ID)
		}

		u.logger.Debug("tier filled",
			slog.String("generation", genID.String()),
			slog.String("room_id", string(criteria.RoomID)),
			slog.Int("tier", t.priority),
			slog.Int("candidates", len(items)),
			slog.Int("picked", len(picked)),
			slog.Int("pool", len(pool)),
		)
	}

	u.logger.Info("pool generated",
		slog.String("generation", genID.String()),
		slog.String("room_id", string(criteria.RoomID)),
		slog.String("key", criteria.Key()),
		slog.Int("size", len(pool)),
		slog.Int("excluded", exclude.Len()),
	)

	return pool, nil
}

func capTierOne(current int) int {
	remaining := TargetPoolSize - current
	if remaining > TierOneCap {
		return TierOneCap
	}
	return remaining
}

func capFill(current int) int {
	return TargetPoolSize - current
}
