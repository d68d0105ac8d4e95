package http_pool

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibanezbetes/trinity-sub006/internal/model"
	usecase_pool "github.com/ibanezbetes/trinity-sub006/internal/usecase/pool"
)

// CreateFilteredRoomRequestDTO is the request to build an initial pool.
type CreateFilteredRoomRequestDTO struct {
	RoomID    string `json:"room_id" binding:"required" example:"room-42"`
	MediaType string `json:"media_type" binding:"required" example:"movie"`
	Genres    []int  `json:"genres" example:"28,12"`
}

// RefillPoolRequestDTO is the request to extend a running room's pool.
type RefillPoolRequestDTO struct {
	ExcludeIDs []int `json:"exclude_ids"`
}

type PoolEntryResponseDTO struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	GenreIDs    []int     `json:"genre_ids"`
	VoteAverage float64   `json:"vote_average"`
	VoteCount   int       `json:"vote_count"`
	ReleaseDate string    `json:"release_date"`
	PosterPath  string    `json:"poster_path"`
	MediaType   string    `json:"media_type"`
	Tier        int       `json:"tier"`
	AddedAt     time.Time `json:"added_at"`
}

type PoolResponseDTO struct {
	Entries []PoolEntryResponseDTO `json:"entries"`
	Total   int                    `json:"total"`
}

type GenresResponseDTO struct {
	Genres []model.Genre `json:"genres"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func (r *CreateFilteredRoomRequestDTO) ConvertToCriteria(mt model.MediaType) model.Criteria {
	return model.Criteria{
		MediaType: mt,
		Genres:    r.Genres,
		RoomID:    model.RoomID(r.RoomID),
	}
}

func ConvertFromPoolEntry(entry model.PoolEntry) PoolEntryResponseDTO {
	return PoolEntryResponseDTO{
		ID:          entry.ID,
		Title:       entry.Title,
		Overview:    entry.Overview,
		GenreIDs:    entry.GenreIDs,
		VoteAverage: entry.VoteAverage,
		VoteCount:   entry.VoteCount,
		ReleaseDate: entry.ReleaseDate,
		PosterPath:  entry.PosterPath,
		MediaType:   entry.MediaType.String(),
		Tier:        entry.Tier,
		AddedAt:     entry.AddedAt,
	}
}

func ConvertFromPool(pool []model.PoolEntry) PoolResponseDTO {
	entries := make([]PoolEntryResponseDTO, len(pool))
	for i, entry := range pool {
		entries[i] = ConvertFromPoolEntry(entry)
	}
	return PoolResponseDTO{
		Entries: entries,
		Total:   len(entries),
	}
}

type Controller struct {
	uc *usecase_pool.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_pool.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	rooms.POST("/filtered", c.createFilteredRoom)
	rooms.POST("/:room_id/pool/refill", c.refillPool)

	router.GET("/genres", c.getGenres)
}

// @Summary Build the initial content pool for a room
// @Description Assembles a quality-filtered pool of up to 30 items for the given criteria
// @Tags Pool operations
// @Accept json
// @Produce json
// @Param request body CreateFilteredRoomRequestDTO true "Selection criteria"
// @Success 201 {object} PoolResponseDTO "Pool assembled"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "Catalog unavailable"
// @Router /rooms/filtered [post]
func (c *Controller) createFilteredRoom(ctx *gin.Context) {
	var req CreateFilteredRoomRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	mt, err := model.ParseMediaType(req.MediaType)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid media type",
			Code:  http.StatusBadRequest,
		})
		return
	}

	pool, err := c.uc.CreateFilteredRoom(ctx.Request.Context(), req.ConvertToCriteria(mt))
	if err != nil {
		c.respondUsecaseError(ctx, err, "failed to create filtered room", req.RoomID)
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromPool(pool))
}

// @Summary Refill a room's content pool
// @Description Regenerates the pool for an existing room, excluding already-shown items
// @Tags Pool operations
// @Accept json
// @Produce json
// @Param room_id path string true "Room identifier"
// @Param request body RefillPoolRequestDTO true "Already-shown catalog ids"
// @Success 200 {object} PoolResponseDTO "Pool refilled"
// @Failure 404 {object} ErrorResponse "Room not found"
// @Failure 502 {object} ErrorResponse "Catalog unavailable"
// @Router /rooms/{room_id}/pool/refill [post]
func (c *Controller) refillPool(ctx *gin.Context) {
	roomID := ctx.Param("room_id")

	var req RefillPoolRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	pool, err := c.uc.LoadContentPool(ctx.Request.Context(), model.RoomID(roomID), req.ExcludeIDs)
	if err != nil {
		c.respondUsecaseError(ctx, err, "failed to refill pool", roomID)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromPool(pool))
}

// @Summary List available genres
// @Description Lists the catalog's genres for a media type
// @Tags Pool operations
// @Produce json
// @Param media_type query string true "movie or tv"
// @Success 200 {object} GenresResponseDTO "Genres listed"
// @Failure 400 {object} ErrorResponse "Invalid media type"
// @Failure 502 {object} ErrorResponse "Catalog unavailable"
// @Router /genres [get]
func (c *Controller) getGenres(ctx *gin.Context) {
	mt, err := model.ParseMediaType(ctx.Query("media_type"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid media type",
			Code:  http.StatusBadRequest,
		})
		return
	}

	genres, err := c.uc.AvailableGenres(ctx.Request.Context(), mt)
	if err != nil {
		c.logger.Error("failed to list genres", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "Failed to list genres",
			Message: err.Error(),
			Code:    http.StatusBadGateway,
		})
		return
	}

	ctx.JSON(http.StatusOK, GenresResponseDTO{Genres: genres})
}

func (c *Controller) respondUsecaseError(ctx *gin.Context, err error, msg, roomID string) {
	c.logger.Error(msg,
		slog.String("error", err.Error()),
		slog.String("room_id", roomID),
	)

	switch {
	case errors.Is(err, usecase_pool.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, usecase_pool.ErrRoomNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Room not found",
			Message: err.Error(),
			Code:    http.StatusNotFound,
		})
	case errors.Is(err, usecase_pool.ErrFailedToFetchCatalog):
		ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "Catalog unavailable",
			Message: err.Error(),
			Code:    http.StatusBadGateway,
		})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}
