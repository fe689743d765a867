package collection

import (
	"errors"
	"fmt"

	"collection-manager/core/counts"
	"collection-manager/core/index"
	"collection-manager/core/logger"
	"collection-manager/core/resolver"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AggregateRequest carries raw sheet records to aggregate.
type AggregateRequest struct {
	Rows []map[string]any `json:"rows"`
	// Strict overrides the configured strict mode when set.
	Strict *bool `json:"strict,omitempty"`
}

// AggregateResponse is the aggregated count map with its totals.
type AggregateResponse struct {
	Counts counts.Map `json:"counts"`
	Cards  int        `json:"cards"`
	Copies int        `json:"copies"`
}

// DiffRequest holds the two maps to compare.
type DiffRequest struct {
	Left  counts.Map `json:"left"`
	Right counts.Map `json:"right"`
}

// DiffResponse holds left - right.
type DiffResponse struct {
	Diff counts.Map `json:"diff"`
}

// Handler handles HTTP requests for collections.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/collection")
	group.Post("/aggregate", h.HandleAggregate)
	group.Post("/diff", h.HandleDiff)

	stored := app.Group("/collections")
	stored.Get("/:name", h.HandleGetStored)
	stored.Put("/:name", h.HandlePutStored)
}

// HandleAggregate resolves and sums the posted rows.
func (h *Handler) HandleAggregate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req AggregateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	m, err := h.aggregate(c, req)
	if err != nil {
		return h.fail(c, l, "Aggregation failed", err)
	}

	return c.JSON(AggregateResponse{Counts: m, Cards: m.Len(), Copies: m.Total()})
}

// HandleDiff returns left - right of two posted count maps.
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	var req DiffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(DiffResponse{Diff: counts.Diff(req.Left, req.Right)})
}

// HandleGetStored returns a stored collection.
func (h *Handler) HandleGetStored(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	m, err := h.service.Stored(c.UserContext(), name)
	if err != nil {
		return h.fail(c, l, "Stored collection lookup failed", err)
	}
	return c.JSON(AggregateResponse{Counts: m, Cards: m.Len(), Copies: m.Total()})
}

// HandlePutStored aggregates the posted rows and stores them under the path name.
func (h *Handler) HandlePutStored(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	var req AggregateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	m, err := h.aggregate(c, req)
	if err != nil {
		return h.fail(c, l, "Aggregation failed", err)
	}
	if err := h.service.Store(c.UserContext(), name, m); err != nil {
		return h.fail(c, l, "Collection save failed", err)
	}

	l.Info("Collection stored", zap.String("collection", name), zap.Int("cards", m.Len()))
	return c.JSON(AggregateResponse{Counts: m, Cards: m.Len(), Copies: m.Total()})
}

func (h *Handler) aggregate(c *fiber.Ctx, req AggregateRequest) (counts.Map, error) {
	rows := make([]resolver.Row, 0, len(req.Rows))
	for i, rec := range req.Rows {
		row, err := resolver.RowFromRecord(rec)
		if err != nil {
			return counts.Map{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("row %d: %v", i+1, err))
		}
		rows = append(rows, row)
	}

	strict := h.service.cfg.Strict
	if req.Strict != nil {
		strict = *req.Strict
	}
	return h.service.AggregateStrict(c.UserContext(), rows, strict)
}

// fail maps domain errors to status codes.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := fiber.StatusInternalServerError
	body := fiber.Map{"error": err.Error()}

	var fe *fiber.Error
	var multi *resolver.MultipleMatchError
	switch {
	case errors.As(err, &fe):
		status = fe.Code
	case errors.As(err, &multi):
		status = fiber.StatusConflict
		body["candidates"] = multi.Candidates
	case errors.Is(err, resolver.ErrNoMatch),
		errors.Is(err, counts.ErrCardNotFound),
		errors.Is(err, index.ErrMigrationCycle):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrCollectionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}

	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(body)
}
