package lookup

import (
	"errors"
	"strconv"

	"collection-manager/core/counts"
	"collection-manager/core/index"
	"collection-manager/core/logger"
	"collection-manager/core/resolver"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for card lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lookup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/cards")
	group.Get("/", h.HandleFind)
	group.Get("/stats", h.HandleStats)
	group.Get("/:id", h.HandleGetCard)
}

// HandleGetCard returns one printing by identifier.
func (h *Handler) HandleGetCard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	view, err := h.service.Card(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(view)
}

// HandleFind resolves the printing described by the query parameters
// set, name, number, multiverseid and artist.
func (h *Handler) HandleFind(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	row := resolver.Row{
		SetCode:      c.Query(resolver.FieldSet),
		Name:         c.Query(resolver.FieldName),
		Number:       c.Query(resolver.FieldNumber),
		Artist:       c.Query(resolver.FieldArtist),
		MultiverseID: resolver.NoMultiverseID,
	}
	if row.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if raw := c.Query(resolver.FieldMultiverseID); raw != "" {
		mvid, err := strconv.Atoi(raw)
		if err != nil || mvid <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid multiverseid"})
		}
		row.MultiverseID = mvid
	}

	view, err := h.service.Find(c.UserContext(), row)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(view)
}

// HandleStats returns the size of the loaded catalog.
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(stats)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	var multi *resolver.MultipleMatchError
	switch {
	case errors.As(err, &multi):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":      err.Error(),
			"candidates": multi.Candidates,
		})
	case errors.Is(err, resolver.ErrNoMatch), errors.Is(err, counts.ErrCardNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, index.ErrMigrationCycle):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	l.Error("Card lookup failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
