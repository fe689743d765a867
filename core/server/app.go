package server

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// NewApp creates the fiber application with the JSON codec and limits used by every feature.
func NewApp(cfg Config) *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimit(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          ErrorHandler,
	})
}

// ErrorHandler renders errors escaping handlers as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
