package rayid

import (
	"collection-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header echoing the ray id.
const HeaderName = "X-Ray-ID"

// New returns a middleware assigning every request a ray id. A valid id sent by the
// client in the same header is kept, otherwise a new uuid is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}

// FromContext returns the ray id of the request, or "" outside the middleware.
func FromContext(c *fiber.Ctx) string {
	id, _ := c.Locals(logger.RayIDKey).(string)
	return id
}
