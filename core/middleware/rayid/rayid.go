// Package rayid assigns a unique ray ID to every request for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray ID back to the client.
const Header = "X-Ray-Id"

// New returns a middleware that stores a fresh ray ID in the context locals
// and echoes it in the response header. An incoming X-Ray-Id is reused so
// upstream proxies can stitch traces together.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
