package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-core/pkg/jwt"
)

// LocalActor key del actor en c.Locals.
const LocalActor = "actor"

// ActorMiddleware extrae el actor de un Bearer Token si viene uno válido. No
// rechaza peticiones: sin token (o con token inválido) el actor queda vacío y
// las operaciones se auditan como "system". La API no exige autenticación; el
// token solo alimenta la trazabilidad de quién hizo qué.
func ActorMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || secret == "" {
			return c.Next()
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		actor, err := jwt.Parse(secret, strings.TrimSpace(parts[1]))
		if err == nil && actor != "" {
			c.Locals(LocalActor, actor)
		}
		return c.Next()
	}
}

// GetActor devuelve el actor del contexto, o vacío si no hubo token.
func GetActor(c *fiber.Ctx) string {
	v := c.Locals(LocalActor)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
