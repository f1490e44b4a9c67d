package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-core/pkg/jwt"
)

func appConActor(secret string) *fiber.App {
	app := fiber.New()
	app.Use(ActorMiddleware(secret))
	app.Get("/quien", func(c *fiber.Ctx) error {
		return c.SendString(GetActor(c))
	})
	return app
}

func cuerpo(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/quien", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := make([]byte, 256)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestActorMiddleware_TokenValidoExtraeActor(t *testing.T) {
	const secret = "secreto"
	token, err := jwt.Generate(secret, "bodeguero", "test", 5)
	require.NoError(t, err)

	status, actor := cuerpo(t, appConActor(secret), "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bodeguero", actor)
}

func TestActorMiddleware_SinTokenPasaConActorVacio(t *testing.T) {
	status, actor := cuerpo(t, appConActor("secreto"), "")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, actor)
}

func TestActorMiddleware_TokenInvalidoNoRechaza(t *testing.T) {
	casos := []string{
		"Bearer basura",
		"Basic abc",
		"Bearer ",
	}
	for _, header := range casos {
		status, actor := cuerpo(t, appConActor("secreto"), header)
		assert.Equal(t, http.StatusOK, status, header)
		assert.Empty(t, actor, header)
	}
}

func TestActorMiddleware_FirmaDeOtroSecretoSeIgnora(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "intruso", "test", 5)
	require.NoError(t, err)

	status, actor := cuerpo(t, appConActor("secreto"), "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, actor, "firma inválida: el actor no se toma del token")
}

func TestActorMiddleware_SecretVacioDesactivaLectura(t *testing.T) {
	token, err := jwt.Generate("secreto", "bodeguero", "test", 5)
	require.NoError(t, err)

	status, actor := cuerpo(t, appConActor(""), "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, actor)
}
