package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indicavende/indicavende-api/internal/domain"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
	apphttp "github.com/indicavende/indicavende-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// fakeResolver resolve identidades de um mapa fixo email → usuário.
type fakeResolver struct {
	users map[string]*entity.User
}

func (r *fakeResolver) ResolveIdentity(email string) (*entity.User, error) {
	if email == "" {
		return nil, domain.ErrUnauthorized
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

func newResolver() *fakeResolver {
	return &fakeResolver{users: map[string]*entity.User{
		"gestor@x.me":    {ID: "u1", Email: "gestor@x.me", Role: entity.RoleGestor},
		"vendedor@x.me":  {ID: "u2", Email: "vendedor@x.me", Role: entity.RoleVendedor},
		"indicador@x.me": {ID: "u3", Email: "indicador@x.me", Role: entity.RoleIndicador},
	}}
}

// buildTestApp monta uma aplicação Fiber mínima com:
//   - AuthMiddleware para resolver o X-User-Email e carregar locals
//   - RequireRole para autorizar o acesso
//   - Um handler dummy que devolve 200 se passa pelos middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(newResolver()),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// doRequest lança um GET /protected com o header de identidade indicado.
func doRequest(t *testing.T, app *fiber.App, email string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if email != "" {
		req.Header.Set("X-User-Email", email)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: o usuário tem o papel requerido → deve passar (HTTP 200).
func TestRequireRole_GestorAcessaRotaGestor(t *testing.T) {
	app := buildTestApp(entity.RoleGestor)
	resp := doRequest(t, app, "gestor@x.me")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"gestor deve poder acessar rota restrita a gestor")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleGestor, body["role"])
}

// Caso 1b: multi-papel, vendedor passa em rota vendedor-ou-gestor.
func TestRequireRole_VendedorAcessaRotaVendedorOuGestor(t *testing.T) {
	app := buildTestApp(entity.RoleVendedor, entity.RoleGestor)
	resp := doRequest(t, app, "vendedor@x.me")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: papel resolvido mas fora da lista → HTTP 403 Forbidden,
// distinto do 401 de identidade ausente.
func TestRequireRole_IndicadorBloqueadoEmRotaVendedor(t *testing.T) {
	app := buildTestApp(entity.RoleVendedor, entity.RoleGestor)
	resp := doRequest(t, app, "indicador@x.me")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"indicador não deve atualizar leads")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"a resposta de erro deve incluir o código FORBIDDEN")
}

// Caso 3: sem header de identidade → HTTP 401.
func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleGestor)
	resp := doRequest(t, app, "") // sem header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_IDENTITY")
}

// Caso 4: email que não resolve para usuário conhecido → HTTP 401, nunca 403.
func TestAuthMiddleware_IdentidadeDesconhecida_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleGestor)
	resp := doRequest(t, app, "fantasma@x.me")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNKNOWN_IDENTITY")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extração do usuário para o contexto
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_CarregaLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(newResolver()), func(c *fiber.Ctx) error {
		u := apphttp.CurrentUser(c)
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
			"email":   u.Email,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-User-Email", "vendedor@x.me")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u2", body["user_id"])
	assert.Equal(t, entity.RoleVendedor, body["role"])
	assert.Equal(t, "vendedor@x.me", body["email"])
}
