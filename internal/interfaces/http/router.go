package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/indicavende/indicavende-api/internal/application/analytics"
	"github.com/indicavende/indicavende-api/internal/application/auth"
	"github.com/indicavende/indicavende-api/internal/application/usecase"
	"github.com/indicavende/indicavende-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	LeadUC      *usecase.LeadUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra as rotas da API. Os caminhos preservam o contrato do
// sistema de referência (/auth, /leads, /users, /vendedores, /seed).
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	leadHandler := NewLeadHandler(deps.LeadUC)
	userHandler := NewUserHandler(deps.UserUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	// Auth e seed (públicos)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	app.Post("/seed", authHandler.Seed)

	// Rotas protegidas (requerem X-User-Email resolvível)
	identity := AuthMiddleware(deps.AuthUC)

	leads := app.Group("/leads", identity)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Put("/:id", RequireRole(entity.RoleVendedor, entity.RoleGestor), leadHandler.Update)

	app.Get("/users/", identity, RequireRole(entity.RoleGestor), userHandler.List)
	app.Get("/vendedores/", identity, userHandler.ListVendedores)

	app.Get("/dashboard/stats", identity, RequireRole(entity.RoleGestor), dashboardHandler.GetStats)
}
