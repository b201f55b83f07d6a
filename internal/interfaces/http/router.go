package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/revenue-api/internal/application/auth"
	"github.com/jhoicas/revenue-api/internal/application/catalog"
	"github.com/jhoicas/revenue-api/internal/application/clients"
	"github.com/jhoicas/revenue-api/internal/application/contracts"
	"github.com/jhoicas/revenue-api/internal/application/revenue"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ClientUC   *clients.ClientUseCase
	CatalogUC  *catalog.CatalogUseCase
	ContractUC *contracts.ContractUseCase
	PaymentUC  *contracts.PaymentUseCase
	RevenueUC  *revenue.RevenueUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	val := NewValidator()
	api := app.Group("/api")

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleUser)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público salvo el cierre de sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, val)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/sign-out", AuthMiddleware(deps.JWTSecret), anyRole, authHandler.SignOut)
	authGroup.Post("/sign-out-all", AuthMiddleware(deps.JWTSecret), anyRole, authHandler.SignOutAll)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), anyRole)

	// Clients
	clientsGroup := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, val)
	clientsGroup.Get("/", clientHandler.List)
	clientsGroup.Post("/individual", clientHandler.CreateIndividual)
	clientsGroup.Get("/individual/:id", clientHandler.GetIndividual)
	clientsGroup.Put("/individual/:id", adminOnly, clientHandler.UpdateIndividual)
	clientsGroup.Delete("/individual/:id", adminOnly, clientHandler.DeleteIndividual)
	clientsGroup.Post("/company", clientHandler.CreateCompany)
	clientsGroup.Get("/company/:id", clientHandler.GetCompany)
	clientsGroup.Put("/company/:id", adminOnly, clientHandler.UpdateCompany)
	clientsGroup.Delete("/company/:id", adminOnly, clientHandler.DeleteCompany)

	// Software y descuentos; /discounts antes de /:id
	software := protected.Group("/software")
	softwareHandler := NewSoftwareHandler(deps.CatalogUC, val)
	software.Post("/discounts", adminOnly, softwareHandler.CreateDiscount)
	software.Get("/discounts/:id", softwareHandler.GetDiscount)
	software.Post("/", adminOnly, softwareHandler.Create)
	software.Get("/", softwareHandler.List)
	software.Get("/:id", softwareHandler.GetByID)
	software.Get("/:id/discounts", softwareHandler.ListDiscounts)

	// Contratos y pagos; /payments antes de /:id
	contractsGroup := protected.Group("/contracts")
	contractHandler := NewContractHandler(deps.ContractUC, deps.PaymentUC, val)
	contractsGroup.Post("/payments", contractHandler.AddPayment)
	contractsGroup.Get("/payments/:id", contractHandler.GetPayment)
	contractsGroup.Post("/", contractHandler.Create)
	contractsGroup.Get("/", contractHandler.ListByClient)
	contractsGroup.Get("/:id", contractHandler.GetByID)
	contractsGroup.Delete("/:id", adminOnly, contractHandler.Delete)
	contractsGroup.Get("/:id/payments", contractHandler.Payments)
	contractsGroup.Get("/:id/pdf", contractHandler.PDF)

	// Revenue
	revenueGroup := protected.Group("/revenue")
	revenueHandler := NewRevenueHandler(deps.RevenueUC, val)
	revenueGroup.Post("/current", revenueHandler.Current)
	revenueGroup.Post("/forecast", revenueHandler.Forecast)
}
